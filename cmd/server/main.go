package main

import (
	"log"

	"anoa.com/plusgems/internal/bootstrap"
	"anoa.com/plusgems/internal/config"
	"anoa.com/plusgems/internal/model"
	"anoa.com/plusgems/internal/server"
	"anoa.com/plusgems/pkg/database"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedDemo(db); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	} else {
		log.Println("REDIS_URL not set, dashboard caching disabled")
	}

	srv, err := server.NewServer(cfg, db, redisClient)
	if err != nil {
		log.Fatalf("failed to initialize server: %v", err)
	}

	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Hero{},
		&model.Pillar{},
		&model.Mission{},
		&model.Nomination{},
	)
}

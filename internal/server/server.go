package server

import (
	"log"
	"time"

	"anoa.com/plusgems/internal/config"
	"anoa.com/plusgems/internal/handler"
	"anoa.com/plusgems/internal/middleware"
	"anoa.com/plusgems/internal/repository"
	"anoa.com/plusgems/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine *gin.Engine
}

// NewServer wires repositories, services and handlers and registers every
// route. Redis is optional: a nil client disables dashboard caching.
func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	heroRepo := repository.NewHeroRepository(db)
	pillarRepo := repository.NewPillarRepository(db)
	missionRepo := repository.NewMissionRepository(db)
	nominationRepo := repository.NewNominationRepository(db)

	authService, err := service.NewAuthService(cfg.AdminPassword, cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	authHandler := handler.NewAuthHandler(authService)

	heroService := service.NewHeroService(heroRepo, nominationRepo)
	heroHandler := handler.NewHeroHandler(heroService)

	pillarService := service.NewPillarService(pillarRepo, missionRepo)
	pillarHandler := handler.NewPillarHandler(pillarService)

	missionService := service.NewMissionService(missionRepo, pillarRepo, nominationRepo)
	missionHandler := handler.NewMissionHandler(missionService)

	nominationService := service.NewNominationService(nominationRepo, heroRepo, missionRepo, redisClient)
	nominationHandler := handler.NewNominationHandler(nominationService)

	dashboardService := service.NewDashboardService(nominationRepo, redisClient, cfg.DashboardCacheTTL)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	setupCORS(router, cfg)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/login", authHandler.Login)

		// Public routes: the dashboard, the crystal map and the nomination
		// form need no credentials.
		api.GET("/dashboard", dashboardHandler.GetDashboard)
		api.GET("/heroes", heroHandler.GetAllHeroes)
		api.GET("/pillars", pillarHandler.GetAllPillars)
		api.GET("/missions", missionHandler.GetCrystalMap)
		api.POST("/nominations", nominationHandler.Create)
	}

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)

	admin := api.Group("/admin")
	admin.Use(authMiddleware.RequireAdmin())
	{
		admin.GET("/nominations", nominationHandler.List)
		admin.PATCH("/nominations/:id/status", nominationHandler.Transition)

		admin.POST("/heroes", heroHandler.CreateHero)
		admin.PUT("/heroes/:id", heroHandler.UpdateHero)
		admin.DELETE("/heroes/:id", heroHandler.DeleteHero)

		admin.POST("/pillars", pillarHandler.CreatePillar)
		admin.PUT("/pillars/:id", pillarHandler.UpdatePillar)
		admin.DELETE("/pillars/:id", pillarHandler.DeletePillar)

		admin.POST("/missions", missionHandler.CreateMission)
		admin.PUT("/missions/:id", missionHandler.UpdateMission)
		admin.DELETE("/missions/:id", missionHandler.DeleteMission)
	}

	return &Server{engine: router}, nil
}

func (s *Server) Run(addr string) error {
	log.Printf("listening on %s", addr)
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, cfg *config.Config) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOriginList(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

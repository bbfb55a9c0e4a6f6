package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DBHost string
	DBUser string
	DBPass string
	DBName string
	DBPort string

	RedisURL string

	JWTSecret     string
	TokenTTL      time.Duration
	AdminPassword string

	DashboardCacheTTL time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DBHost: getEnv("DB_HOST", "localhost"),
		DBUser: getEnv("DB_USER", "postgres"),
		DBPass: os.Getenv("DB_PASS"),
		DBName: getEnv("DB_NAME", "plusgems"),
		DBPort: getEnv("DB_PORT", "5432"),

		RedisURL: os.Getenv("REDIS_URL"),

		JWTSecret:     getEnv("JWT_SECRET", "change-me"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD must be set")
	}

	ttl := time.Hour
	if ttlStr := os.Getenv("JWT_TTL_MINUTES"); ttlStr != "" {
		if minutes, err := strconv.Atoi(ttlStr); err == nil {
			ttl = time.Duration(minutes) * time.Minute
		}
	}
	cfg.TokenTTL = ttl

	var err error
	cfg.DashboardCacheTTL, err = time.ParseDuration(getEnv("DASHBOARD_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DASHBOARD_CACHE_TTL: %w", err)
	}

	return cfg, nil
}

// AllowedOriginList splits ALLOWED_ORIGINS on commas.
func (c *Config) AllowedOriginList() []string {
	return strings.Split(c.AllowedOrigins, ",")
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort,
	)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

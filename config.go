package main

import (
	"fmt"
	"os"
	"time"
)

// Config holds all environment variables for the API server.
type Config struct {
	Port      string
	Env       string
	JWTSecret string
	JWTTTL    time.Duration
	RedisURL  string
	UploadDir string
	BaseURL   string

	// Bootstrap admin credentials; when set, the account is created on
	// startup if it does not already exist.
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// LoadConfig reads configuration from the environment and validates the
// required fields. Database connection settings are read separately by the
// database package.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("APP_ENV", "development"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    24 * time.Hour,
		RedisURL:  os.Getenv("REDIS_URL"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads/products"),
		BaseURL:   getEnv("BASE_URL", "http://localhost:8080"),

		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@localhost"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
		}
		cfg.JWTTTL = d
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

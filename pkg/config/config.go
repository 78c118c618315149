package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every tunable the application needs. It is built once in
// Load and injected into the components that use it, never read from
// globals after startup.
type Config struct {
	Port        string
	PostgresURL string

	SecretKey         string
	AccessTokenTTL    time.Duration
	RefreshTokenTTL   time.Duration
	RefreshTokenBytes int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, relying on environment", "error", err)
	}

	return &Config{
		Port:              getEnv("PORT", "8000"),
		PostgresURL:       getEnv("POSTGRES_URL", ""),
		SecretKey:         getEnv("JWT_SECRET", ""),
		AccessTokenTTL:    time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		RefreshTokenTTL:   time.Duration(getEnvInt("REFRESH_TOKEN_EXPIRE_MINUTES", 43200)) * time.Minute,
		RefreshTokenBytes: getEnvInt("BYTES_REFRESH_TOKEN", 100),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", value)
		return fallback
	}
	return parsed
}

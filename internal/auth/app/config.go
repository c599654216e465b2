package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile string // Optional: path to SQLite database file (default: ./authd.db)
	AdminAPIKey  string // Optional: key gating the /admin routes; unset leaves them open

	AccessTokenTTL  time.Duration // Optional: access token lifetime (default: 1h)
	RefreshTokenTTL time.Duration // Optional: refresh token lifetime (default: 14 days)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile:        getEnvOrDefault("AUTH_DATABASE_FILE", "authd.db"),
		AdminAPIKey:         os.Getenv("ADMIN_API_KEY"),
		AccessTokenTTL:      getEnvDurationOrDefault("ACCESS_TOKEN_TTL", time.Hour),
		RefreshTokenTTL:     getEnvDurationOrDefault("REFRESH_TOKEN_TTL", 14*24*time.Hour),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}

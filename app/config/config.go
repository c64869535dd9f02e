package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the admin gate service
type Config struct {
	// Server
	Port     string
	Host     string
	LogLevel string

	// Database
	DatabaseURL string

	// Notification channel
	RedisURL string

	// Admission
	EvictionWait time.Duration

	// Session issuance
	NonceTTL time.Duration

	// Features
	EnableDebug bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	// Notification channel
	config.RedisURL = getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0")

	// Admission
	var err error
	config.EvictionWait, err = getDurationEnv("EVICTION_WAIT", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid EVICTION_WAIT: %w", err)
	}

	config.NonceTTL, err = getDurationEnv("NONCE_TTL", 5*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid NONCE_TTL: %w", err)
	}

	config.EnableDebug = getBoolEnv("ENABLE_DEBUG", false)

	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return time.ParseDuration(value)
}

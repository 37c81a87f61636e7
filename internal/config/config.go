// Package config loads server settings from environment variables. Every
// setting has a default so the server starts with an empty environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the server's runtime settings.
type Config struct {
	Port      int
	LogLevel  string // debug, info, warn, error
	LogFormat string // text or json

	// DatabaseURL selects the Postgres score store; when empty the server
	// falls back to the in-memory store.
	DatabaseURL string
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Port:        getEnvInt("PORT", 8080),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
	}
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

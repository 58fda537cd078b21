// Package config loads server configuration from the environment, with
// an optional .env file for local development. Command-line flags in
// cmd/server take precedence over these values.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	DBPath string
	FXURL  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// .env file is optional in production
	}

	return &Config{
		Port:   getEnvOrDefault("PORT", "8080"),
		DBPath: getEnvOrDefault("DB_PATH", "lifeos.db"),
		FXURL:  os.Getenv("FX_BASE_URL"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

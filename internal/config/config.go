package config

import (
	"os"
	"strconv"

	"ratehub/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Import   ImportConfig
	Query    QueryConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port           string
	DeletePassword string
}

// ImportConfig holds ingestion pipeline settings
type ImportConfig struct {
	// BulkThreshold is the batch size above which the loader attempts a
	// single bulk insert before falling back to row-by-row.
	BulkThreshold int
}

// QueryConfig holds read-side settings
type QueryConfig struct {
	// MaxFetch caps records fetched per mode per query before in-memory
	// ranking, bounding memory on large stores.
	MaxFetch int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL:     os.Getenv("DATABASE_URL"),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8080"),
			DeletePassword: os.Getenv("DELETE_PASSWORD"),
		},
		Import: ImportConfig{
			BulkThreshold: getEnvIntOrDefault("BULK_THRESHOLD", 10),
		},
		Query: QueryConfig{
			MaxFetch: getEnvIntOrDefault("MAX_FETCH", 2000),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}
	if config.Server.DeletePassword == "" {
		return errors.ConfigInvalid("DELETE_PASSWORD is required")
	}
	if config.Import.BulkThreshold < 0 {
		return errors.ConfigInvalid("BULK_THRESHOLD must not be negative")
	}
	if config.Query.MaxFetch <= 0 {
		return errors.ConfigInvalid("MAX_FETCH must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Package cli provides common initialization utilities for the registro
// command: logging, .env loading, configuration validation, and catalog
// loading.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"registro/internal/catalog"
	"registro/internal/config"
	"registro/internal/core"
	"registro/internal/log"
)

// SetupLogger initializes structured logging at the given level and sets
// the default logger. Records go to stderr, keeping stdout free for
// results.
func SetupLogger(level string) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = ParseLevel(level)
	cfg.Handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level})
	logger := log.New(cfg)
	log.SetDefault(logger)
	return logger
}

// ParseLevel maps a configured log level to a slog.Level. Unknown values
// fall back to info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// ValidateConfig validates the configuration and exits the process on
// failure.
func ValidateConfig(logger *log.Logger, cfg *config.Config) {
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
}

// LoadCatalog loads the category catalog from the given path, or the
// embedded default catalog when the path is empty.
// Returns the categories or exits the process on failure.
func LoadCatalog(logger *log.Logger, path string) []core.Category {
	if path == "" {
		return catalog.Default()
	}
	cats, err := catalog.Load(path)
	if err != nil {
		logger.Error("Failed to load catalog", log.FieldError, err, log.FieldCatalogPath, path)
		os.Exit(1)
	}
	return cats
}

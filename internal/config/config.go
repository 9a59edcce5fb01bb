package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Catalog
	CatalogPath string

	// Recognition; empty means the library default catch-all name
	FallbackCategoryName string

	// Output
	OutputFormat string

	// Batch processing
	BatchConcurrency int

	// Logging
	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		CatalogPath:          getEnv("CATALOG_PATH", ""),
		FallbackCategoryName: getEnv("FALLBACK_CATEGORY_NAME", ""),
		OutputFormat:         getEnv("OUTPUT_FORMAT", "json"),
		BatchConcurrency:     getEnvInt("BATCH_CONCURRENCY", 4),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate output format
	validFormats := []string{"json", "text"}
	isValidFormat := false
	for _, format := range validFormats {
		if c.OutputFormat == format {
			isValidFormat = true
			break
		}
	}
	if !isValidFormat {
		errors = append(errors, fmt.Sprintf("invalid output format '%s': must be one of %v", c.OutputFormat, validFormats))
	}

	// Validate batch concurrency
	if c.BatchConcurrency < 1 {
		errors = append(errors, fmt.Sprintf("invalid batch concurrency %d: must be at least 1", c.BatchConcurrency))
	} else if c.BatchConcurrency > 64 {
		errors = append(errors, fmt.Sprintf("invalid batch concurrency %d: must be at most 64", c.BatchConcurrency))
	}

	// Validate log level
	validLevels := []string{"debug", "info", "warn", "error"}
	isValidLevel := false
	for _, level := range validLevels {
		if c.LogLevel == level {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLevels))
	}

	// Validate catalog file if provided
	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("catalog file does not exist: %s", c.CatalogPath))
		}
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

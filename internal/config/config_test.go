package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid json config",
			config: Config{
				OutputFormat:     "json",
				BatchConcurrency: 4,
				LogLevel:         "info",
			},
			wantErr: false,
		},
		{
			name: "valid text config",
			config: Config{
				OutputFormat:     "text",
				BatchConcurrency: 1,
				LogLevel:         "debug",
			},
			wantErr: false,
		},
		{
			name: "custom fallback name is unrestricted",
			config: Config{
				FallbackCategoryName: "misc",
				OutputFormat:         "json",
				BatchConcurrency:     4,
				LogLevel:             "warn",
			},
			wantErr: false,
		},
		{
			name: "invalid output format",
			config: Config{
				OutputFormat:     "xml",
				BatchConcurrency: 4,
				LogLevel:         "info",
			},
			wantErr:     true,
			errorString: "invalid output format 'xml': must be one of [json text]",
		},
		{
			name: "invalid batch concurrency - too small",
			config: Config{
				OutputFormat:     "json",
				BatchConcurrency: 0,
				LogLevel:         "info",
			},
			wantErr:     true,
			errorString: "invalid batch concurrency 0: must be at least 1",
		},
		{
			name: "invalid batch concurrency - too large",
			config: Config{
				OutputFormat:     "json",
				BatchConcurrency: 100,
				LogLevel:         "info",
			},
			wantErr:     true,
			errorString: "invalid batch concurrency 100: must be at most 64",
		},
		{
			name: "invalid log level",
			config: Config{
				OutputFormat:     "json",
				BatchConcurrency: 4,
				LogLevel:         "verbose",
			},
			wantErr:     true,
			errorString: "invalid log level 'verbose': must be one of [debug info warn error]",
		},
		{
			name: "missing catalog file",
			config: Config{
				CatalogPath:      "/non/existent/catalog.json",
				OutputFormat:     "json",
				BatchConcurrency: 4,
				LogLevel:         "info",
			},
			wantErr:     true,
			errorString: "catalog file does not exist: /non/existent/catalog.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else {
				if err != nil {
					t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
				}
			}
		})
	}
}

func TestConfig_ValidateWithCatalogFile(t *testing.T) {
	tmpDir := t.TempDir()

	catalogFile := filepath.Join(tmpDir, "catalog.json")
	if err := os.WriteFile(catalogFile, []byte(`[{"id":1,"name":"餐饮","description":""}]`), 0644); err != nil {
		t.Fatalf("Failed to create test catalog file: %v", err)
	}

	cfg := Config{
		CatalogPath:      catalogFile,
		OutputFormat:     "json",
		BatchConcurrency: 4,
		LogLevel:         "info",
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Config.Validate() error = %v, want nil for existing catalog file", err)
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := Config{
		OutputFormat:     "xml",
		BatchConcurrency: 0,
		LogLevel:         "verbose",
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, want := range []string{"output format", "batch concurrency", "log level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected combined error to mention %q, got %v", want, err)
		}
	}
}

func TestLoad(t *testing.T) {
	// Save original env vars
	originalVars := map[string]string{
		"CATALOG_PATH":           os.Getenv("CATALOG_PATH"),
		"FALLBACK_CATEGORY_NAME": os.Getenv("FALLBACK_CATEGORY_NAME"),
		"OUTPUT_FORMAT":          os.Getenv("OUTPUT_FORMAT"),
		"BATCH_CONCURRENCY":      os.Getenv("BATCH_CONCURRENCY"),
		"LOG_LEVEL":              os.Getenv("LOG_LEVEL"),
	}

	// Clean environment
	for key := range originalVars {
		os.Unsetenv(key)
	}

	// Restore env vars at end of test
	defer func() {
		for key, value := range originalVars {
			if value != "" {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	}()

	t.Run("default values", func(t *testing.T) {
		cfg := Load()

		if cfg.CatalogPath != "" {
			t.Errorf("Load() CatalogPath = %v, want empty", cfg.CatalogPath)
		}
		if cfg.FallbackCategoryName != "" {
			t.Errorf("Load() FallbackCategoryName = %v, want empty", cfg.FallbackCategoryName)
		}
		if cfg.OutputFormat != "json" {
			t.Errorf("Load() OutputFormat = %v, want json", cfg.OutputFormat)
		}
		if cfg.BatchConcurrency != 4 {
			t.Errorf("Load() BatchConcurrency = %v, want 4", cfg.BatchConcurrency)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("Load() LogLevel = %v, want info", cfg.LogLevel)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		os.Setenv("CATALOG_PATH", "/tmp/catalog.json")
		os.Setenv("FALLBACK_CATEGORY_NAME", "misc")
		os.Setenv("OUTPUT_FORMAT", "text")
		os.Setenv("BATCH_CONCURRENCY", "8")
		os.Setenv("LOG_LEVEL", "debug")

		cfg := Load()

		if cfg.CatalogPath != "/tmp/catalog.json" {
			t.Errorf("Load() CatalogPath = %v, want /tmp/catalog.json", cfg.CatalogPath)
		}
		if cfg.FallbackCategoryName != "misc" {
			t.Errorf("Load() FallbackCategoryName = %v, want misc", cfg.FallbackCategoryName)
		}
		if cfg.OutputFormat != "text" {
			t.Errorf("Load() OutputFormat = %v, want text", cfg.OutputFormat)
		}
		if cfg.BatchConcurrency != 8 {
			t.Errorf("Load() BatchConcurrency = %v, want 8", cfg.BatchConcurrency)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("Load() LogLevel = %v, want debug", cfg.LogLevel)
		}
	})

	t.Run("invalid environment variables use defaults", func(t *testing.T) {
		os.Setenv("BATCH_CONCURRENCY", "invalid")

		cfg := Load()

		if cfg.BatchConcurrency != 4 {
			t.Errorf("Load() BatchConcurrency = %v, want 4 (default for invalid input)", cfg.BatchConcurrency)
		}
	})
}

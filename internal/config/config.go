// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	DatabasePath   string
	CategoriesPath string
	ExportDir      string
	Categories     []string
	WindowDays     int
	UsageMin       int
	UsageMax       int
	DatasetSeed    int64
	AlertThreshold int
}

// Default values. The dataset defaults reproduce the classic 31-day
// Boys/Girls/Staff sample exactly; UsageMax is exclusive.
const (
	defaultWindowDays = 31
	defaultUsageMin   = 50
	defaultUsageMax   = 200
)

// defaultCategories is the sample category list. The working category set
// at runtime is always derived from the dataset, never from this list.
var defaultCategories = []string{"Boys", "Girls", "Staff"}

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	envPaths := getEnvPaths()
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		DatabasePath:   getEnvString("DATABASE_PATH", ":memory:"),
		CategoriesPath: getEnvString("CATEGORIES_PATH", ""),
		ExportDir:      getEnvString("EXPORT_DIR", "."),
		Categories:     getEnvList("CATEGORIES", defaultCategories),
		WindowDays:     getEnvInt("WINDOW_DAYS", defaultWindowDays),
		UsageMin:       getEnvInt("USAGE_MIN", defaultUsageMin),
		UsageMax:       getEnvInt("USAGE_MAX", defaultUsageMax),
		DatasetSeed:    getEnvInt64("DATASET_SEED", 0),
		AlertThreshold: getEnvInt("ALERT_THRESHOLD", 0),
	}

	// A categories file, when present, overrides the env list.
	if cfg.CategoriesPath != "" {
		if cats, err := LoadCategoriesFile(cfg.CategoriesPath); err == nil && len(cats) > 0 {
			cfg.Categories = cats
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Ensure database directory exists for file-backed stores
	if cfg.DatabasePath != ":memory:" {
		if err := ensureDir(filepath.Dir(cfg.DatabasePath)); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.WindowDays < 1 {
		return fmt.Errorf("WINDOW_DAYS must be at least 1, got %d", c.WindowDays)
	}
	if c.UsageMin < 0 {
		return fmt.Errorf("USAGE_MIN must be non-negative, got %d", c.UsageMin)
	}
	if c.UsageMax <= c.UsageMin {
		return fmt.Errorf("USAGE_MAX (%d) must be greater than USAGE_MIN (%d)", c.UsageMax, c.UsageMin)
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}
	return nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "aquavision", ".env"),
			filepath.Join(home, ".aquavision", ".env"),
		)
	}

	return paths
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvInt64 retrieves an int64 environment variable or returns the default.
func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvList retrieves a comma-separated environment variable or returns the
// default. Blank entries are dropped.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

// ensureDir creates a directory and all parent directories if they don't exist.
func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o750)
}

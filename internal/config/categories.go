// Package config contains everything related to configuration
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// CategoriesFile is the JSON structure of the optional categories file.
// Example: {"categories": ["Boys", "Girls", "Staff", "Visitors"]}
type CategoriesFile struct {
	Categories []string `json:"categories"`
}

// LoadCategoriesFile reads category labels from a JSON file. Blank and
// duplicate labels are dropped; order is preserved.
func LoadCategoriesFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories file: %w", err)
	}

	var file CategoriesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse categories file: %w", err)
	}

	seen := make(map[string]bool, len(file.Categories))
	var cats []string
	for _, c := range file.Categories {
		trimmed := strings.TrimSpace(c)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		cats = append(cats, trimmed)
	}

	return cats, nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetEnvString(t *testing.T) {
	key := "TEST_ENV_STRING"
	val := "test_value"
	os.Setenv(key, val)
	defer os.Unsetenv(key)

	if got := getEnvString(key, "default"); got != val {
		t.Errorf("getEnvString() = %q, want %q", got, val)
	}

	if got := getEnvString("NON_EXISTENT", "default"); got != "default" {
		t.Errorf("getEnvString() = %q, want %q", got, "default")
	}
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_ENV_INT"

	tests := []struct {
		name       string
		envVal     string
		defaultVal int
		want       int
	}{
		{"Valid", "42", 7, 42},
		{"Negative", "-3", 7, -3},
		{"Invalid", "invalid", 7, 7},
		{"Empty", "", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envVal != "" {
				os.Setenv(key, tt.envVal)
				defer os.Unsetenv(key)
			} else {
				os.Unsetenv(key)
			}

			if got := getEnvInt(key, tt.defaultVal); got != tt.want {
				t.Errorf("getEnvInt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvList(t *testing.T) {
	key := "TEST_ENV_LIST"
	fallback := []string{"Boys", "Girls", "Staff"}

	tests := []struct {
		name   string
		envVal string
		want   []string
	}{
		{"Empty", "", fallback},
		{"Single", "Visitors", []string{"Visitors"}},
		{"Multiple", "Boys, Girls ,Staff", []string{"Boys", "Girls", "Staff"}},
		{"BlankEntries", " , ,", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envVal != "" {
				os.Setenv(key, tt.envVal)
				defer os.Unsetenv(key)
			} else {
				os.Unsetenv(key)
			}

			got := getEnvList(key, fallback)
			if len(got) != len(tt.want) {
				t.Fatalf("getEnvList() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("getEnvList()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_PATH", "CATEGORIES", "CATEGORIES_PATH", "WINDOW_DAYS",
		"USAGE_MIN", "USAGE_MAX", "DATASET_SEED", "ALERT_THRESHOLD", "EXPORT_DIR",
	} {
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DatabasePath != ":memory:" {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, ":memory:")
	}
	if cfg.WindowDays != 31 {
		t.Errorf("WindowDays = %d, want 31", cfg.WindowDays)
	}
	if cfg.UsageMin != 50 || cfg.UsageMax != 200 {
		t.Errorf("usage bounds = [%d,%d), want [50,200)", cfg.UsageMin, cfg.UsageMax)
	}
	if len(cfg.Categories) != 3 || cfg.Categories[0] != "Boys" {
		t.Errorf("Categories = %v, want [Boys Girls Staff]", cfg.Categories)
	}
}

func TestLoad_InvalidBounds(t *testing.T) {
	os.Setenv("USAGE_MIN", "200")
	os.Setenv("USAGE_MAX", "50")
	defer os.Unsetenv("USAGE_MIN")
	defer os.Unsetenv("USAGE_MAX")

	if _, err := Load(); err == nil {
		t.Error("Load() should reject USAGE_MAX <= USAGE_MIN")
	}
}

func TestLoadCategoriesFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "categories.json")

	content := `{"categories": ["Boys", " Girls ", "", "Boys", "Visitors"]}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cats, err := LoadCategoriesFile(path)
	if err != nil {
		t.Fatalf("LoadCategoriesFile() failed: %v", err)
	}

	want := []string{"Boys", "Girls", "Visitors"}
	if len(cats) != len(want) {
		t.Fatalf("got %v, want %v", cats, want)
	}
	for i := range cats {
		if cats[i] != want[i] {
			t.Errorf("cats[%d] = %q, want %q", i, cats[i], want[i])
		}
	}
}

func TestLoadCategoriesFile_Missing(t *testing.T) {
	if _, err := LoadCategoriesFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadCategoriesFile() should fail for a missing file")
	}
}

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir")

	if err := ensureDir(path); err != nil {
		t.Fatalf("ensureDir() failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("directory was not created")
	}

	if err := ensureDir(""); err != nil {
		t.Error("ensureDir(\"\") should not error")
	}
}

func TestGetEnvPaths(t *testing.T) {
	paths := getEnvPaths()
	if len(paths) == 0 {
		t.Error("getEnvPaths() returned empty list")
	}

	cwd, _ := os.Getwd()
	found := false
	for _, p := range paths {
		if p == filepath.Join(cwd, ".env") {
			found = true
		}
	}
	if !found {
		t.Error("getEnvPaths() should include the current directory")
	}
}

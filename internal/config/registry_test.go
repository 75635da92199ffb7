package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	// Should not be empty
	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	// Should contain "souschef"
	if !strings.Contains(configDir, "souschef") {
		t.Errorf("GetConfigDir() = %v, should contain 'souschef'", configDir)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	// Should end with config.yaml
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}

	t.Logf("Config path: %s", configPath)
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}

	if reg.Ratings == nil {
		t.Error("NewRegistry().Ratings should not be nil")
	}

	if reg.Preferences == nil {
		t.Fatal("NewRegistry().Preferences should not be nil")
	}

	if reg.Preferences.Units != "metric" {
		t.Errorf("NewRegistry().Preferences.Units = %v, want metric", reg.Preferences.Units)
	}

	if !reg.Preferences.ShowTimers {
		t.Error("NewRegistry().Preferences.ShowTimers should be true by default")
	}
}

func TestSetRatingClamps(t *testing.T) {
	tests := []struct {
		stars int
		want  int
	}{
		{0, 0},
		{3, 3},
		{5, 5},
		{-1, 0},
		{-100, 0},
		{6, 5},
		{999, 5},
	}

	for _, tt := range tests {
		reg := NewRegistry()
		reg.SetRating("shakshuka", tt.stars)
		if got := reg.Rating("shakshuka"); got != tt.want {
			t.Errorf("SetRating(%d): Rating() = %d, want %d", tt.stars, got, tt.want)
		}
	}
}

func TestSetRatingNilMap(t *testing.T) {
	// A registry deserialized from a file without ratings has a nil map
	reg := &Registry{Version: 1}
	reg.SetRating("shakshuka", 4)

	if got := reg.Rating("shakshuka"); got != 4 {
		t.Errorf("Rating() = %d, want 4", got)
	}
}

func TestRatingUnrated(t *testing.T) {
	reg := NewRegistry()
	if got := reg.Rating("unknown"); got != 0 {
		t.Errorf("Rating() for unrated recipe = %d, want 0", got)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	reg := NewRegistry()
	reg.SetRating("shakshuka", 4)
	reg.SetRating("banana-bread", 5)
	reg.SetLastRecipe("shakshuka")
	reg.Preferences.Units = "imperial"

	if err := reg.saveToPath(path); err != nil {
		t.Fatalf("saveToPath() error = %v", err)
	}

	loaded, err := loadRegistryFromPath(path)
	if err != nil {
		t.Fatalf("loadRegistryFromPath() error = %v", err)
	}

	if loaded.Rating("shakshuka") != 4 || loaded.Rating("banana-bread") != 5 {
		t.Errorf("loaded ratings = %v", loaded.Ratings)
	}
	if loaded.LastRecipe != "shakshuka" {
		t.Errorf("LastRecipe = %q, want shakshuka", loaded.LastRecipe)
	}
	if loaded.Preferences.Units != "imperial" {
		t.Errorf("Preferences.Units = %q, want imperial", loaded.Preferences.Units)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	reg, err := loadRegistryFromPath(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("loadRegistryFromPath() error = %v", err)
	}
	if reg.Version != 1 || reg.Preferences == nil {
		t.Error("missing file should yield a default registry")
	}
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 99\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := loadRegistryFromPath(path); err == nil {
		t.Error("expected error for unsupported config version")
	}
}

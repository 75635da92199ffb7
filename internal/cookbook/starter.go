package cookbook

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mtreloar/souschef/internal/config"
)

//go:embed starter/*.yaml
var starterFS embed.FS

// WriteStarterRecipes copies the embedded starter recipes into dir,
// creating it if needed. Existing files are left alone so a re-run of
// "souschef init" never clobbers user edits. Returns the names of the
// files it wrote.
func WriteStarterRecipes(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cookbook directory: %w", err)
	}

	entries, err := starterFS.ReadDir("starter")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded recipes: %w", err)
	}

	var written []string
	for _, entry := range entries {
		dst := filepath.Join(dir, entry.Name())
		if _, err := os.Stat(dst); err == nil {
			continue // already present
		}

		data, err := starterFS.ReadFile("starter/" + entry.Name())
		if err != nil {
			return written, fmt.Errorf("failed to read embedded recipe %s: %w", entry.Name(), err)
		}
		if err := os.WriteFile(dst, data, 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", dst, err)
		}
		written = append(written, entry.Name())
	}

	return written, nil
}

// DefaultDir returns the default cookbook directory,
// "recipes" under the souschef config directory.
func DefaultDir() (string, error) {
	base, err := config.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "recipes"), nil
}

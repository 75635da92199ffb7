package recipe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mtreloar/souschef/internal/logging"
)

// Parse decodes a recipe document from YAML bytes and validates it.
// The id argument is used as the recipe ID when the document doesn't
// declare one (callers pass the filename stem).
func Parse(data []byte, id string) (*Recipe, error) {
	var r Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse recipe: %w", err)
	}

	if r.ID == "" {
		r.ID = id
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return &r, nil
}

// LoadFile reads and parses a single recipe YAML file.
func LoadFile(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}

	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	r, err := Parse(data, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logging.LogRecipeLoad(path, r.ID, len(r.Steps))
	return r, nil
}

// Validate checks that the recipe is usable in cooking mode.
// A valid recipe has an ID, a title, and at least one step.
func (r *Recipe) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("recipe has no id")
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("recipe %q has no title", r.ID)
	}
	if len(r.Steps) == 0 {
		return fmt.Errorf("recipe %q has no steps", r.ID)
	}
	for i, s := range r.Steps {
		if strings.TrimSpace(s.Text) == "" {
			return fmt.Errorf("recipe %q step %d has no text", r.ID, i+1)
		}
	}
	return nil
}

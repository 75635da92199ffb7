package cookbook

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/mtreloar/souschef/internal/logging"
	"github.com/mtreloar/souschef/internal/recipe"
)

// Library is an in-memory index over a directory of recipe YAML files.
// The directory is read once at load time; re-scan by calling Load again.
type Library struct {
	dir     string
	recipes map[string]*recipe.Recipe
}

// Load reads every .yaml/.yml file in dir (non-recursive) into a Library.
// Files that fail to parse are skipped with a warning rather than
// aborting the whole cookbook; one bad recipe shouldn't hide the rest.
func Load(dir string) (*Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read cookbook directory: %w", err)
	}

	lib := &Library{
		dir:     dir,
		recipes: make(map[string]*recipe.Recipe),
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		r, err := recipe.LoadFile(path)
		if err != nil {
			logging.Warn("Skipping unreadable recipe",
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}
		if _, dup := lib.recipes[r.ID]; dup {
			logging.Warn("Skipping recipe with duplicate id",
				zap.String("path", path),
				zap.String("recipe", r.ID),
			)
			continue
		}
		lib.recipes[r.ID] = r
	}

	return lib, nil
}

// Dir returns the directory the library was loaded from
func (l *Library) Dir() string {
	return l.dir
}

// Len returns the number of recipes in the library
func (l *Library) Len() int {
	return len(l.recipes)
}

// Get looks up a recipe by id
func (l *Library) Get(id string) (*recipe.Recipe, bool) {
	r, ok := l.recipes[id]
	return r, ok
}

// List returns all recipes sorted by title
func (l *Library) List() []*recipe.Recipe {
	out := make([]*recipe.Recipe, 0, len(l.recipes))
	for _, r := range l.recipes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
	})
	return out
}

// Suggest returns up to limit suggestion-chip labels for a query.
// Suggestions are drawn from recipe tags and titles: a label matches
// when the query is a case-insensitive prefix of any of its words.
// An empty query returns the most common tags, so the chips row always
// has something to offer.
func (l *Library) Suggest(query string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	query = strings.ToLower(strings.TrimSpace(query))

	// Count tag usage so popular tags sort first
	counts := make(map[string]int)
	var labels []string
	add := func(label string) {
		key := strings.ToLower(label)
		if counts[key] == 0 {
			labels = append(labels, label)
		}
		counts[key]++
	}

	for _, r := range l.recipes {
		for _, tag := range r.Tags {
			if matchesQuery(tag, query) {
				add(tag)
			}
		}
		if query != "" && matchesQuery(r.Title, query) {
			add(r.Title)
		}
	}

	sort.Slice(labels, func(i, j int) bool {
		ci, cj := counts[strings.ToLower(labels[i])], counts[strings.ToLower(labels[j])]
		if ci != cj {
			return ci > cj
		}
		return strings.ToLower(labels[i]) < strings.ToLower(labels[j])
	})

	if len(labels) > limit {
		labels = labels[:limit]
	}
	return labels
}

// matchesQuery reports whether any word of label starts with query.
// An empty query matches everything.
func matchesQuery(label, query string) bool {
	if query == "" {
		return true
	}
	for _, word := range strings.Fields(strings.ToLower(label)) {
		if strings.HasPrefix(word, query) {
			return true
		}
	}
	return false
}

package recipe

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Recipe is a single recipe document as stored in the cookbook.
type Recipe struct {
	// ID uniquely identifies the recipe within a cookbook.
	// Derived from the filename when not set in the document.
	ID string `yaml:"id,omitempty" json:"id"`

	// Title is the human-readable recipe name (e.g., "Shakshuka")
	Title string `yaml:"title" json:"title"`

	// Description is an optional one-paragraph summary
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Tags are free-form labels used for search suggestions
	// (e.g., "breakfast", "vegetarian", "30-minutes")
	Tags []string `yaml:"tags,omitempty" json:"tags,omitempty"`

	// Servings is the number of portions the recipe yields
	Servings int `yaml:"servings,omitempty" json:"servings,omitempty"`

	// Ingredients lists what the recipe needs
	Ingredients []Ingredient `yaml:"ingredients,omitempty" json:"ingredients,omitempty"`

	// Steps are the ordered cooking instructions. Cooking mode
	// navigates over this slice and never modifies it.
	Steps []Step `yaml:"steps" json:"steps"`
}

// Ingredient is a single line of the ingredient list.
type Ingredient struct {
	Name     string  `yaml:"name" json:"name"`
	Quantity float64 `yaml:"quantity,omitempty" json:"quantity,omitempty"`
	Unit     string  `yaml:"unit,omitempty" json:"unit,omitempty"`
}

// Step is one cooking instruction. The step navigator treats steps as
// opaque; only the presentation layer reads these fields.
type Step struct {
	// Text is the instruction itself
	Text string `yaml:"text" json:"text"`

	// Duration is an optional timer hint (e.g., "10m" for simmering)
	Duration Duration `yaml:"duration,omitempty" json:"duration,omitempty"`
}

// Duration wraps time.Duration so recipe documents can write human-friendly
// values like "10m" or "1h30m" instead of nanosecond integers.
type Duration time.Duration

// UnmarshalYAML parses durations from "10m"-style strings
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like \"10m\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders durations back in the same compact string form
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// MarshalJSON renders durations as strings for the companion API
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", time.Duration(d).String())), nil
}

// UnmarshalJSON parses durations from JSON strings
func (d *Duration) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String returns a one-line summary of the recipe
func (r *Recipe) String() string {
	return fmt.Sprintf("%s (%d steps, serves %d)", r.Title, len(r.Steps), r.Servings)
}

// HasTag reports whether the recipe carries the given tag (case-insensitive)
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// TotalDuration sums the duration hints of all steps. Steps without a
// duration contribute nothing, so this is a lower bound.
func (r *Recipe) TotalDuration() time.Duration {
	var total time.Duration
	for _, s := range r.Steps {
		total += s.Duration.Std()
	}
	return total
}

// String returns the ingredient as it would appear on a shopping list
func (i Ingredient) String() string {
	switch {
	case i.Quantity == 0 && i.Unit == "":
		return i.Name
	case i.Unit == "":
		return fmt.Sprintf("%s %s", formatQuantity(i.Quantity), i.Name)
	default:
		return fmt.Sprintf("%s %s %s", formatQuantity(i.Quantity), i.Unit, i.Name)
	}
}

// formatQuantity trims trailing zeros so "2.0" prints as "2"
func formatQuantity(q float64) string {
	s := strings.TrimRight(fmt.Sprintf("%.2f", q), "0")
	return strings.TrimRight(s, ".")
}

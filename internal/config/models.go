package config

// MaxRating is the number of stars a recipe can receive.
const MaxRating = 5

// Registry represents the entire user configuration file.
// This stores application preferences and per-recipe metadata such as
// star ratings. Recipe documents themselves live in the cookbook
// directory, not here.
type Registry struct {
	Version     int            `yaml:"version"`
	Preferences *Preferences   `yaml:"preferences,omitempty"`
	Ratings     map[string]int `yaml:"ratings,omitempty"` // Keyed by recipe id, 0-5 stars
	LastRecipe  string         `yaml:"last_recipe,omitempty"`
}

// Preferences represents application-wide user preferences. These back
// the toggle switches in the TUI.
type Preferences struct {
	Units      string `yaml:"units"`       // "metric" or "imperial"
	KeepAwake  bool   `yaml:"keep_awake"`  // Keep the terminal session from idling in cooking mode
	ShowTimers bool   `yaml:"show_timers"` // Show step timers when a step carries a duration
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Ratings: make(map[string]int),
		Preferences: &Preferences{
			Units:      "metric",
			KeepAwake:  true,
			ShowTimers: true,
		},
	}
}

// Rating returns the stored star rating for a recipe, 0 if unrated.
func (r *Registry) Rating(recipeID string) int {
	return r.Ratings[recipeID]
}

// SetRating stores a star rating for a recipe. Out-of-range values are
// clamped into [0, MaxRating] rather than rejected - the same permissive
// policy the step navigator applies to indices.
func (r *Registry) SetRating(recipeID string, stars int) {
	if r.Ratings == nil {
		r.Ratings = make(map[string]int)
	}
	if stars < 0 {
		stars = 0
	}
	if stars > MaxRating {
		stars = MaxRating
	}
	r.Ratings[recipeID] = stars
}

// SetLastRecipe remembers the most recently cooked recipe so the TUI
// can offer to resume it.
func (r *Registry) SetLastRecipe(recipeID string) {
	r.LastRecipe = recipeID
}

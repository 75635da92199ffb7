package recipe

import (
	"fmt"
	"strings"
	"time"
)

// Summary returns a one-line summary suitable for list output
func (r *Recipe) Summary() string {
	parts := []string{fmt.Sprintf("%-24s %2d steps", r.Title, len(r.Steps))}
	if r.Servings > 0 {
		parts = append(parts, fmt.Sprintf("serves %d", r.Servings))
	}
	if d := r.TotalDuration(); d > 0 {
		parts = append(parts, fmt.Sprintf("~%s", formatDuration(d)))
	}
	if len(r.Tags) > 0 {
		parts = append(parts, strings.Join(r.Tags, ", "))
	}
	return strings.Join(parts, "  ")
}

// FormatDetailed returns the full multi-section rendering of the recipe
// used by "souschef show"
func (r *Recipe) FormatDetailed() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== %s ===\n", r.Title))
	if r.Description != "" {
		b.WriteString(r.Description + "\n")
	}
	if r.Servings > 0 {
		b.WriteString(fmt.Sprintf("Serves:   %d\n", r.Servings))
	}
	if d := r.TotalDuration(); d > 0 {
		b.WriteString(fmt.Sprintf("Time:     ~%s\n", formatDuration(d)))
	}
	if len(r.Tags) > 0 {
		b.WriteString(fmt.Sprintf("Tags:     %s\n", strings.Join(r.Tags, ", ")))
	}

	if len(r.Ingredients) > 0 {
		b.WriteString("\n=== Ingredients ===\n")
		for _, ing := range r.Ingredients {
			b.WriteString(fmt.Sprintf("  - %s\n", ing))
		}
	}

	b.WriteString("\n=== Steps ===\n")
	for i, s := range r.Steps {
		if s.Duration > 0 {
			b.WriteString(fmt.Sprintf("%2d. %s (%s)\n", i+1, s.Text, formatDuration(s.Duration.Std())))
		} else {
			b.WriteString(fmt.Sprintf("%2d. %s\n", i+1, s.Text))
		}
	}

	return b.String()
}

// FormatCompact returns a short rendering: title plus numbered steps
func (r *Recipe) FormatCompact() string {
	var b strings.Builder
	b.WriteString(r.Title + "\n")
	for i, s := range r.Steps {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, s.Text))
	}
	return b.String()
}

// formatDuration renders durations without zero-valued components,
// so 90 minutes prints as "1h30m" and 10 minutes as "10m"
func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

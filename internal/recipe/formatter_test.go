package recipe

import (
	"strings"
	"testing"
	"time"
)

func testRecipe(t *testing.T) *Recipe {
	t.Helper()
	r, err := Parse([]byte(sampleYAML), "shakshuka")
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestFormatDetailed(t *testing.T) {
	out := testRecipe(t).FormatDetailed()

	for _, want := range []string{
		"=== Shakshuka ===",
		"Serves:   2",
		"=== Ingredients ===",
		"400 g crushed tomatoes",
		"=== Steps ===",
		" 1. Soften the onion",
		"(10m)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatDetailed() missing %q\noutput:\n%s", want, out)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	out := testRecipe(t).FormatCompact()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("FormatCompact() has %d lines, want 4 (title + 3 steps)", len(lines))
	}
	if lines[0] != "Shakshuka" {
		t.Errorf("first line = %q, want title", lines[0])
	}
	if !strings.HasPrefix(lines[3], "3. ") {
		t.Errorf("steps should be numbered, got %q", lines[3])
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{10 * time.Minute, "10m"},
		{90 * time.Minute, "1h30m"},
		{2 * time.Hour, "2h"},
		{45 * time.Second, "1m"}, // rounds to nearest minute
	}

	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

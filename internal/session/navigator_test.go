package session

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/mtreloar/souschef/internal/recipe"
)

// makeSteps builds a step sequence of the given length
func makeSteps(n int) []recipe.Step {
	steps := make([]recipe.Step, n)
	for i := range steps {
		steps[i] = recipe.Step{Text: fmt.Sprintf("step %d", i)}
	}
	return steps
}

func TestNewStartsAtZero(t *testing.T) {
	nav := NewStepNavigator(makeSteps(5))

	if got := nav.CurrentIndex(); got != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", got)
	}
	if !nav.IsFirst() {
		t.Error("IsFirst() = false on a fresh navigator")
	}
	if nav.IsLast() {
		t.Error("IsLast() = true on a fresh 5-step navigator")
	}
}

func TestAdvanceStopsAtLast(t *testing.T) {
	nav := NewStepNavigator(makeSteps(3))

	nav.Advance()
	if got := nav.CurrentIndex(); got != 1 {
		t.Errorf("after 1 Advance: index = %d, want 1", got)
	}
	nav.Advance()
	if got := nav.CurrentIndex(); got != 2 {
		t.Errorf("after 2 Advance: index = %d, want 2", got)
	}
	if !nav.IsLast() {
		t.Error("IsLast() = false at final step")
	}

	// Over-advancing is a no-op, not an error
	nav.Advance()
	if got := nav.CurrentIndex(); got != 2 {
		t.Errorf("Advance at last step moved cursor to %d, want 2", got)
	}
}

func TestRetreatStopsAtZero(t *testing.T) {
	nav := NewStepNavigator(makeSteps(3))

	nav.Retreat()
	if got := nav.CurrentIndex(); got != 0 {
		t.Errorf("Retreat at step 0 moved cursor to %d, want 0", got)
	}

	nav.JumpTo(2)
	nav.Retreat()
	if got := nav.CurrentIndex(); got != 1 {
		t.Errorf("Retreat from 2: index = %d, want 1", got)
	}
}

// Advance then Retreat restores the original index everywhere except at
// the last step, where Advance is a no-op so the pair nets out to a
// single Retreat.
func TestAdvanceRetreatRoundTrip(t *testing.T) {
	const n = 5
	for start := 0; start < n-1; start++ {
		nav := NewStepNavigator(makeSteps(n))
		nav.JumpTo(start)
		nav.Advance()
		nav.Retreat()
		if got := nav.CurrentIndex(); got != start {
			t.Errorf("round trip from %d ended at %d", start, got)
		}
	}

	// Boundary interaction: at n-1 the pair moves to n-2
	nav := NewStepNavigator(makeSteps(n))
	nav.JumpTo(n - 1)
	nav.Advance()
	nav.Retreat()
	if got := nav.CurrentIndex(); got != n-2 {
		t.Errorf("Advance+Retreat at last step ended at %d, want %d", got, n-2)
	}
}

func TestJumpToClamps(t *testing.T) {
	tests := []struct {
		length int
		target int
		want   int
	}{
		{3, 1, 1},
		{3, 0, 0},
		{3, 2, 2},
		{3, -1, 0},
		{3, -1000, 0},
		{3, 3, 2},
		{3, 999, 2},
		{1, 5, 0},
		{1, -5, 0},
	}

	for _, tt := range tests {
		nav := NewStepNavigator(makeSteps(tt.length))
		nav.JumpTo(tt.target)
		if got := nav.CurrentIndex(); got != tt.want {
			t.Errorf("JumpTo(%d) on length %d = %d, want %d", tt.target, tt.length, got, tt.want)
		}
	}
}

func TestResetFromAnywhere(t *testing.T) {
	for _, start := range []int{0, 1, 4} {
		nav := NewStepNavigator(makeSteps(5))
		nav.JumpTo(start)
		nav.Reset()
		if got := nav.CurrentIndex(); got != 0 {
			t.Errorf("Reset from %d: index = %d, want 0", start, got)
		}
		if !nav.IsFirst() {
			t.Error("IsFirst() = false after Reset")
		}
	}
}

func TestBoundaryFlags(t *testing.T) {
	// Single-step recipe: both flags at once
	nav := NewStepNavigator(makeSteps(1))
	if !nav.IsFirst() || !nav.IsLast() {
		t.Error("length-1 sequence should be both first and last")
	}

	// Multi-step: flags are mutually exclusive away from a length-1 edge
	nav = NewStepNavigator(makeSteps(4))
	for i := 0; i < 4; i++ {
		nav.JumpTo(i)
		if got := nav.IsFirst(); got != (i == 0) {
			t.Errorf("IsFirst() at %d = %v", i, got)
		}
		if got := nav.IsLast(); got != (i == 3) {
			t.Errorf("IsLast() at %d = %v", i, got)
		}
	}
}

func TestEmptySequence(t *testing.T) {
	nav := NewStepNavigator(nil)

	// Every operation is a no-op at index 0, never a panic
	nav.Advance()
	nav.Retreat()
	nav.JumpTo(7)
	nav.JumpTo(-7)
	nav.Reset()

	if got := nav.CurrentIndex(); got != 0 {
		t.Errorf("empty navigator index = %d, want 0", got)
	}
	if _, ok := nav.Current(); ok {
		t.Error("Current() reported a step for an empty sequence")
	}
	if !nav.IsFirst() {
		t.Error("IsFirst() = false for empty sequence")
	}
	if nav.IsLast() {
		t.Error("IsLast() = true for empty sequence")
	}
}

func TestCurrent(t *testing.T) {
	nav := NewStepNavigator(makeSteps(3))
	nav.Advance()

	step, ok := nav.Current()
	if !ok {
		t.Fatal("Current() reported no step")
	}
	if step.Text != "step 1" {
		t.Errorf("Current().Text = %q, want %q", step.Text, "step 1")
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		length int
		index  int
		want   float64
	}{
		{0, 0, 0},
		{1, 0, 1},
		{3, 0, 0},
		{3, 1, 0.5},
		{3, 2, 1},
	}

	for _, tt := range tests {
		nav := NewStepNavigator(makeSteps(tt.length))
		nav.JumpTo(tt.index)
		if got := nav.Progress(); got != tt.want {
			t.Errorf("Progress() at %d/%d = %v, want %v", tt.index, tt.length, got, tt.want)
		}
	}
}

// The walkthrough from the cooking-mode UI: next to the end, bounce off
// the boundary, back one, reset.
func TestCookingWalkthrough(t *testing.T) {
	nav := NewStepNavigator(makeSteps(3))

	nav.Advance()
	if nav.CurrentIndex() != 1 {
		t.Fatalf("index = %d, want 1", nav.CurrentIndex())
	}
	nav.Advance()
	if nav.CurrentIndex() != 2 || !nav.IsLast() {
		t.Fatalf("index = %d, IsLast = %v; want 2, true", nav.CurrentIndex(), nav.IsLast())
	}
	nav.Advance() // no-op at the boundary
	if nav.CurrentIndex() != 2 {
		t.Fatalf("index = %d after boundary Advance, want 2", nav.CurrentIndex())
	}
	nav.Retreat()
	if nav.CurrentIndex() != 1 {
		t.Fatalf("index = %d, want 1", nav.CurrentIndex())
	}
	nav.Reset()
	if nav.CurrentIndex() != 0 {
		t.Fatalf("index = %d after Reset, want 0", nav.CurrentIndex())
	}
}

// The cursor stays in [0, len-1] under arbitrary operation sequences,
// for a spread of sequence lengths.
func TestInvariantRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 100; trial++ {
		length := 1 + rng.Intn(20)
		nav := NewStepNavigator(makeSteps(length))

		for op := 0; op < 200; op++ {
			switch rng.Intn(4) {
			case 0:
				nav.Advance()
			case 1:
				nav.Retreat()
			case 2:
				nav.JumpTo(rng.Intn(61) - 30) // deliberately out of range
			case 3:
				nav.Reset()
			}

			idx := nav.CurrentIndex()
			if idx < 0 || idx > length-1 {
				t.Fatalf("trial %d: index %d escaped [0, %d]", trial, idx, length-1)
			}
			if got := nav.IsFirst(); got != (idx == 0) {
				t.Fatalf("trial %d: IsFirst() = %v at index %d", trial, got, idx)
			}
			if got := nav.IsLast(); got != (idx == length-1) {
				t.Fatalf("trial %d: IsLast() = %v at index %d of %d", trial, got, idx, length)
			}
		}
	}
}

package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// runCmd executes a widget command and returns the message it produces
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	return cmd()
}

func TestChipsNavigationWraps(t *testing.T) {
	m := NewChips([]string{"breakfast", "dinner", "baking"})

	if m.Cursor() != 0 {
		t.Fatalf("initial cursor = %d", m.Cursor())
	}

	m, _ = m.Update(keyPress("right"))
	if m.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor())
	}

	m, _ = m.Update(keyPress("right"))
	m, _ = m.Update(keyPress("right")) // wraps past the end
	if m.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0 after wrap", m.Cursor())
	}

	m, _ = m.Update(keyPress("left")) // wraps backwards
	if m.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2 after backwards wrap", m.Cursor())
	}
}

func TestChipsSelect(t *testing.T) {
	m := NewChips([]string{"breakfast", "dinner"})
	m, _ = m.Update(keyPress("right"))

	_, cmd := m.Update(keyPress("enter"))
	msg, ok := runCmd(t, cmd).(ChipSelectedMsg)
	if !ok {
		t.Fatal("expected ChipSelectedMsg")
	}
	if msg.Index != 1 || msg.Label != "dinner" {
		t.Errorf("msg = %+v", msg)
	}
}

func TestChipsEmpty(t *testing.T) {
	m := NewChips(nil)

	// No panics, no commands on an empty row
	m, cmd := m.Update(keyPress("enter"))
	if cmd != nil {
		t.Error("empty chips emitted a command")
	}
	if m.View() != "" {
		t.Error("empty chips rendered something")
	}
}

func TestChipsSetLabelsResetsOutOfRangeCursor(t *testing.T) {
	m := NewChips([]string{"a", "b", "c"})
	m, _ = m.Update(keyPress("left")) // cursor -> 2

	m = m.SetLabels([]string{"x", "y"})
	if m.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0 after shrinking labels", m.Cursor())
	}
}

func TestRatingAdjustClamps(t *testing.T) {
	m := NewRating(5)

	// Below zero is a no-op
	m, cmd := m.Update(keyPress("left"))
	if m.Stars() != 0 {
		t.Errorf("stars = %d, want 0", m.Stars())
	}
	if cmd != nil {
		t.Error("no-op adjustment emitted a command")
	}

	m, cmd = m.Update(keyPress("right"))
	if m.Stars() != 1 {
		t.Errorf("stars = %d, want 1", m.Stars())
	}
	if msg := runCmd(t, cmd).(RatingChangedMsg); msg.Stars != 1 {
		t.Errorf("msg = %+v", msg)
	}

	// Digits jump directly, clamped to max
	m, _ = m.Update(keyPress("9"))
	if m.Stars() != 5 {
		t.Errorf("stars = %d, want 5 (digit clamped)", m.Stars())
	}

	m, _ = m.Update(keyPress("3"))
	if m.Stars() != 3 {
		t.Errorf("stars = %d, want 3", m.Stars())
	}

	m, _ = m.Update(keyPress("0"))
	if m.Stars() != 0 {
		t.Errorf("stars = %d, want 0", m.Stars())
	}
}

func TestRatingSetStarsClamps(t *testing.T) {
	m := NewRating(5)

	if got := m.SetStars(99).Stars(); got != 5 {
		t.Errorf("SetStars(99) = %d, want 5", got)
	}
	if got := m.SetStars(-1).Stars(); got != 0 {
		t.Errorf("SetStars(-1) = %d, want 0", got)
	}
}

func TestRatingView(t *testing.T) {
	view := NewRating(5).SetStars(3).View()

	if got := strings.Count(view, StarFilled); got != 3 {
		t.Errorf("filled stars = %d, want 3", got)
	}
	if got := strings.Count(view, StarEmpty); got != 2 {
		t.Errorf("empty stars = %d, want 2", got)
	}
}

func TestToggleFlip(t *testing.T) {
	m := NewToggle("keep_awake", "Keep awake", false)

	m, cmd := m.Update(keyPress(" "))
	if !m.On() {
		t.Error("toggle should be on after space")
	}
	msg, ok := runCmd(t, cmd).(ToggleChangedMsg)
	if !ok {
		t.Fatal("expected ToggleChangedMsg")
	}
	if msg.ID != "keep_awake" || !msg.On {
		t.Errorf("msg = %+v", msg)
	}

	m, _ = m.Update(keyPress("enter"))
	if m.On() {
		t.Error("toggle should be off after second flip")
	}

	// Unrelated keys don't flip
	m, cmd = m.Update(keyPress("x"))
	if m.On() || cmd != nil {
		t.Error("unrelated key flipped the toggle")
	}
}

func TestStepMenuBoundedCursor(t *testing.T) {
	m := NewStepMenu([]string{"one", "two", "three"}, 1)

	if m.Cursor() != 1 {
		t.Fatalf("cursor should start on the current step, got %d", m.Cursor())
	}

	// Bounded, not wrapping
	m, _ = m.Update(keyPress("up"))
	m, _ = m.Update(keyPress("up"))
	if m.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor())
	}

	m, _ = m.Update(keyPress("down"))
	m, _ = m.Update(keyPress("down"))
	m, _ = m.Update(keyPress("down"))
	if m.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", m.Cursor())
	}
}

func TestStepMenuChoose(t *testing.T) {
	m := NewStepMenu([]string{"one", "two", "three"}, 0)
	m, _ = m.Update(keyPress("down"))

	_, cmd := m.Update(keyPress("enter"))
	msg, ok := runCmd(t, cmd).(StepChosenMsg)
	if !ok {
		t.Fatal("expected StepChosenMsg")
	}
	if msg.Index != 1 {
		t.Errorf("Index = %d, want 1", msg.Index)
	}
}

func TestStepMenuClampsCurrent(t *testing.T) {
	// An out-of-range current step must not place the cursor out of range
	m := NewStepMenu([]string{"one", "two"}, 99)
	if m.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor())
	}

	m = NewStepMenu([]string{"one", "two"}, -5)
	if m.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor())
	}
}

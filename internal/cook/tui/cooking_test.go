package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtreloar/souschef/internal/config"
	"github.com/mtreloar/souschef/internal/cookbook"
	"github.com/mtreloar/souschef/internal/recipe"
	"github.com/mtreloar/souschef/internal/session"
	"github.com/mtreloar/souschef/internal/ui"
)

func testCookingModel() CookingModel {
	r := &recipe.Recipe{
		ID:    "test-soup",
		Title: "Test Soup",
		Steps: []recipe.Step{
			{Text: "Chop the onions"},
			{Text: "Simmer the stock"},
			{Text: "Season and serve"},
		},
	}
	return NewCookingModel(session.New(r), config.NewRegistry())
}

func TestCookingNavigationKeys(t *testing.T) {
	m := testCookingModel()

	if m.State.StepIndex != 0 || !m.State.IsFirst {
		t.Fatalf("unexpected initial state: %+v", m.State)
	}

	next := tea.KeyMsg{Type: tea.KeyRight}
	updated, _ := m.Update(next)
	m = updated.(CookingModel)
	if m.State.StepIndex != 1 {
		t.Errorf("StepIndex = %d after next, want 1", m.State.StepIndex)
	}

	updated, _ = m.Update(next)
	m = updated.(CookingModel)
	updated, _ = m.Update(next) // already on the last step
	m = updated.(CookingModel)
	if m.State.StepIndex != 2 || !m.State.IsLast {
		t.Errorf("state after repeated next = %+v, want pinned to last", m.State)
	}

	prev := tea.KeyMsg{Type: tea.KeyLeft}
	updated, _ = m.Update(prev)
	m = updated.(CookingModel)
	if m.State.StepIndex != 1 {
		t.Errorf("StepIndex = %d after prev, want 1", m.State.StepIndex)
	}

	restart := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}
	updated, _ = m.Update(restart)
	m = updated.(CookingModel)
	if m.State.StepIndex != 0 || !m.State.IsFirst {
		t.Errorf("state after restart = %+v, want first step", m.State)
	}
}

func TestCookingFinishOnlyOnLastStep(t *testing.T) {
	m := testCookingModel()

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	updated, _ := m.Update(enter)
	m = updated.(CookingModel)
	if m.IsFinished() {
		t.Fatal("finished from the first step")
	}

	m.State = m.Session.JumpTo(999) // clamps to the last step
	updated, _ = m.Update(enter)
	m = updated.(CookingModel)
	if !m.IsFinished() {
		t.Error("enter on the last step should finish the cook")
	}
}

func TestCookingStepMenuJump(t *testing.T) {
	m := testCookingModel()

	jump := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}
	updated, _ := m.Update(jump)
	m = updated.(CookingModel)
	if !m.MenuOpen {
		t.Fatal("menu should open on j")
	}

	updated, _ = m.Update(ui.StepChosenMsg{Index: 2})
	m = updated.(CookingModel)
	if m.MenuOpen {
		t.Error("menu should close after choosing a step")
	}
	if m.State.StepIndex != 2 {
		t.Errorf("StepIndex = %d, want 2", m.State.StepIndex)
	}

	// Out-of-range menu choices land on the nearest valid step
	updated, _ = m.Update(ui.StepChosenMsg{Index: -7})
	m = updated.(CookingModel)
	if m.State.StepIndex != 0 {
		t.Errorf("StepIndex = %d after jump to -7, want 0", m.State.StepIndex)
	}
}

func TestCookingBackRequested(t *testing.T) {
	m := testCookingModel()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(CookingModel)
	if !m.IsBackRequested() {
		t.Error("esc should request going back to the cookbook")
	}
}

func TestProgressRatio(t *testing.T) {
	m := testCookingModel()

	if got := m.progressRatio(); got != 0 {
		t.Errorf("progress at first step = %v, want 0", got)
	}

	m.State = m.Session.JumpTo(1)
	if got := m.progressRatio(); got != 0.5 {
		t.Errorf("progress at middle step = %v, want 0.5", got)
	}

	m.State = m.Session.Advance()
	if got := m.progressRatio(); got != 1 {
		t.Errorf("progress at last step = %v, want 1", got)
	}
}

func TestAppFinishFlowShowsRating(t *testing.T) {
	r := &recipe.Recipe{
		ID:    "one-step",
		Title: "One Step",
		Steps: []recipe.Step{{Text: "Do the thing"}},
	}
	lib, err := cookbook.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	app := NewAppModel(lib, config.NewRegistry(), r)

	if app.CurrentScreen != ScreenCooking {
		t.Fatalf("screen = %s, want cooking", app.CurrentScreen)
	}

	// A single step is both first and last, so enter finishes immediately
	updated, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = updated.(AppModel)
	if app.CurrentScreen != ScreenDone {
		t.Fatalf("screen = %s, want done", app.CurrentScreen)
	}

	// Rate with a digit, confirm the widget tracked it
	updated, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")})
	app = updated.(AppModel)
	if app.Rating.Stars() != 4 {
		t.Errorf("stars = %d, want 4", app.Rating.Stars())
	}
}

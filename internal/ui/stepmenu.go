package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// StepChosenMsg is emitted when the user picks a step from the menu.
// The index is handed straight to the session's JumpTo, which clamps it;
// the menu does not validate against the step count itself.
type StepChosenMsg struct {
	Index int
}

// stepMenuKeyMap defines key bindings for the step menu
type stepMenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
}

var defaultStepMenuKeys = stepMenuKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Choose: key.NewBinding(key.WithKeys("enter")),
}

// StepMenu is a vertical menu over a recipe's steps, used as an overlay
// in cooking mode to jump around. Its own cursor is independent of the
// session cursor: browsing the menu doesn't move the cooking step until
// the user commits with enter.
type StepMenu struct {
	items   []string
	cursor  int
	current int // the session's step, marked but not moved
	keys    stepMenuKeyMap
}

// NewStepMenu creates a menu over the given step texts, with the menu
// cursor starting on the session's current step.
func NewStepMenu(items []string, current int) StepMenu {
	m := StepMenu{
		items: items,
		keys:  defaultStepMenuKeys,
	}
	m.current = m.clamp(current)
	m.cursor = m.current
	return m
}

// Cursor returns the menu cursor position.
func (m StepMenu) Cursor() int {
	return m.cursor
}

// Update handles key input. The menu cursor is bounded, not wrapping:
// up at the top and down at the bottom are no-ops, mirroring the
// session's own boundary behavior.
func (m StepMenu) Update(msg tea.Msg) (StepMenu, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Choose):
		index := m.cursor
		return m, func() tea.Msg {
			return StepChosenMsg{Index: index}
		}
	}

	return m, nil
}

// View renders the menu with the cursor and the session's current step
// marked; steps before the current one render as done.
func (m StepMenu) View() string {
	var b strings.Builder
	for i, item := range m.items {
		cursor := " "
		if i == m.cursor {
			cursor = MenuCursorMarker
		}
		marker := " "
		if i == m.current {
			marker = MenuCurrentMarker
		}

		line := fmt.Sprintf("%s %s %2d. %s", cursor, marker, i+1, item)
		switch {
		case i == m.cursor:
			line = MenuCursorStyle.Render(line)
		case i == m.current:
			line = MenuCurrentStyle.Render(line)
		case i < m.current:
			line = MenuDoneStyle.Render(line)
		default:
			line = MenuItemStyle.Render(line)
		}
		b.WriteString(line)
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m StepMenu) clamp(index int) int {
	if index < 0 {
		return 0
	}
	if index > len(m.items)-1 {
		if len(m.items) == 0 {
			return 0
		}
		return len(m.items) - 1
	}
	return index
}

package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ToggleChangedMsg is emitted when a toggle flips. ID identifies which
// toggle changed when several share a screen.
type ToggleChangedMsg struct {
	ID string
	On bool
}

// toggleKeyMap defines key bindings for the toggle switch
type toggleKeyMap struct {
	Flip key.Binding
}

var defaultToggleKeys = toggleKeyMap{
	Flip: key.NewBinding(key.WithKeys(" ", "enter")),
}

// Toggle is an on/off switch. It holds no preference logic of its own;
// it just flips and reports, and the caller persists the new value.
type Toggle struct {
	id    string
	label string
	on    bool
	keys  toggleKeyMap
}

// NewToggle creates a toggle with an identifier and display label.
func NewToggle(id, label string, on bool) Toggle {
	return Toggle{
		id:    id,
		label: label,
		on:    on,
		keys:  defaultToggleKeys,
	}
}

// On returns the current state.
func (m Toggle) On() bool {
	return m.on
}

// ID returns the toggle identifier.
func (m Toggle) ID() string {
	return m.id
}

// SetOn sets the state without emitting a message.
func (m Toggle) SetOn(on bool) Toggle {
	m.on = on
	return m
}

// Update handles key input: space or enter flips the switch.
func (m Toggle) Update(msg tea.Msg) (Toggle, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !key.Matches(keyMsg, m.keys.Flip) {
		return m, nil
	}

	m.on = !m.on
	id, on := m.id, m.on
	return m, func() tea.Msg {
		return ToggleChangedMsg{ID: id, On: on}
	}
}

// View renders the toggle as a label with an ON/OFF pill.
func (m Toggle) View() string {
	knob := ToggleOffStyle.Render(" OFF ")
	if m.on {
		knob = ToggleOnStyle.Render("  ON ")
	}
	return ToggleLabelStyle.Render(m.label) + " " + knob
}

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ChipSelectedMsg is emitted when the user picks a suggestion chip.
type ChipSelectedMsg struct {
	Index int
	Label string
}

// chipsKeyMap defines key bindings for the chips row
type chipsKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
}

var defaultChipsKeys = chipsKeyMap{
	Left:   key.NewBinding(key.WithKeys("left", "shift+tab")),
	Right:  key.NewBinding(key.WithKeys("right", "tab")),
	Select: key.NewBinding(key.WithKeys("enter")),
}

// Chips is a horizontal row of suggestion chips. The widget owns only
// its focus position; what a selection means is entirely up to the
// caller, who receives a ChipSelectedMsg and acts on the label.
type Chips struct {
	labels []string
	cursor int
	keys   chipsKeyMap
}

// NewChips creates a chips row over the given labels.
func NewChips(labels []string) Chips {
	return Chips{
		labels: labels,
		keys:   defaultChipsKeys,
	}
}

// SetLabels replaces the chip labels, keeping the cursor in range.
func (m Chips) SetLabels(labels []string) Chips {
	m.labels = labels
	if m.cursor > len(labels)-1 {
		m.cursor = 0
	}
	return m
}

// Labels returns the current chip labels.
func (m Chips) Labels() []string {
	return m.labels
}

// Cursor returns the focused chip index.
func (m Chips) Cursor() int {
	return m.cursor
}

// Update handles key input. Left/right move focus with wraparound;
// enter emits a ChipSelectedMsg for the focused chip.
func (m Chips) Update(msg tea.Msg) (Chips, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.labels) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Left):
		m.cursor--
		if m.cursor < 0 {
			m.cursor = len(m.labels) - 1
		}

	case key.Matches(keyMsg, m.keys.Right):
		m.cursor++
		if m.cursor > len(m.labels)-1 {
			m.cursor = 0
		}

	case key.Matches(keyMsg, m.keys.Select):
		index, label := m.cursor, m.labels[m.cursor]
		return m, func() tea.Msg {
			return ChipSelectedMsg{Index: index, Label: label}
		}
	}

	return m, nil
}

// View renders the chips row.
func (m Chips) View() string {
	if len(m.labels) == 0 {
		return ""
	}

	parts := make([]string, len(m.labels))
	for i, label := range m.labels {
		if i == m.cursor {
			parts[i] = ChipFocusedStyle.Render(label)
		} else {
			parts[i] = ChipStyle.Render(label)
		}
	}
	return strings.Join(parts, " ")
}

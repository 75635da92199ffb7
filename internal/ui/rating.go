package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RatingChangedMsg is emitted whenever the selected star count changes.
type RatingChangedMsg struct {
	Stars int
}

// ratingKeyMap defines key bindings for the star rating widget
type ratingKeyMap struct {
	Less key.Binding
	More key.Binding
}

var defaultRatingKeys = ratingKeyMap{
	Less: key.NewBinding(key.WithKeys("left", "h")),
	More: key.NewBinding(key.WithKeys("right", "l")),
}

// Rating is a star rating widget. Arrow keys adjust by one star and
// digit keys jump straight to a value; both paths clamp into [0, max]
// instead of rejecting input.
type Rating struct {
	stars int
	max   int
	keys  ratingKeyMap
}

// NewRating creates a rating widget with max stars, starting at zero.
func NewRating(max int) Rating {
	if max < 1 {
		max = 1
	}
	return Rating{
		max:  max,
		keys: defaultRatingKeys,
	}
}

// SetStars sets the current value, clamped into [0, max].
func (m Rating) SetStars(stars int) Rating {
	m.stars = m.clamp(stars)
	return m
}

// Stars returns the current value.
func (m Rating) Stars() int {
	return m.stars
}

// Update handles key input.
func (m Rating) Update(msg tea.Msg) (Rating, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	old := m.stars
	switch {
	case key.Matches(keyMsg, m.keys.Less):
		m.stars = m.clamp(m.stars - 1)

	case key.Matches(keyMsg, m.keys.More):
		m.stars = m.clamp(m.stars + 1)

	default:
		// Digit keys jump directly: "0" clears, "5" is five stars
		s := keyMsg.String()
		if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
			m.stars = m.clamp(int(s[0] - '0'))
		}
	}

	if m.stars != old {
		stars := m.stars
		return m, func() tea.Msg {
			return RatingChangedMsg{Stars: stars}
		}
	}
	return m, nil
}

// View renders the stars, filled up to the current value.
func (m Rating) View() string {
	var b strings.Builder
	for i := 1; i <= m.max; i++ {
		if i <= m.stars {
			b.WriteString(StarFilledStyle.Render(StarFilled))
		} else {
			b.WriteString(StarEmptyStyle.Render(StarEmpty))
		}
	}
	return b.String()
}

func (m Rating) clamp(stars int) int {
	if stars < 0 {
		return 0
	}
	if stars > m.max {
		return m.max
	}
	return stars
}

package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette shared by all souschef widgets and screens
var (
	// Primary colors
	PrimaryColor = lipgloss.Color("#E8985E") // Warm orange - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - done markers
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	AccentColor  = lipgloss.Color("#F2C94C") // Yellow - stars, highlights
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

// Shared widget styles
var (
	// ChipStyle is an unfocused suggestion chip
	ChipStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1)

	// ChipFocusedStyle is the chip under the cursor
	ChipFocusedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1A1A1A")).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 1)

	// StarFilledStyle is a filled rating star
	StarFilledStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	// StarEmptyStyle is an empty rating star
	StarEmptyStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// ToggleOnStyle is the knob of a switched-on toggle
	ToggleOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(SuccessColor).
			Bold(true)

	// ToggleOffStyle is the knob of a switched-off toggle
	ToggleOffStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(MutedColor)

	// ToggleLabelStyle is the label next to a toggle
	ToggleLabelStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// MenuItemStyle is an unselected step-menu entry
	MenuItemStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// MenuCursorStyle is the step-menu entry under the cursor
	MenuCursorStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// MenuCurrentStyle marks the step the session is actually on
	MenuCurrentStyle = lipgloss.NewStyle().
				Foreground(AccentColor)

	// MenuDoneStyle is a step the cursor has moved past
	MenuDoneStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Strikethrough(true)
)

// Markers used by the widgets
const (
	MenuCursorMarker  = "❯"
	MenuCurrentMarker = "●"
	StarFilled        = "★"
	StarEmpty         = "☆"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, 24 // Default fallback
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if width > MaxContentWidth {
		width = MaxContentWidth
	}
	return width, height
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mtreloar/souschef/internal/ui"
	"github.com/mtreloar/souschef/internal/version"
)

// Application branding constants
const (
	AppName   = "SOUSCHEF"
	GitHubURL = "github.com/mtreloar/souschef"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#E8985E") // Warm orange
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	AccentColor    = lipgloss.Color("#F2C94C") // Yellow
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF5F5F") // Red

	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#E8985E") // Same as primary
	HighlightColor = lipgloss.Color("#43BF6D") // Same as secondary
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	StepTextStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(1, 2)

	StepCounterStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true)

	DurationStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(1, 0)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	DoneBannerStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderSubtitle renders a subtitle with consistent styling
func RenderSubtitle(text string) string {
	return SubtitleStyle.Render(text)
}

// RenderError renders an error message
func RenderError(text string) string {
	return ErrorStyle.Render("✗ " + text)
}

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// RenderApplicationContainer wraps screen content in the shared full-screen
// layout: bordered panel, application header, and a context-sensitive footer.
// Every screen's View should render through this. Pattern:
//
//	func (m Model) View() string {
//	    content := m.buildContent()
//	    helpText := m.Help.View(m.Keys)
//	    return RenderApplicationContainer(content, helpText, m.Width, m.Height)
//	}
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	// Before the first WindowSizeMsg arrives, fall back to the real
	// terminal dimensions
	if terminalWidth == 0 || terminalHeight == 0 {
		terminalWidth, terminalHeight = ui.GetTerminalSize()
	}
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth - 4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth - 4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(lipgloss.NewStyle().Foreground(SubtleColor).Render(footerText)),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth-2).
		Height(terminalHeight-2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}

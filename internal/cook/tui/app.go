package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mtreloar/souschef/internal/config"
	"github.com/mtreloar/souschef/internal/cookbook"
	"github.com/mtreloar/souschef/internal/logging"
	"github.com/mtreloar/souschef/internal/recipe"
	"github.com/mtreloar/souschef/internal/session"
	"github.com/mtreloar/souschef/internal/ui"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenBrowse  Screen = "browse"
	ScreenCooking Screen = "cooking"
	ScreenDone    Screen = "done"
)

// doneKeyMap defines key bindings for the done screen
type doneKeyMap struct {
	Rate   key.Binding
	Save   key.Binding
	Browse key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k doneKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rate, k.Save, k.Browse, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k doneKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Rate, k.Save, k.Browse, k.Quit},
	}
}

// AppModel is the top-level coordinator model that manages screen transitions
type AppModel struct {
	CurrentScreen Screen

	// Screen models
	BrowseModel  BrowseModel
	CookingModel CookingModel

	// Shared application state
	Library       *cookbook.Library
	Registry      *config.Registry
	CurrentRecipe *recipe.Recipe

	// Done screen state
	Rating     ui.Rating
	RatingDone bool

	// UI state
	Width  int
	Height int

	// Help
	Help     help.Model
	DoneKeys doneKeyMap
}

// NewAppModel creates a new application model. When startRecipe is non-nil
// it skips the cookbook and goes straight into cooking mode.
func NewAppModel(lib *cookbook.Library, reg *config.Registry, startRecipe *recipe.Recipe) AppModel {
	doneKeys := doneKeyMap{
		Rate: key.NewBinding(
			key.WithKeys("left", "right", "0", "1", "2", "3", "4", "5"),
			key.WithHelp("←/→ or 0-5", "rate"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save rating"),
		),
		Browse: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b", "cookbook"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}

	model := AppModel{
		CurrentScreen: ScreenBrowse,
		Library:       lib,
		Registry:      reg,
		Help:          help.New(),
		DoneKeys:      doneKeys,
		BrowseModel:   NewBrowseModel(lib),
	}

	if startRecipe != nil {
		model.CurrentScreen = ScreenCooking
		model.CurrentRecipe = startRecipe
		model.CookingModel = NewCookingModel(session.New(startRecipe), reg)
	}

	return model
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	switch m.CurrentScreen {
	case ScreenBrowse:
		return m.BrowseModel.Init()
	case ScreenCooking:
		return m.CookingModel.Init()
	default:
		return nil
	}
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// Propagate to all screens
		m.BrowseModel.Width = msg.Width
		m.BrowseModel.Height = msg.Height
		m.CookingModel.Width = msg.Width
		m.CookingModel.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.CurrentScreen {
	case ScreenBrowse:
		updated, c := m.BrowseModel.Update(msg)
		m.BrowseModel = updated.(BrowseModel)
		cmd = c

		// Check if the cook picked a recipe
		if r := m.BrowseModel.SelectedRecipe(); r != nil {
			return m.startCooking(r)
		}

		// Quit from the cookbook (normal mode only)
		if !m.BrowseModel.SearchMode && !m.BrowseModel.ChipsFocus {
			if keyMsg, ok := msg.(tea.KeyMsg); ok {
				if keyMsg.String() == "q" || keyMsg.String() == "esc" {
					return m, tea.Quit
				}
			}
		}

	case ScreenCooking:
		updated, c := m.CookingModel.Update(msg)
		m.CookingModel = updated.(CookingModel)
		cmd = c

		if m.CookingModel.IsFinished() {
			return m.finishCooking()
		}
		if m.CookingModel.IsBackRequested() {
			return m.transitionToBrowse()
		}

	case ScreenDone:
		return m.handleDoneScreen(msg)
	}

	return m, cmd
}

// startCooking opens a cooking session for the chosen recipe
func (m AppModel) startCooking(r *recipe.Recipe) (tea.Model, tea.Cmd) {
	m.CurrentScreen = ScreenCooking
	m.CurrentRecipe = r
	m.CookingModel = NewCookingModel(session.New(r), m.Registry)
	m.CookingModel.Width = m.Width
	m.CookingModel.Height = m.Height

	m.Registry.SetLastRecipe(r.ID)
	if err := m.Registry.Save(); err != nil {
		logging.Warn("failed to save last recipe", zap.Error(err))
	}

	return m, m.CookingModel.Init()
}

// finishCooking moves to the done screen with the rating prompt
func (m AppModel) finishCooking() (tea.Model, tea.Cmd) {
	m.CurrentScreen = ScreenDone
	m.RatingDone = false
	m.Rating = ui.NewRating(config.MaxRating)
	if m.CurrentRecipe != nil {
		m.Rating = m.Rating.SetStars(m.Registry.Rating(m.CurrentRecipe.ID))
	}
	return m, nil
}

// transitionToBrowse returns to the cookbook with a fresh browse screen
func (m AppModel) transitionToBrowse() (tea.Model, tea.Cmd) {
	m.CurrentScreen = ScreenBrowse
	m.BrowseModel = NewBrowseModel(m.Library)
	m.BrowseModel.Width = m.Width
	m.BrowseModel.Height = m.Height
	return m, m.BrowseModel.Init()
}

// handleDoneScreen handles user input on the done screen
func (m AppModel) handleDoneScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// RatingChangedMsg and friends carry no state the widget
		// doesn't already hold
		return m, nil
	}

	switch keyMsg.String() {
	case "enter":
		if m.CurrentRecipe != nil {
			m.Registry.SetRating(m.CurrentRecipe.ID, m.Rating.Stars())
			if err := m.Registry.Save(); err != nil {
				logging.Warn("failed to save rating", zap.Error(err))
			}
			m.RatingDone = true
		}
		return m, nil

	case "b", "esc":
		return m.transitionToBrowse()

	case "q":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.Rating, cmd = m.Rating.Update(keyMsg)
	return m, cmd
}

// View renders the current screen
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenBrowse:
		return m.BrowseModel.View()
	case ScreenCooking:
		return m.CookingModel.View()
	case ScreenDone:
		return m.renderDoneScreen()
	default:
		return "Unknown screen"
	}
}

// renderDoneScreen renders the post-cooking rating screen
func (m AppModel) renderDoneScreen() string {
	var b strings.Builder

	b.WriteString(RenderTitle("✓ All done!"))
	b.WriteString("\n\n")

	if m.CurrentRecipe != nil {
		b.WriteString(fmt.Sprintf("  You finished %s.\n\n", m.CurrentRecipe.Title))
	}

	b.WriteString("  How was it?  ")
	b.WriteString(m.Rating.View())
	b.WriteString("\n")

	if m.RatingDone {
		b.WriteString("\n")
		b.WriteString("  " + DoneBannerStyle.Render("Rating saved."))
		b.WriteString("\n")
	}

	helpText := m.Help.View(m.DoneKeys)
	return RenderApplicationContainer(b.String(), helpText, m.Width, m.Height)
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mtreloar/souschef/internal/config"
	"github.com/mtreloar/souschef/internal/logging"
	"github.com/mtreloar/souschef/internal/session"
	"github.com/mtreloar/souschef/internal/ui"
)

// cookingKeyMap defines key bindings for the cooking screen
type cookingKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Jump     key.Binding
	Restart  key.Binding
	Timer    key.Binding
	Settings key.Binding
	Finish   key.Binding
	Back     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k cookingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Jump, k.Timer, k.Back}
}

// FullHelp returns keybindings for the expanded help view
func (k cookingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Jump, k.Restart},
		{k.Timer, k.Settings, k.Finish, k.Back},
	}
}

// overlayKeyMap defines key bindings while the step menu or settings are open
type overlayKeyMap struct {
	Navigate key.Binding
	Select   key.Binding
	Close    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k overlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Select, k.Close}
}

// FullHelp returns keybindings for the expanded help view
func (k overlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Select, k.Close},
	}
}

// CookingModel represents the step-by-step cooking screen state
type CookingModel struct {
	Session  *session.Session
	State    session.State
	Registry *config.Registry

	// Step menu overlay
	Menu     ui.StepMenu
	MenuOpen bool

	// Settings overlay
	SettingsOpen bool
	KeepAwake    ui.Toggle
	ShowTimers   ui.Toggle
	settingsSel  int

	// Step timer
	Timer        timer.Model
	TimerSet     bool
	TimerRunning bool
	timerStarted bool

	// Result state
	Finished      bool
	BackRequested bool

	// UI state
	Width       int
	Height      int
	ProgressBar progress.Model
	Help        help.Model
	Keys        cookingKeyMap
	OverlayKeys overlayKeyMap
}

// NewCookingModel creates a cooking screen bound to an active session
func NewCookingModel(sess *session.Session, reg *config.Registry) CookingModel {
	progressBar := progress.New(progress.WithDefaultGradient())
	progressBar.Width = 40

	h := help.New()

	keys := cookingKeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "n", " "),
			key.WithHelp("→/n", "next step"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "p"),
			key.WithHelp("←/p", "previous step"),
		),
		Jump: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "jump to step"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Timer: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "start/stop timer"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Finish: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "finish (last step)"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back to cookbook"),
		),
	}

	overlayKeys := overlayKeyMap{
		Navigate: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "navigate"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}

	m := CookingModel{
		Session:     sess,
		State:       sess.Snapshot(),
		Registry:    reg,
		ProgressBar: progressBar,
		Help:        h,
		Keys:        keys,
		OverlayKeys: overlayKeys,
	}

	prefs := reg.Preferences
	m.KeepAwake = ui.NewToggle("keep_awake", "Keep screen awake", prefs.KeepAwake)
	m.ShowTimers = ui.NewToggle("show_timers", "Show step timers", prefs.ShowTimers)
	m.armTimer()
	return m
}

// Init initializes the cooking model
func (m CookingModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m CookingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.MenuOpen {
			return m.updateMenu(msg)
		}
		if m.SettingsOpen {
			return m.updateSettings(msg)
		}
		return m.updateCooking(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case ui.StepChosenMsg:
		// Menu indexes map straight onto step indexes; out-of-range
		// targets are clamped by the session
		m.State = m.Session.JumpTo(msg.Index)
		m.MenuOpen = false
		m.armTimer()
		return m, nil

	case ui.ToggleChangedMsg:
		return m.applyToggle(msg)

	case timer.TickMsg:
		var cmd tea.Cmd
		m.Timer, cmd = m.Timer.Update(msg)
		return m, cmd

	case timer.StartStopMsg:
		var cmd tea.Cmd
		m.Timer, cmd = m.Timer.Update(msg)
		m.TimerRunning = m.Timer.Running()
		return m, cmd

	case timer.TimeoutMsg:
		m.TimerRunning = false
		return m, nil
	}

	return m, nil
}

// updateCooking handles keyboard input during normal cooking
func (m CookingModel) updateCooking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Next):
		m.State = m.Session.Advance()
		m.armTimer()
		return m, nil

	case key.Matches(msg, m.Keys.Prev):
		m.State = m.Session.Retreat()
		m.armTimer()
		return m, nil

	case key.Matches(msg, m.Keys.Restart):
		m.State = m.Session.Reset()
		m.armTimer()
		return m, nil

	case key.Matches(msg, m.Keys.Jump):
		labels := make([]string, 0, m.State.StepCount)
		for _, step := range m.Session.Recipe().Steps {
			labels = append(labels, step.Text)
		}
		m.Menu = ui.NewStepMenu(labels, m.State.StepIndex)
		m.MenuOpen = true
		return m, nil

	case key.Matches(msg, m.Keys.Timer):
		return m.toggleTimer()

	case key.Matches(msg, m.Keys.Settings):
		m.SettingsOpen = true
		m.settingsSel = 0
		return m, nil

	case key.Matches(msg, m.Keys.Finish):
		if m.State.IsLast {
			m.Finished = true
		}
		return m, nil

	case key.Matches(msg, m.Keys.Back):
		m.BackRequested = true
		return m, nil
	}

	return m, nil
}

// updateMenu handles keyboard input while the step menu overlay is open
func (m CookingModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.MenuOpen = false
		return m, nil
	}

	var cmd tea.Cmd
	m.Menu, cmd = m.Menu.Update(msg)
	return m, cmd
}

// updateSettings handles keyboard input while the settings overlay is open
func (m CookingModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "s":
		m.SettingsOpen = false
		return m, nil

	case "up", "k":
		if m.settingsSel > 0 {
			m.settingsSel--
		}
		return m, nil

	case "down", "j":
		if m.settingsSel < 1 {
			m.settingsSel++
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.settingsSel == 0 {
		m.KeepAwake, cmd = m.KeepAwake.Update(msg)
	} else {
		m.ShowTimers, cmd = m.ShowTimers.Update(msg)
	}
	return m, cmd
}

// applyToggle persists a changed preference to the config registry
func (m CookingModel) applyToggle(msg ui.ToggleChangedMsg) (tea.Model, tea.Cmd) {
	switch msg.ID {
	case "keep_awake":
		m.Registry.Preferences.KeepAwake = msg.On
	case "show_timers":
		m.Registry.Preferences.ShowTimers = msg.On
		if !msg.On {
			m.TimerSet = false
			m.TimerRunning = false
		} else {
			m.armTimer()
		}
	}

	if err := m.Registry.Save(); err != nil {
		logging.Warn("failed to save preferences", zap.Error(err))
	}
	return m, nil
}

// toggleTimer starts or stops the current step's timer
func (m CookingModel) toggleTimer() (tea.Model, tea.Cmd) {
	if !m.TimerSet {
		return m, nil
	}

	if !m.timerStarted {
		// A fresh timer starts ticking on Init; after that it is
		// paused and resumed through StartStopMsg
		m.timerStarted = true
		m.TimerRunning = true
		return m, m.Timer.Init()
	}
	return m, m.Timer.Toggle()
}

// armTimer prepares a fresh timer for the current step's duration, if any.
// The timer never starts on its own; the cook starts it explicitly.
func (m *CookingModel) armTimer() {
	m.TimerSet = false
	m.TimerRunning = false
	m.timerStarted = false

	if !m.Registry.Preferences.ShowTimers {
		return
	}

	steps := m.Session.Recipe().Steps
	if m.State.StepIndex >= len(steps) {
		return
	}
	if d := steps[m.State.StepIndex].Duration.Std(); d > 0 {
		m.Timer = timer.New(d)
		m.TimerSet = true
	}
}

// IsFinished reports whether the cook completed the last step
func (m CookingModel) IsFinished() bool {
	return m.Finished
}

// IsBackRequested reports whether the cook wants to return to the cookbook
func (m CookingModel) IsBackRequested() bool {
	return m.BackRequested
}

// View renders the cooking screen
func (m CookingModel) View() string {
	var content string
	var helpText string

	switch {
	case m.MenuOpen:
		content = m.renderMenu()
		helpText = m.Help.View(m.OverlayKeys)
	case m.SettingsOpen:
		content = m.renderSettings()
		helpText = m.Help.View(m.OverlayKeys)
	default:
		content = m.renderStep()
		// Grey out moves that would be no-ops at the boundaries
		m.Keys.Next.SetEnabled(!m.State.IsLast && m.State.StepCount > 0)
		m.Keys.Prev.SetEnabled(!m.State.IsFirst)
		m.Keys.Finish.SetEnabled(m.State.IsLast && m.State.StepCount > 0)
		helpText = m.Help.View(m.Keys)
	}

	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

// renderStep renders the current step with progress and timer
func (m CookingModel) renderStep() string {
	var b strings.Builder

	b.WriteString(RenderTitle(m.State.Title))
	b.WriteString("\n")

	counter := fmt.Sprintf("Step %d of %d", m.State.StepIndex+1, m.State.StepCount)
	if m.State.StepCount == 0 {
		counter = "This recipe has no steps"
	}
	b.WriteString("  " + StepCounterStyle.Render(counter))
	b.WriteString("\n\n")

	b.WriteString("  " + m.ProgressBar.ViewAs(m.progressRatio()))
	b.WriteString("\n\n")

	if m.State.StepText != "" {
		b.WriteString(PanelStyle.Render(m.State.StepText))
		b.WriteString("\n")
	}

	if m.TimerSet {
		b.WriteString("\n")
		steps := m.Session.Recipe().Steps
		d := steps[m.State.StepIndex].Duration.Std().Round(time.Second)
		switch {
		case m.TimerRunning:
			b.WriteString("  " + StepCounterStyle.Render("⏱ "+m.Timer.View()))
		case m.timerStarted:
			b.WriteString("  " + DurationStyle.Render("⏱ "+m.Timer.View()+" (paused)"))
		default:
			b.WriteString("  " + DurationStyle.Render(fmt.Sprintf("⏱ %s (press t to start)", d)))
		}
		b.WriteString("\n")
	}

	if m.State.IsLast && m.State.StepCount > 0 {
		b.WriteString("\n")
		b.WriteString("  " + DoneBannerStyle.Render("Last step! Press enter when you're done."))
		b.WriteString("\n")
	}

	return b.String()
}

// renderMenu renders the jump-to-step overlay
func (m CookingModel) renderMenu() string {
	var b strings.Builder
	b.WriteString(RenderTitle("Jump to step"))
	b.WriteString("\n")
	b.WriteString(m.Menu.View())
	return b.String()
}

// renderSettings renders the preferences overlay
func (m CookingModel) renderSettings() string {
	var b strings.Builder
	b.WriteString(RenderTitle("Settings"))
	b.WriteString("\n")

	rows := []string{m.KeepAwake.View(), m.ShowTimers.View()}
	for i, row := range rows {
		if i == m.settingsSel {
			b.WriteString(SelectedItemStyle.Render("→ ") + row)
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// progressRatio mirrors the navigator's progress through the sequence
func (m CookingModel) progressRatio() float64 {
	switch {
	case m.State.StepCount == 0:
		return 0
	case m.State.StepCount == 1:
		return 1
	default:
		return float64(m.State.StepIndex) / float64(m.State.StepCount-1)
	}
}

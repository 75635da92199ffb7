package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mtreloar/souschef/internal/cookbook"
	"github.com/mtreloar/souschef/internal/discovery"
	"github.com/mtreloar/souschef/internal/recipe"
	"github.com/mtreloar/souschef/internal/ui"
	"github.com/mtreloar/souschef/internal/urls"
)

// Messages for async operations
type scanStartMsg struct{}
type scanCompleteMsg struct {
	companions []*discovery.Companion
	err        error
}

// browseKeyMap defines key bindings for the browse screen
type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Search key.Binding
	Chips  key.Binding
	Scan   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Search, k.Chips, k.Scan, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Search, k.Chips, k.Scan, k.Quit},
	}
}

// searchKeyMap defines key bindings while the search input is focused
type searchKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.Cancel},
	}
}

// recipeItem wraps a Recipe for use with bubbles/list
type recipeItem struct {
	recipe *recipe.Recipe
}

// Implement list.Item interface
func (r recipeItem) FilterValue() string {
	return r.recipe.Title + " " + strings.Join(r.recipe.Tags, " ")
}

// recipeDelegate is a custom list delegate for rendering recipe cards
type recipeDelegate struct {
	width int
}

func (d recipeDelegate) Height() int { return 4 }

func (d recipeDelegate) Spacing() int { return 1 }

func (d recipeDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d recipeDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(recipeItem)
	if !ok {
		return
	}

	r := ri.recipe
	selected := index == m.Index()

	var content strings.Builder
	if selected {
		content.WriteString(SelectedItemStyle.Render("→ " + r.Title))
	} else {
		content.WriteString("  " + r.Title)
	}
	content.WriteString("\n")

	detail := fmt.Sprintf("  %d steps", len(r.Steps))
	if total := r.TotalDuration(); total > 0 {
		detail += " • " + total.Round(time.Minute).String()
	}
	if len(r.Tags) > 0 {
		detail += " • " + strings.Join(r.Tags, ", ")
	}
	content.WriteString(SubtitleStyle.Render(detail))

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 2).
		MarginLeft(2)

	cardWidth := d.width - 6
	if cardWidth < MinTerminalWidth-6 {
		cardWidth = MinTerminalWidth - 6
	}
	if cardWidth > MaxContentWidth-6 {
		cardWidth = MaxContentWidth - 6
	}
	cardStyle = cardStyle.Width(cardWidth)

	if selected {
		cardStyle = cardStyle.BorderForeground(HighlightColor)
	}

	fmt.Fprint(w, cardStyle.Render(content.String()))
}

// BrowseModel represents the recipe browsing screen state
type BrowseModel struct {
	Library *cookbook.Library

	// List and filter state
	RecipeList list.Model
	Query      string
	Selected   bool

	// Search input state
	SearchMode  bool
	SearchInput textinput.Model

	// Suggestion chips built from cookbook tags
	Chips      ui.Chips
	ChipsFocus bool

	// Companion scan state
	Scanning   bool
	Companions []*discovery.Companion
	ScanErr    error

	// UI state
	Width      int
	Height     int
	Spinner    spinner.Model
	Help       help.Model
	Keys       browseKeyMap
	SearchKeys searchKeyMap
}

// NewBrowseModel creates a new browse screen model over a loaded library
func NewBrowseModel(lib *cookbook.Library) BrowseModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	searchInput := textinput.New()
	searchInput.Placeholder = "search by title or tag"
	searchInput.CharLimit = 64
	searchInput.Width = 32

	delegate := recipeDelegate{width: MinTerminalWidth}
	recipeList := list.New(nil, delegate, 0, 0)
	recipeList.Title = "Cookbook"
	recipeList.SetShowStatusBar(false)
	recipeList.SetFilteringEnabled(false)
	recipeList.SetShowHelp(false)
	recipeList.Styles.Title = TitleStyle

	h := help.New()

	keys := browseKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "cook"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Chips: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "suggestions"),
		),
		Scan: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "find companions"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}

	searchKeys := searchKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}

	m := BrowseModel{
		Library:     lib,
		RecipeList:  recipeList,
		SearchInput: searchInput,
		Chips:       ui.NewChips(lib.Suggest("", 6)),
		Spinner:     s,
		Help:        h,
		Keys:        keys,
		SearchKeys:  searchKeys,
	}
	m.applyQuery("")
	return m
}

// Init initializes the browse model
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.SearchMode {
			return m.updateSearchMode(msg)
		}
		return m.updateNormalMode(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.RecipeList.SetWidth(msg.Width - 4)
		m.RecipeList.SetHeight(msg.Height - 12)

	case ui.ChipSelectedMsg:
		// A suggestion chip applies its label as the search query
		m.Query = msg.Label
		m.ChipsFocus = false
		m.applyQuery(m.Query)

	case scanStartMsg:
		m.Scanning = true
		m.ScanErr = nil

	case scanCompleteMsg:
		m.Scanning = false
		m.Companions = msg.companions
		m.ScanErr = msg.err

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	if !m.SearchMode && !m.ChipsFocus {
		m.RecipeList, cmd = m.RecipeList.Update(msg)
	}

	return m, cmd
}

// updateNormalMode handles keyboard input while browsing the list
func (m BrowseModel) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ChipsFocus {
		switch msg.String() {
		case "esc":
			m.ChipsFocus = false
			return m, nil
		default:
			var cmd tea.Cmd
			m.Chips, cmd = m.Chips.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "enter":
		if m.RecipeList.SelectedItem() != nil {
			m.Selected = true
		}
		return m, nil

	case "/":
		m.SearchMode = true
		m.SearchInput.SetValue(m.Query)
		m.SearchInput.Focus()
		return m, nil

	case "tab":
		if len(m.Chips.Labels()) > 0 {
			m.ChipsFocus = true
		}
		return m, nil

	case "d":
		if !m.Scanning {
			return m, tea.Batch(
				func() tea.Msg { return scanStartMsg{} },
				scanCompanions,
				m.Spinner.Tick,
			)
		}
		return m, nil

	case "c":
		// Clear an active filter
		if m.Query != "" {
			m.Query = ""
			m.applyQuery("")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.RecipeList, cmd = m.RecipeList.Update(msg)
	return m, cmd
}

// updateSearchMode handles keyboard input while the search field is focused
func (m BrowseModel) updateSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.SearchMode = false
		m.SearchInput.Blur()
		return m, nil

	case "enter":
		m.Query = strings.TrimSpace(m.SearchInput.Value())
		m.SearchMode = false
		m.SearchInput.Blur()
		m.applyQuery(m.Query)
		return m, nil
	}

	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	return m, cmd
}

// applyQuery rebuilds the list items from the library for the given query.
// An empty query shows every recipe.
func (m *BrowseModel) applyQuery(query string) {
	query = strings.ToLower(strings.TrimSpace(query))

	var items []list.Item
	for _, r := range m.Library.List() {
		if query == "" || recipeMatches(r, query) {
			items = append(items, recipeItem{recipe: r})
		}
	}
	m.RecipeList.SetItems(items)
	m.RecipeList.Select(0)
	m.Chips = m.Chips.SetLabels(m.Library.Suggest(query, 6))
}

// recipeMatches reports whether a recipe's title or tags contain the query
func recipeMatches(r *recipe.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(r.Title), query) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// SelectedRecipe returns the recipe chosen for cooking, if any
func (m BrowseModel) SelectedRecipe() *recipe.Recipe {
	if !m.Selected {
		return nil
	}
	if item, ok := m.RecipeList.SelectedItem().(recipeItem); ok {
		return item.recipe
	}
	return nil
}

// View renders the browse screen
func (m BrowseModel) View() string {
	var content string
	if m.Scanning {
		content = m.renderScanning()
	} else {
		content = m.renderBrowse()
	}

	var helpText string
	if m.SearchMode {
		helpText = m.Help.View(m.SearchKeys)
	} else {
		helpText = m.Help.View(m.Keys)
	}

	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

// renderBrowse renders the search row, suggestion chips, and recipe list
func (m BrowseModel) renderBrowse() string {
	var b strings.Builder

	b.WriteString("\n")
	if m.SearchMode {
		b.WriteString("  Search: ")
		b.WriteString(m.SearchInput.View())
		b.WriteString("\n")
	} else if m.Query != "" {
		b.WriteString(SubtitleStyle.Render(fmt.Sprintf("  Filter: %q (c to clear)", m.Query)))
		b.WriteString("\n")
	}

	if chips := m.Chips.View(); chips != "" {
		b.WriteString("  ")
		b.WriteString(chips)
		if m.ChipsFocus {
			b.WriteString(SubtitleStyle.Render("  ←/→ pick, enter apply"))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.RecipeList.Items()) == 0 {
		if m.Query != "" {
			b.WriteString(SubtitleStyle.Render("  No recipes match the filter."))
		} else {
			b.WriteString(SubtitleStyle.Render("  Cookbook is empty. Run `souschef init` to install starter recipes."))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.RecipeList.View())
	}

	if m.ScanErr != nil {
		b.WriteString("\n")
		b.WriteString(RenderError(fmt.Sprintf("Companion scan failed: %v", m.ScanErr)))
		b.WriteString("\n")
		b.WriteString(SubtitleStyle.Render("  See " + urls.TroubleshootingGuide))
	} else if m.Companions != nil {
		b.WriteString("\n")
		b.WriteString(m.renderCompanions())
	}

	return b.String()
}

// renderCompanions renders the results of the last companion scan
func (m BrowseModel) renderCompanions() string {
	if len(m.Companions) == 0 {
		return SubtitleStyle.Render("  No companions found on the network.")
	}

	var b strings.Builder
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("  %d companion(s) on the network:", len(m.Companions))))
	b.WriteString("\n")
	for _, c := range m.Companions {
		b.WriteString("    • " + c.String() + "\n")
	}
	return b.String()
}

// renderScanning renders the companion scan progress display
func (m BrowseModel) renderScanning() string {
	title := fmt.Sprintf("%s SEARCHING FOR COMPANIONS", m.Spinner.View())
	subtitle := "Scanning your network for cooking companions..."

	content := lipgloss.JoinVertical(lipgloss.Center,
		"",
		TitleStyle.Render(title),
		"",
		SubtitleStyle.Render(subtitle),
		"",
	)

	width := m.Width
	if width == 0 {
		width = ui.GetTerminalWidth()
	}
	return lipgloss.Place(width, 0, lipgloss.Center, lipgloss.Top, content)
}

// scanCompanions is a command that performs companion discovery
func scanCompanions() tea.Msg {
	companions, err := discovery.Scan(discovery.DefaultScanTimeout)
	return scanCompleteMsg{
		companions: companions,
		err:        err,
	}
}

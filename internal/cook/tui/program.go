package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtreloar/souschef/internal/config"
	"github.com/mtreloar/souschef/internal/cookbook"
	"github.com/mtreloar/souschef/internal/recipe"
)

// Run starts the full-screen application. When startRecipe is non-nil the
// cookbook screen is skipped and cooking starts immediately.
func Run(lib *cookbook.Library, reg *config.Registry, startRecipe *recipe.Recipe) error {
	model := NewAppModel(lib, reg, startRecipe)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("cooking assistant error: %w", err)
	}
	return nil
}

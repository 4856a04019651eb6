package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"northlight-site/form"
	"northlight-site/models"
	"northlight-site/site"
)

// Run starts the TUI application
func Run(cfg *models.Config, page *site.Site, ctrl *form.Controller) error {
	m := NewModel(cfg, page, ctrl)

	// Alt screen and mouse support to fully isolate the page from the
	// surrounding terminal
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}

	if finalModel, ok := finalModel.(Model); ok && finalModel.err != nil {
		return finalModel.err
	}
	return nil
}

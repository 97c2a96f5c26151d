package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"hsbpick/internal/color"
	"hsbpick/internal/config"
)

// TUI wraps our Bubble Tea program.
type TUI struct {
	model Model
}

// New returns a new TUI handle
func New(store *color.Store, cfg config.Config) *TUI {
	return &TUI{model: NewModel(store, cfg)}
}

// Start runs the TUI main loop until the user quits or ctx is done.
func (t *TUI) Start(ctx context.Context) error {
	p := tea.NewProgram(t.model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

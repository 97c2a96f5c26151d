package app

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/x/term"

	"hsbpick/internal/color"
	"hsbpick/internal/config"
	"hsbpick/internal/ui"
)

var ErrNotTerminal = errors.New("stdout is not a terminal")

type App struct {
	ui    *ui.TUI
	store *color.Store
}

func New(cfg config.Config) *App {
	store := color.NewStore(cfg.InitialState())
	return &App{
		ui:    ui.New(store, cfg),
		store: store,
	}
}

// Run shows the picker and returns the last committed color.
func (a *App) Run(ctx context.Context) (color.State, error) {
	if !term.IsTerminal(os.Stdout.Fd()) {
		return a.store.State(), ErrNotTerminal
	}
	err := a.ui.Start(ctx)
	return a.store.State(), err
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"hsbpick/internal/app"
	"hsbpick/internal/config"
	"hsbpick/internal/logging"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromArgs(os.Args[1:], os.Stderr)
	if err != nil {
		return err
	}

	if cfg.Debug {
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		logging.Enable(filepath.Join(dir, "logs"))
		defer logging.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state, err := app.New(cfg).Run(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s h=%.3f s=%.3f b=%.3f\n",
		state.Color().Hex(), state.Hue, state.Saturation, 1-state.Brightness)
	return nil
}

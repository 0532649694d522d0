package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"life-canvas/internal/app"
	"life-canvas/internal/sims/life"
)

// setup reads the environment and flags and returns a seeded simulation.
func setup() (*app.Config, *life.Life, error) {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(os.LookupEnv); err != nil {
		return nil, nil, err
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	cfg.ResolveSeed(time.Now())

	sim := life.NewWithConfig(cfg.Life)
	sim.Reset(cfg.Life.Seed)
	return cfg, sim, nil
}

func runTerminal(cfg *app.Config, sim *life.Life) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "creating screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initializing screen")
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.NewTerminal(screen, sim, cfg.TPS, cfg.HUD).Run(ctx)
}

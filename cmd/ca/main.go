//go:build ebiten

package main

import (
	"errors"
	"log"

	"life-canvas/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, sim, err := setup()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.Terminal {
		if err := runTerminal(cfg, sim); err != nil {
			log.Fatal(err)
		}
		return
	}

	game := app.New(sim, cfg.HUD)
	size := sim.Size()

	ebiten.SetWindowTitle("life-canvas - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

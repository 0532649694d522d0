//go:build ebiten

package app

import (
	"image/color"
	"time"

	"life-canvas/internal/core"
	"life-canvas/internal/render"
	"life-canvas/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	clock   core.FrameClock

	background color.Color

	fit        render.Fit
	outW, outH int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, showHUD bool) *Game {
	size := sim.Size()
	g := &Game{
		sim:        sim,
		painter:    render.NewGridPainter(size.W, size.H, color.White, color.Black),
		background: color.Black,
		fit:        render.Fit{Scale: 1},
	}
	if showHUD {
		g.hud = ui.NewHUD(sim)
	}
	g.painter.Fill(sim.Cells())
	return g
}

// Update advances the simulation by the time elapsed since the last frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	changed := g.sim.Advance(g.clock.Delta(time.Now()))
	g.painter.Apply(g.sim.Cells(), changed)
	g.hud.Update()
	return nil
}

// Draw renders the current simulation state centered in the window.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.painter.Draw(screen, g.fit)
	g.hud.Draw(screen)
}

// Layout uses the whole window and refits the grid whenever it is resized.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outW || outsideHeight != g.outH {
		g.outW, g.outH = outsideWidth, outsideHeight
		size := g.sim.Size()
		g.fit = render.FitInto(outsideWidth, outsideHeight, size.W, size.H)
	}
	return outsideWidth, outsideHeight
}

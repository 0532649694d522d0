package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"life-canvas/internal/core"
	"life-canvas/internal/render"
)

// Terminal drives a simulation on a tcell screen. The simulation is only
// touched from Run's goroutine.
type Terminal struct {
	screen  tcell.Screen
	sim     core.Sim
	painter *render.Terminal
	frame   time.Duration
	hud     core.ParameterProvider

	// ticks replaces the frame ticker when set.
	ticks <-chan time.Time
}

// NewTerminal prepares a terminal host redrawing at up to tps frames per
// second. The screen must already be initialized.
func NewTerminal(screen tcell.Screen, sim core.Sim, tps int, showHUD bool) *Terminal {
	if tps <= 0 {
		tps = core.DefaultTPS
	}
	t := &Terminal{
		screen:  screen,
		sim:     sim,
		painter: render.NewTerminal(tcell.ColorWhite, tcell.ColorBlack),
		frame:   time.Second / time.Duration(tps),
	}
	if p, ok := sim.(core.ParameterProvider); ok && showHUD {
		t.hud = p
	}
	return t
}

// Run loops until ctx is done or Escape, Ctrl-C or q is pressed.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go t.screen.ChannelEvents(events, quit)

	ticks := t.ticks
	if ticks == nil {
		ticker := time.NewTicker(t.frame)
		defer ticker.Stop()
		ticks = ticker.C
	}

	// The first tick only primes the clock.
	var clock core.FrameClock
	t.redraw()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
				t.redraw()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
			}
		case now := <-ticks:
			if changed := t.sim.Advance(clock.Delta(now)); changed != nil {
				if len(changed) > 0 || t.hud != nil {
					t.redraw()
				}
			}
		}
	}
}

func (t *Terminal) redraw() {
	t.painter.Draw(t.screen, t.sim.Cells(), t.sim.Size())
	if t.hud != nil {
		t.painter.Status(t.screen, t.hud.Parameters().Lines())
	}
	t.screen.Show()
}

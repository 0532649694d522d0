package life

import (
	"time"

	"life-canvas/internal/core"
)

// Life implements Conway's Game of Life on a bounded grid. Cells past the
// edges count as dead.
type Life struct {
	cfg Config

	cur *core.ByteGrid
	nxt *core.ByteGrid
	nb  core.Neighborhood

	rng   *core.RNG
	clock *core.FixedStep

	changed    []int
	generation int
	population int
}

// New returns an empty Life simulation with the provided dimensions.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seeds = 0
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation configured from the provided
// options. The grid starts empty; call Reset to seed it. Out-of-range values
// are clamped rather than rejected (run Config.Validate first to reject them),
// and the clamped values are what Parameters reports.
func NewWithConfig(cfg Config) *Life {
	cfg = cfg.effective()
	cur := core.NewByteGrid(cfg.Width, cfg.Height)
	size := cur.Size()

	l := &Life{
		cfg:   cfg,
		cur:   cur,
		nxt:   core.NewByteGrid(size.W, size.H),
		rng:   core.NewRNG(cfg.Seed),
		clock: core.NewFixedStep(cfg.Rate),

		changed: make([]int, 0, 64),
	}
	if cfg.Neighbors == StrategyScan {
		l.nb = core.NewScan(size.W, size.H)
	} else {
		l.nb = core.NewTable(size.W, size.H)
	}
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Cells exposes the current generation.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Generation returns the number of steps taken since the last Reset.
func (l *Life) Generation() int { return l.generation }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.population }

// Reset clears the board and seeds it from the provided seed. A zero seed
// falls back to the configured one.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.cur.Clear()
	l.nxt.Clear()
	l.rng = core.NewRNG(seed)
	l.clock.Reset()
	l.generation = 0
	l.population = 0
	l.Seed(l.cfg.Seeds)
}

// Seed sets n uniformly chosen cells live. The same cell may be picked more
// than once.
func (l *Life) Seed(n int) {
	total := l.cur.Len()
	for i := 0; i < n; i++ {
		l.SeedCell(l.rng.IntN(total))
	}
}

// SeedCell sets the cell at idx live. It reports false for indices off the
// grid.
func (l *Life) SeedCell(idx int) bool {
	cells := l.cur.Cells()
	if idx < 0 || idx >= len(cells) {
		return false
	}
	if cells[idx] == core.Dead {
		cells[idx] = core.Live
		l.population++
	}
	return true
}

// Set writes the state of (x, y). Off-grid coordinates are ignored.
func (l *Life) Set(x, y int, alive bool) {
	if !l.cur.InBounds(x, y) {
		return
	}
	was := l.cur.At(x, y) == core.Live
	switch {
	case alive && !was:
		l.cur.Set(x, y, core.Live)
		l.population++
	case !alive && was:
		l.cur.Set(x, y, core.Dead)
		l.population--
	}
}

// Alive reports whether (x, y) is live.
func (l *Life) Alive(x, y int) bool { return l.cur.At(x, y) == core.Live }

// Step advances the simulation by one generation and returns the indices of
// cells that flipped. The slice is reused by the next Step.
func (l *Life) Step() []int {
	l.changed = Evolve(l.nxt.Cells(), l.cur.Cells(), l.nb, l.changed[:0])
	next := l.nxt.Cells()
	for _, i := range l.changed {
		if next[i] == core.Live {
			l.population++
		} else {
			l.population--
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
	return l.changed
}

// Advance accumulates frame time and steps once the configured rate's
// interval has been exceeded. It returns nil when no generation ran.
func (l *Life) Advance(dt time.Duration) []int {
	if !l.clock.Advance(dt) {
		return nil
	}
	return l.Step()
}

// Evolve writes the generation following src into dst and appends the
// indices whose state differs to changed. src is never written.
func Evolve(dst, src []uint8, nb core.Neighborhood, changed []int) []int {
	for i, state := range src {
		next := Rule(state, nb.Count(src, i))
		dst[i] = next
		if next != state {
			changed = append(changed, i)
		}
	}
	return changed
}

// Rule applies B3/S23 to a single cell.
func Rule(state uint8, neighbors int) uint8 {
	if neighbors == 3 || (state == core.Live && neighbors == 2) {
		return core.Live
	}
	return core.Dead
}

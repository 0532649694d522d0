package core

import "time"

// DefaultTPS is used when a non-positive rate is requested.
const DefaultTPS = 60

// FixedStep turns variable frame times into a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = DefaultTPS
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the tick length.
func (f *FixedStep) Step() time.Duration { return f.step }

// Advance adds dt to the accumulator and reports whether it has exceeded one
// tick. At most one tick is granted per call; a backlog longer than a tick is
// dropped rather than replayed.
func (f *FixedStep) Advance(dt time.Duration) bool {
	if dt > 0 {
		f.accumulator += dt
	}
	if f.accumulator <= f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator >= f.step {
		f.accumulator %= f.step
	}
	return true
}

// Reset empties the accumulator.
func (f *FixedStep) Reset() { f.accumulator = 0 }

// FrameClock converts frame timestamps into elapsed durations.
type FrameClock struct {
	last time.Time
}

// Delta returns the time since the previous call. The first call returns 0.
func (c *FrameClock) Delta(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

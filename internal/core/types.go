package core

import "time"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns W*H.
func (s Size) Cells() int { return s.W * s.H }

// Sim is what a host needs to drive and draw a simulation.
type Sim interface {
	Name() string
	Size() Size
	Cells() []uint8
	// Advance feeds elapsed frame time and returns the indices of cells that
	// changed if a generation ran. The slice is only valid until the next call.
	Advance(dt time.Duration) []int
	Generation() int
	Population() int
}

package core

// Cell states stored in a ByteGrid.
const (
	Dead uint8 = 0
	Live uint8 = 1
)

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Its dimensions never change after construction.
type ByteGrid struct {
	w, h int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{w: w, h: h, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{W: g.w, H: g.h} }

// Len returns the number of cells.
func (g *ByteGrid) Len() int { return len(g.data) }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.w + x }

// Coords is the inverse of Index.
func (g *ByteGrid) Coords(idx int) (int, int) { return idx % g.w, idx / g.w }

// InBounds reports whether (x, y) lies on the grid. Nothing wraps.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the value at (x, y), or Dead when off the grid.
func (g *ByteGrid) At(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return Dead
	}
	return g.data[y*g.w+x]
}

// Set writes v at (x, y). Off-grid writes are ignored.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if g.InBounds(x, y) {
		g.data[y*g.w+x] = v
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

package core

// Offset is a relative grid position.
type Offset struct{ DX, DY int }

// Offsets lists the Moore neighborhood, excluding the cell itself.
var Offsets = [8]Offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighborhood counts live neighbors of the cell at idx.
type Neighborhood interface {
	Count(cells []uint8, idx int) int
	Neighbors(idx int) []int
}

// Scan resolves neighbors on demand from coordinates. W and H must be
// positive; use NewScan to get that guaranteed.
type Scan struct {
	W, H int
}

// NewScan returns a Scan for a w*h grid, clamping dimensions to at least 1
// like NewByteGrid.
func NewScan(w, h int) Scan {
	return Scan{W: max(w, 1), H: max(h, 1)}
}

// Count returns the number of Live neighbors of idx.
func (s Scan) Count(cells []uint8, idx int) int {
	x, y := idx%s.W, idx/s.W
	n := 0
	for _, o := range Offsets {
		nx, ny := x+o.DX, y+o.DY
		if nx < 0 || nx >= s.W || ny < 0 || ny >= s.H {
			continue
		}
		if cells[ny*s.W+nx] == Live {
			n++
		}
	}
	return n
}

// Neighbors returns a freshly allocated list of valid neighbor indices.
func (s Scan) Neighbors(idx int) []int {
	x, y := idx%s.W, idx/s.W
	out := make([]int, 0, len(Offsets))
	for _, o := range Offsets {
		nx, ny := x+o.DX, y+o.DY
		if nx < 0 || nx >= s.W || ny < 0 || ny >= s.H {
			continue
		}
		out = append(out, ny*s.W+nx)
	}
	return out
}

// Table holds precomputed neighbor indices for every cell of a fixed-size
// grid. It is read-only after NewTable returns.
type Table struct {
	size  Size
	start []int32
	idx   []int32
}

// NewTable precomputes the neighbor lists for a w*h grid.
func NewTable(w, h int) *Table {
	scan := NewScan(w, h)
	w, h = scan.W, scan.H
	t := &Table{
		size:  Size{W: w, H: h},
		start: make([]int32, w*h+1),
		idx:   make([]int32, 0, 8*w*h),
	}
	for i := 0; i < w*h; i++ {
		t.start[i] = int32(len(t.idx))
		for _, n := range scan.Neighbors(i) {
			t.idx = append(t.idx, int32(n))
		}
	}
	t.start[w*h] = int32(len(t.idx))
	return t
}

// Size returns the grid dimensions the table was built for.
func (t *Table) Size() Size { return t.size }

// Count returns the number of Live neighbors of idx.
func (t *Table) Count(cells []uint8, idx int) int {
	n := 0
	for _, j := range t.idx[t.start[idx]:t.start[idx+1]] {
		if cells[j] == Live {
			n++
		}
	}
	return n
}

// Neighbors returns a copy of the neighbor list for idx.
func (t *Table) Neighbors(idx int) []int {
	list := t.idx[t.start[idx]:t.start[idx+1]]
	out := make([]int, len(list))
	for i, j := range list {
		out[i] = int(j)
	}
	return out
}

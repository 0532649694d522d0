package render

import "math"

// Fit maps a grid onto a viewport: uniform scale, centered.
type Fit struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// FitInto returns the largest uniform scale at which a w*h grid fits inside an
// outerW*outerH viewport, and the offsets that center it.
func FitInto(outerW, outerH, w, h int) Fit {
	if w <= 0 || h <= 0 || outerW <= 0 || outerH <= 0 {
		return Fit{Scale: 1}
	}
	scale := math.Min(float64(outerW)/float64(w), float64(outerH)/float64(h))
	return Fit{
		Scale:   scale,
		OffsetX: (float64(outerW) - float64(w)*scale) / 2,
		OffsetY: (float64(outerH) - float64(h)*scale) / 2,
	}
}

// ToGrid converts a viewport position into grid coordinates. The result may
// lie outside the grid.
func (f Fit) ToGrid(px, py float64) (int, int) {
	return int(math.Floor((px - f.OffsetX) / f.Scale)), int(math.Floor((py - f.OffsetY) / f.Scale))
}

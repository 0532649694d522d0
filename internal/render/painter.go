//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter mirrors binary cell data into a single ebiten image.
type GridPainter struct {
	px    *Pixels
	img   *ebiten.Image
	dirty bool
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, on, off color.Color) *GridPainter {
	return &GridPainter{
		px:  NewPixels(w, h, on, off),
		img: ebiten.NewImage(w, h),
	}
}

// Fill repaints the whole grid.
func (gp *GridPainter) Fill(cells []uint8) {
	if gp.px.Fill(cells) {
		gp.dirty = true
	}
}

// Apply repaints the cells that changed in the last generation.
func (gp *GridPainter) Apply(cells []uint8, changed []int) {
	if len(changed) == 0 {
		return
	}
	gp.px.Apply(cells, changed)
	gp.dirty = true
}

// Draw uploads pending pixels and draws the grid scaled by fit.
func (gp *GridPainter) Draw(dst *ebiten.Image, fit Fit) {
	if gp.dirty {
		gp.img.WritePixels(gp.px.Bytes())
		gp.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(fit.Scale, fit.Scale)
	op.GeoM.Translate(fit.OffsetX, fit.OffsetY)
	dst.DrawImage(gp.img, op)
}

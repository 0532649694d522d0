package render

import (
	"github.com/gdamore/tcell/v2"

	"life-canvas/internal/core"
)

const (
	glyphFull   = '█'
	glyphTop    = '▀'
	glyphBottom = '▄'
	glyphEmpty  = ' '
)

// Terminal paints a grid onto a tcell screen. Each character cell carries two
// vertically stacked pixels drawn with half-block glyphs.
type Terminal struct {
	style tcell.Style
	text  tcell.Style
}

// NewTerminal returns a painter drawing live cells in fg over bg.
func NewTerminal(fg, bg tcell.Color) *Terminal {
	return &Terminal{
		style: tcell.StyleDefault.Foreground(fg).Background(bg),
		text:  tcell.StyleDefault.Foreground(bg).Background(fg),
	}
}

// Fit returns the transform used for a screen of cols*rows characters.
func (t *Terminal) Fit(cols, rows int, size core.Size) Fit {
	return FitInto(cols, rows*2, size.W, size.H)
}

// Draw samples the grid at every half-block and writes the whole screen. It
// does not call Show.
func (t *Terminal) Draw(screen tcell.Screen, cells []uint8, size core.Size) {
	cols, rows := screen.Size()
	if len(cells) != size.Cells() {
		return
	}
	fit := t.Fit(cols, rows, size)
	live := func(px, py int) bool {
		gx, gy := fit.ToGrid(float64(px)+0.5, float64(py)+0.5)
		if gx < 0 || gx >= size.W || gy < 0 || gy >= size.H {
			return false
		}
		return cells[gy*size.W+gx] == core.Live
	}
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top, bottom := live(cx, 2*cy), live(cx, 2*cy+1)
			glyph := glyphEmpty
			switch {
			case top && bottom:
				glyph = glyphFull
			case top:
				glyph = glyphTop
			case bottom:
				glyph = glyphBottom
			}
			screen.SetContent(cx, cy, glyph, nil, t.style)
		}
	}
}

// Status writes lines from the top-left corner in inverted colors.
func (t *Terminal) Status(screen tcell.Screen, lines []string) {
	cols, rows := screen.Size()
	for y, line := range lines {
		if y >= rows {
			return
		}
		x := 0
		for _, r := range line {
			if x >= cols {
				break
			}
			screen.SetContent(x, y, r, nil, t.text)
			x++
		}
	}
}

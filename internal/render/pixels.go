package render

import "image/color"

// Pixels keeps an RGBA buffer in sync with binary cell data.
type Pixels struct {
	w, h int
	on   [4]byte
	off  [4]byte
	buf  []byte
}

// NewPixels allocates a buffer for a w*h grid painted with the given colors.
func NewPixels(w, h int, on, off color.Color) *Pixels {
	return &Pixels{w: w, h: h, on: rgba(on), off: rgba(off), buf: make([]byte, 4*w*h)}
}

// Bytes exposes the RGBA buffer.
func (p *Pixels) Bytes() []byte { return p.buf }

// Fill repaints every pixel. It reports false if cells does not match the
// buffer size.
func (p *Pixels) Fill(cells []uint8) bool {
	if len(cells) != p.w*p.h {
		return false
	}
	fillBinaryRGBA(p.buf, cells, p.on, p.off)
	return true
}

// Apply repaints only the listed cells.
func (p *Pixels) Apply(cells []uint8, changed []int) {
	for _, i := range changed {
		if i < 0 || i >= len(cells) || i >= p.w*p.h {
			continue
		}
		p.put(i, cells[i])
	}
}

func (p *Pixels) put(i int, c uint8) {
	col := p.off
	if c != 0 {
		col = p.on
	}
	copy(p.buf[i*4:i*4+4], col[:])
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off [4]byte) {
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			copy(buf[base:base+4], on[:])
			continue
		}
		copy(buf[base:base+4], off[:])
	}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

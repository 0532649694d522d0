//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"life-canvas/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 6
	headerBaseline = 11
	lineSpacing    = 14
	panelWidth     = 150
)

// HUD renders a read-only parameter panel in the top-left corner.
type HUD struct {
	provider core.ParameterProvider
	title    string
	lines    []string
	panel    *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{title: buildTitle(sim)}
	if p, ok := sim.(core.ParameterProvider); ok {
		h.provider = p
	}
	return h
}

// Update refreshes the cached parameter lines.
func (h *HUD) Update() {
	if h == nil || h.provider == nil {
		return
	}
	h.lines = h.provider.Parameters().Lines()
}

// Draw paints the panel over screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	height := panelPadding*2 + headerBaseline + lineSpacing*len(h.lines)
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(panelWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, line := range h.lines {
		y += lineSpacing
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}
	screen.DrawImage(h.panel, nil)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s", strings.ToUpper(name[:1]), name[1:])
}

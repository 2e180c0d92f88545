//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding  = 8
	lineHeight    = 16
	lineBaseline  = 12
	panelMinWidth = 200
)

var (
	panelBackground = color.RGBA{R: 12, G: 12, B: 16, A: 200}
	titleColor      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor       = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

// HUD renders a translucent status panel in the top-left corner.
type HUD struct {
	panel *ebiten.Image
	lines []string
}

// NewHUD constructs an empty HUD.
func NewHUD() *HUD { return &HUD{} }

// Update replaces the text shown by the next Draw.
func (h *HUD) Update(s Status) {
	if h == nil {
		return
	}
	h.lines = s.Lines()
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || len(h.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := panelMinWidth
	for _, line := range h.lines {
		if w := text.BoundString(face, line).Dx() + 2*panelPadding; w > width {
			width = w
		}
	}
	height := len(h.lines)*lineHeight + 2*panelPadding
	if h.panel == nil || h.panel.Bounds().Dx() != width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(width, height)
	}
	h.panel.Fill(panelBackground)

	for i, line := range h.lines {
		fg := textColor
		if i == 0 {
			fg = titleColor
		}
		text.Draw(h.panel, line, face, panelPadding, panelPadding+i*lineHeight+lineBaseline, fg)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelPadding, panelPadding)
	screen.DrawImage(h.panel, op)
}

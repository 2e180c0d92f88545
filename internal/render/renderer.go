//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads packed colour cells into an image and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h. The backing
// image is created lazily by the first Blit.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
}

// Blit uploads cells and draws them onto dst stretched by scale. The first
// call only creates the backing image and reports false; callers retry on the
// next frame.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint32, scale int) bool {
	if len(cells) != gp.w*gp.h {
		return false
	}
	if gp.img == nil {
		gp.img = ebiten.NewImage(gp.w, gp.h)
		return false
	}
	FillPackedRGBA(gp.buf, cells)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(gp.img, op)
	return true
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

//go:build ebiten

package render

import (
	"image/color"

	"gridsnake/internal/core"
	"gridsnake/pkg/snake"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads encoded cells into a w*h image, one pixel per cell, and
// draws it scaled.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	cells *core.ByteGrid
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), cells: core.NewByteGrid(w, h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit encodes the projection, uploads it with palette and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, p snake.Projection, palette []color.RGBA, scale int) {
	if p.W != gp.w || p.H != gp.h {
		return
	}
	Encode(p, gp.cells)
	fillPaletteRGBA(gp.buf, gp.cells.Cells(), palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"gridsnake/internal/session"
	"gridsnake/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional visuals on top of the board: grid lines, a heading
// marker on the head and the game-over banner.
type Overlay struct {
	scale       int
	showGrid    bool
	showHeading bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale, showHeading: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHeading = !o.showHeading
	}
}

// Draw renders the overlay for frame onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, f session.Frame, heading core.Direction) {
	w, h := f.Projection.W, f.Projection.H
	if w <= 0 || h <= 0 {
		return
	}
	scale := float64(o.scale)
	if scale <= 0 {
		scale = 1
	}

	if o.showGrid {
		col := color.RGBA{R: 40, G: 40, B: 48, A: 255}
		for x := 1; x < w; x++ {
			o.drawLine(screen, float64(x)*scale, 0, float64(x)*scale, float64(h)*scale, 1, col)
		}
		for y := 1; y < h; y++ {
			o.drawLine(screen, 0, float64(y)*scale, float64(w)*scale, float64(y)*scale, 1, col)
		}
	}

	if o.showHeading && !f.Finished {
		cx := (float64(f.Head.X) + 0.5) * scale
		cy := (float64(f.Head.Y) + 0.5) * scale
		v := heading.Vector()
		tx := cx + float64(v.X)*scale*0.4
		ty := cy + float64(v.Y)*scale*0.4
		col := color.RGBA{R: 20, G: 20, B: 20, A: 255}
		o.drawLine(screen, cx, cy, tx, ty, math.Max(2, scale/8), col)
		o.drawPoint(screen, tx, ty, math.Max(3, scale/5), col)
	}

	if f.Finished {
		o.drawBanner(screen, float64(w)*scale, float64(h)*scale, f)
	}
}

func (o *Overlay) drawBanner(screen *ebiten.Image, w, h float64, f session.Frame) {
	bandH := 48.0
	top := (h - bandH) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, bandH)
	op.GeoM.Translate(0, top)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	screen.DrawImage(o.pixel, op)

	face := basicfont.Face7x13
	lines := []string{"GAME OVER (" + f.Cause.String() + ")", "press R to restart"}
	for i, line := range lines {
		b := text.BoundString(face, line)
		x := int((w - float64(b.Dx())) / 2)
		y := int(top) + 18 + i*18
		text.Draw(screen, line, face, x, y, color.RGBA{R: 240, G: 240, B: 240, A: 255})
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"gridsnake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type statsProvider interface {
	Stats() core.ParameterSnapshot
}

// HUD renders the score panel and control pad to the right of the board.
type HUD struct {
	src        statsProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	pad        Pad

	panelOffsetX int
	pressed      PadButton

	pixel *ebiten.Image
}

// NewHUD constructs a HUD reading from src with the given panel width.
func NewHUD(src statsProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Width returns the panel width.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached snapshot and returns the pad button pressed
// this frame, if any.
func (h *HUD) Update(panelOffsetX int) PadButton {
	if h == nil {
		return PadNone
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.src.Stats()
	h.pad = NewPad(h.width, h.padTop())
	h.pressed = h.handleInput()
	return h.pressed
}

// Draw paints the HUD panel anchored to the right edge of the board.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawStats()
	h.drawPad()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) padTop() int {
	rows := 0
	for _, g := range h.snapshot.Groups {
		rows += len(g.Params) + 1
	}
	return panelPadding + headerBaseline + rows*lineHeight + len(h.snapshot.Groups)*groupSpacing
}

func (h *HUD) handleInput() PadButton {
	var points []image.Point
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		points = append(points, image.Pt(x, y))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		points = append(points, image.Pt(x, y))
	}
	for _, p := range points {
		if p.X < h.panelOffsetX {
			continue
		}
		if b := h.pad.Hit(p.X-h.panelOffsetX, p.Y); b != PadNone {
			return b
		}
	}
	return PadNone
}

func (h *HUD) drawStats() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "gridsnake", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, group := range h.snapshot.Groups {
		y += lineHeight + groupSpacing
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 140, G: 140, B: 150, A: 255})
		for _, param := range group.Params {
			y += lineHeight
			text.Draw(h.panel, param.Label, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			bounds := text.BoundString(face, param.Value)
			text.Draw(h.panel, param.Value, face, h.width-panelPadding-bounds.Dx(), y, color.RGBA{R: 250, G: 204, B: 21, A: 255})
		}
	}
}

func (h *HUD) drawPad() {
	finished := false
	if p, ok := h.snapshot.Lookup("state"); ok && p.Value != "running" {
		finished = true
	}
	labels := map[PadButton]string{PadUp: "^", PadDown: "v", PadLeft: "<", PadRight: ">", PadRestart: "restart (R)"}
	for b, r := range h.pad.Rects {
		enabled := !finished
		if b == PadRestart {
			enabled = finished
		}
		h.drawButton(r, labels[b], enabled, b == h.pressed)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled, pressed bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if pressed {
		bg = color.RGBA{R: 90, G: 92, B: 104, A: 255}
	}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

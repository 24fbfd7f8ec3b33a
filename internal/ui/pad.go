package ui

import (
	"image"

	"gridsnake/pkg/core"
)

// PadButton identifies a button on the on-screen control pad.
type PadButton int

const (
	PadNone PadButton = iota
	PadUp
	PadDown
	PadLeft
	PadRight
	PadRestart
)

// Direction returns the heading a directional button requests.
func (b PadButton) Direction() (core.Direction, bool) {
	switch b {
	case PadUp:
		return core.Up, true
	case PadDown:
		return core.Down, true
	case PadLeft:
		return core.Left, true
	case PadRight:
		return core.Right, true
	}
	return 0, false
}

// Pad lays out a four-way pad plus a restart button inside a panel of the
// given width, with its top edge at top.
type Pad struct {
	Rects map[PadButton]image.Rectangle
}

// NewPad computes button rectangles for a panel width.
func NewPad(width, top int) Pad {
	size := padButton
	cx := width / 2
	left := cx - size/2 - size - buttonGap
	mid := cx - size/2
	right := cx + size/2 + buttonGap
	row := func(i int) int { return top + i*(size+buttonGap) }
	rect := func(x, y int) image.Rectangle { return image.Rect(x, y, x+size, y+size) }
	return Pad{Rects: map[PadButton]image.Rectangle{
		PadUp:      rect(mid, row(0)),
		PadLeft:    rect(left, row(1)),
		PadRight:   rect(right, row(1)),
		PadDown:    rect(mid, row(2)),
		PadRestart: image.Rect(panelPadding, row(3)+buttonGap, width-panelPadding, row(3)+buttonGap+buttonSize),
	}}
}

// Hit returns the button under (x, y), in panel coordinates.
func (p Pad) Hit(x, y int) PadButton {
	for b, r := range p.Rects {
		if pointInRect(x, y, r) {
			return b
		}
	}
	return PadNone
}

// Bottom returns the lowest edge of any button.
func (p Pad) Bottom() int {
	max := 0
	for _, r := range p.Rects {
		if r.Max.Y > max {
			max = r.Max.Y
		}
	}
	return max
}

// Steer picks the heading that moves head toward target along the dominant
// axis. Ties prefer the horizontal axis. It reports false when target is the
// head itself.
func Steer(head, target core.Vector) (core.Direction, bool) {
	dx := target.X - head.X
	dy := target.Y - head.Y
	if dx == 0 && dy == 0 {
		return 0, false
	}
	if abs(dx) >= abs(dy) {
		if dx > 0 {
			return core.Right, true
		}
		return core.Left, true
	}
	if dy > 0 {
		return core.Down, true
	}
	return core.Up, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 20
	buttonSize     = 24
	buttonGap      = 6
	padButton      = 36
	headerBaseline = 18
	groupSpacing   = 10
)

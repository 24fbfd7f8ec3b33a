package render

import (
	"image/color"

	"gridsnake/internal/core"
	"gridsnake/pkg/snake"
)

// Cell codes written by Encode. Food codes continue from CodeFood, one per
// icon in snake.Icons.
const (
	CodeBlank uint8 = iota
	CodeHead
	CodeBody
	CodeFood
)

// Palette maps cell codes to colours. The food entries follow the order of
// snake.Icons: carrot, bread, avocado, cherry.
var Palette = []color.RGBA{
	CodeBlank:    {R: 18, G: 18, B: 22, A: 255},
	CodeHead:     {R: 250, G: 204, B: 21, A: 255},
	CodeBody:     {R: 60, G: 60, B: 66, A: 255},
	CodeFood + 0: {R: 249, G: 115, B: 22, A: 255},
	CodeFood + 1: {R: 202, G: 138, B: 4, A: 255},
	CodeFood + 2: {R: 101, G: 163, B: 13, A: 255},
	CodeFood + 3: {R: 220, G: 38, B: 38, A: 255},
}

// FinishedPalette dims the board and marks the head red once the game ends.
var FinishedPalette = dim(Palette, map[uint8]color.RGBA{CodeHead: {R: 239, G: 68, B: 68, A: 255}})

func dim(p []color.RGBA, override map[uint8]color.RGBA) []color.RGBA {
	out := make([]color.RGBA, len(p))
	for i, c := range p {
		if o, ok := override[uint8(i)]; ok {
			out[i] = o
			continue
		}
		out[i] = color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
	}
	return out
}

// Encode writes the cell code of every projected cell into dst. dst must
// have the projection's dimensions.
func Encode(p snake.Projection, dst *core.ByteGrid) {
	cells := dst.Cells()
	if len(cells) != len(p.Cells) {
		return
	}
	for i, c := range p.Cells {
		switch c.Kind {
		case snake.KindHead:
			cells[i] = CodeHead
		case snake.KindBody:
			cells[i] = CodeBody
		case snake.KindFood:
			icon := c.Icon
			if icon < 0 {
				icon = 0
			}
			cells[i] = CodeFood + uint8(icon)
		default:
			cells[i] = CodeBlank
		}
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

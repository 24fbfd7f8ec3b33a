package snake

import (
	"strings"

	"gridsnake/pkg/core"
)

// Kind classifies a projected cell.
type Kind uint8

const (
	KindBlank Kind = iota
	KindHead
	KindBody
	KindFood
)

// Glyphs used for non-food cells.
const (
	GlyphHead  = '🟨'
	GlyphBody  = '⬛'
	GlyphBlank = ' '
)

// Cell is the projected content of one grid cell. Icon is the palette index
// of a food cell and -1 for every other kind.
type Cell struct {
	Kind  Kind
	Glyph rune
	Icon  int
}

// Projection is a row-major snapshot of every cell on the grid.
type Projection struct {
	W, H  int
	Cells []Cell
}

// Project snapshots the game into a renderable grid. It never mutates g and
// may be called at any time, including after the game finished.
func Project(g *Game) Projection {
	p := Projection{W: g.w, H: g.h, Cells: make([]Cell, g.w*g.h)}
	for i := range p.Cells {
		p.Cells[i] = Cell{Kind: KindBlank, Glyph: GlyphBlank, Icon: -1}
	}
	for _, f := range g.foods {
		p.Cells[p.index(f.Pos)] = Cell{Kind: KindFood, Glyph: f.Icon, Icon: IconIndex(f.Icon)}
	}
	for i, v := range g.body {
		c := Cell{Kind: KindBody, Glyph: GlyphBody, Icon: -1}
		if i == 0 {
			c = Cell{Kind: KindHead, Glyph: GlyphHead, Icon: -1}
		}
		p.Cells[p.index(v)] = c
	}
	return p
}

func (p Projection) index(v core.Vector) int { return v.Y*p.W + v.X }

// At returns the cell at v. Positions off the grid read as blank.
func (p Projection) At(v core.Vector) Cell {
	if v.X < 0 || v.X >= p.W || v.Y < 0 || v.Y >= p.H {
		return Cell{Kind: KindBlank, Glyph: GlyphBlank, Icon: -1}
	}
	return p.Cells[p.index(v)]
}

// Symbols returns the projection as a position to glyph mapping.
func (p Projection) Symbols() map[core.Vector]rune {
	out := make(map[core.Vector]rune, len(p.Cells))
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			out[core.V(x, y)] = p.Cells[y*p.W+x].Glyph
		}
	}
	return out
}

// Rows renders each grid row as a string of glyphs.
func (p Projection) Rows() []string {
	rows := make([]string, p.H)
	var b strings.Builder
	for y := 0; y < p.H; y++ {
		b.Reset()
		for _, c := range p.Cells[y*p.W : (y+1)*p.W] {
			b.WriteRune(c.Glyph)
		}
		rows[y] = b.String()
	}
	return rows
}

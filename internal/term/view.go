package term

import (
	"fmt"

	"gridsnake/internal/session"
	"gridsnake/pkg/snake"

	"github.com/gdamore/tcell/v2"
)

// ASCII glyphs used when emoji are disabled.
const (
	asciiHead  = '@'
	asciiBody  = 'o'
	asciiFood  = '*'
	asciiBlank = ' '
)

// View draws frames onto a tcell screen. Every board cell is two columns
// wide so emoji and ASCII boards keep the same aspect.
type View struct {
	screen tcell.Screen
	ascii  bool

	base   tcell.Style
	border tcell.Style
	head   tcell.Style
	body   tcell.Style
	food   tcell.Style
	status tcell.Style
	alert  tcell.Style
}

// NewView returns a View drawing onto s.
func NewView(s tcell.Screen, ascii bool) *View {
	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	return &View{
		screen: s,
		ascii:  ascii,
		base:   base,
		border: base.Foreground(tcell.ColorGray),
		head:   base.Foreground(tcell.ColorYellow).Bold(true),
		body:   base.Foreground(tcell.ColorGreen),
		food:   base.Foreground(tcell.ColorRed),
		status: base.Foreground(tcell.ColorWhite),
		alert:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true),
	}
}

// Glyph returns the rune drawn for c.
func (v *View) Glyph(c snake.Cell) rune {
	if !v.ascii {
		return c.Glyph
	}
	switch c.Kind {
	case snake.KindHead:
		return asciiHead
	case snake.KindBody:
		return asciiBody
	case snake.KindFood:
		return asciiFood
	default:
		return asciiBlank
	}
}

func (v *View) style(k snake.Kind) tcell.Style {
	switch k {
	case snake.KindHead:
		return v.head
	case snake.KindBody:
		return v.body
	case snake.KindFood:
		return v.food
	default:
		return v.base
	}
}

// Draw clears the screen and paints f: a bordered board with a status line
// underneath. It does not call Show.
func (v *View) Draw(f session.Frame) {
	s := v.screen
	s.Clear()
	p := f.Projection

	right := 2*p.W + 1
	bottom := p.H + 1
	for x := 1; x < right; x++ {
		s.SetContent(x, 0, tcell.RuneHLine, nil, v.border)
		s.SetContent(x, bottom, tcell.RuneHLine, nil, v.border)
	}
	for y := 1; y < bottom; y++ {
		s.SetContent(0, y, tcell.RuneVLine, nil, v.border)
		s.SetContent(right, y, tcell.RuneVLine, nil, v.border)
	}
	s.SetContent(0, 0, tcell.RuneULCorner, nil, v.border)
	s.SetContent(right, 0, tcell.RuneURCorner, nil, v.border)
	s.SetContent(0, bottom, tcell.RuneLLCorner, nil, v.border)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, v.border)

	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			c := p.Cells[y*p.W+x]
			sx := 1 + 2*x
			s.SetContent(sx, 1+y, v.Glyph(c), nil, v.style(c.Kind))
			if v.ascii || c.Kind == snake.KindBlank {
				s.SetContent(sx+1, 1+y, ' ', nil, v.base)
			}
		}
	}

	drawText(s, 0, bottom+1, fmt.Sprintf("Score: %d  Best: %d  Length: %d", f.Score, f.HighScore, f.Length), v.status)
	if f.Finished {
		msg := fmt.Sprintf(" Game over (%s) - r to restart, q to quit ", f.Cause)
		drawCentered(s, right/2, bottom/2, msg, v.alert)
	} else {
		drawText(s, 0, bottom+2, "arrows/wasd/hjkl steer, q quits", v.border)
	}
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, st)
		x++
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	x := cx - len([]rune(text))/2
	if x < 0 {
		x = 0
	}
	drawText(s, x, cy, text, st)
}

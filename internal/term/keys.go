// Package term hosts a snake session on a character terminal through tcell.
package term

import (
	"gridsnake/internal/session"
	"gridsnake/pkg/core"

	"github.com/gdamore/tcell/v2"
)

// Action is what a key press asks the host to do.
type Action int

const (
	ActionNone Action = iota
	ActionCommand
	ActionQuit
)

var runeTurns = map[rune]core.Direction{
	'w': core.Up, 'k': core.Up,
	's': core.Down, 'j': core.Down,
	'a': core.Left, 'h': core.Left,
	'd': core.Right, 'l': core.Right,
}

// MapKey translates a key event into an action and, for ActionCommand, the
// session command to send.
func MapKey(ev *tcell.EventKey) (Action, session.Command) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionCommand, session.Turn(core.Up)
	case tcell.KeyDown:
		return ActionCommand, session.Turn(core.Down)
	case tcell.KeyLeft:
		return ActionCommand, session.Turn(core.Left)
	case tcell.KeyRight:
		return ActionCommand, session.Turn(core.Right)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, session.Command{}
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if d, ok := runeTurns[r]; ok {
			return ActionCommand, session.Turn(d)
		}
		switch r {
		case 'r':
			return ActionCommand, session.Restart()
		case 'q':
			return ActionQuit, session.Command{}
		}
	}
	return ActionNone, session.Command{}
}

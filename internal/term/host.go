package term

import (
	"context"

	"gridsnake/internal/session"

	"github.com/gdamore/tcell/v2"
)

// Host pumps terminal events into a command channel and draws the frames it
// receives. It never touches the session directly.
type Host struct {
	screen tcell.Screen
	view   *View
	cmds   chan<- session.Command
	last   *session.Frame
}

// NewHost returns a Host for an initialised screen.
func NewHost(s tcell.Screen, ascii bool, cmds chan<- session.Command) *Host {
	return &Host{screen: s, view: NewView(s, ascii), cmds: cmds}
}

// Run processes terminal events and frames until the user quits or ctx is
// cancelled. A quit returns nil.
func (h *Host) Run(ctx context.Context, frames <-chan session.Frame) error {
	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	go h.screen.ChannelEvents(events, quit)
	defer close(quit)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f, ok := <-frames:
			if !ok {
				return nil
			}
			h.last = &f
			h.view.Draw(f)
			h.screen.Show()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				h.screen.Sync()
				if h.last != nil {
					h.view.Draw(*h.last)
					h.screen.Show()
				}
			case *tcell.EventKey:
				action, cmd := MapKey(ev)
				switch action {
				case ActionQuit:
					return nil
				case ActionCommand:
					select {
					case h.cmds <- cmd:
					case <-ctx.Done():
						return ctx.Err()
					}
				}
			}
		}
	}
}

// SendLatest delivers f on ch, discarding an undelivered older frame so a
// slow reader never blocks the session. ch must be buffered and have a
// single sender.
func SendLatest(ch chan session.Frame, f session.Frame) {
	for {
		select {
		case ch <- f:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

//go:build ebiten

package audio

import (
	"gridsnake/internal/session"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Cues plays a beep for food, record and game-over events.
type Cues struct {
	ctx    *ebaudio.Context
	eat    *ebaudio.Player
	record *ebaudio.Player
	over   *ebaudio.Player
	muted  bool
}

// NewCues prepares the players. Only one audio context may exist per process.
func NewCues() *Cues {
	ctx := ebaudio.NewContext(SampleRate)
	return &Cues{
		ctx:    ctx,
		eat:    ctx.NewPlayerFromBytes(EatTone.PCM()),
		record: ctx.NewPlayerFromBytes(RecordTone.PCM()),
		over:   ctx.NewPlayerFromBytes(OverTone.PCM()),
	}
}

// Attach subscribes the cues to a session's events.
func (c *Cues) Attach(bus *session.EventBus) {
	if c == nil {
		return
	}
	bus.Subscribe(session.EventFoodEaten, func(session.Event) { c.play(c.eat) })
	bus.Subscribe(session.EventHighScore, func(session.Event) { c.play(c.record) })
	bus.Subscribe(session.EventFinished, func(session.Event) { c.play(c.over) })
}

// ToggleMute silences or restores the cues.
func (c *Cues) ToggleMute() {
	if c != nil {
		c.muted = !c.muted
	}
}

func (c *Cues) play(p *ebaudio.Player) {
	if c.muted || p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}

// Package session owns one running snake game together with its tick
// cadence, best-score record and event bus. Every mutation goes through
// Apply, so hosts either call it from their own single-threaded loop or hand
// commands to Run over a channel.
package session

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"gridsnake/internal/core"
	"gridsnake/internal/store"
	pcore "gridsnake/pkg/core"
	"gridsnake/pkg/snake"
)

// Options configures a session.
type Options struct {
	Width    int
	Height   int
	Foods    int
	Interval time.Duration
	// InstantTurn ticks immediately on an accepted turn and restarts the
	// interval from that moment.
	InstantTurn bool
	Seed        int64
	// Source overrides the seeded RNG when set.
	Source pcore.RangeSource
	Logger *log.Logger
}

// Result reports the effect of one command.
type Result struct {
	Ticked   bool
	Accepted bool
	Outcome  snake.Outcome
}

// Changed reports whether the command altered anything a host draws.
func (r Result) Changed() bool { return r.Ticked || r.Accepted }

// Frame is everything a host needs to draw the current state.
type Frame struct {
	Session    string
	Projection snake.Projection
	Head       pcore.Vector
	Score      int
	HighScore  int
	Length     int
	Finished   bool
	Cause      snake.Cause
}

// Session is the single owner of a running game.
type Session struct {
	id      uuid.UUID
	opts    Options
	src     pcore.RangeSource
	game    *snake.Game
	store   store.Store
	record  store.Record
	bus     *EventBus
	cadence *core.Cadence
	logger  *log.Logger
	games   int
}

// New builds a session and its first game. The best-score record is read
// once from st; a failed read is logged and treated as no record.
func New(opts Options, st store.Store) (*Session, error) {
	src := opts.Source
	if src == nil {
		src = pcore.NewRNG(opts.Seed)
	}
	game, err := snake.New(opts.Width, opts.Height, opts.Foods, src)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if st == nil {
		st = &store.MemoryStore{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	s := &Session{
		id:      uuid.New(),
		opts:    opts,
		src:     src,
		game:    game,
		store:   st,
		bus:     NewEventBus(),
		cadence: core.NewCadence(opts.Interval),
		logger:  logger,
		games:   1,
	}
	rec, err := st.Load()
	if err != nil {
		s.logger.Printf("session %s: loading record: %v", s.id, err)
		rec = store.Record{}
	}
	s.record = rec
	return s, nil
}

// ID identifies the session in logs and remote frames.
func (s *Session) ID() uuid.UUID { return s.id }

// Game exposes the running game for read-only inspection. Mutate it only
// through Apply.
func (s *Session) Game() *snake.Game { return s.game }

// Bus returns the event bus collaborators subscribe to.
func (s *Session) Bus() *EventBus { return s.bus }

// Cadence returns the tick scheduler.
func (s *Session) Cadence() *core.Cadence { return s.cadence }

// Record returns the best-score record as currently known.
func (s *Session) Record() store.Record { return s.record }

// Games returns how many games this session has started.
func (s *Session) Games() int { return s.games }

// Start arms the tick cadence.
func (s *Session) Start(now time.Time) { s.cadence.Reset(now) }

// Poll runs a scheduled tick when one is due.
func (s *Session) Poll(now time.Time) Result {
	if !s.cadence.Due(now) {
		return Result{}
	}
	return s.Apply(Tick(), now)
}

// Apply executes one command.
func (s *Session) Apply(cmd Command, now time.Time) Result {
	switch cmd.Kind {
	case CmdTick:
		out := s.tick()
		return Result{Ticked: out != snake.OutcomeIdle, Outcome: out}
	case CmdTurn:
		if !s.game.SetDirection(cmd.Dir) {
			return Result{}
		}
		res := Result{Accepted: true}
		if s.opts.InstantTurn {
			res.Ticked = true
			res.Outcome = s.tick()
			if !s.game.Finished() {
				s.cadence.Reset(now)
			}
		}
		return res
	case CmdRestart:
		if !s.game.Finished() {
			return Result{}
		}
		if err := s.restart(now); err != nil {
			s.logger.Printf("session %s: restart: %v", s.id, err)
			return Result{}
		}
		return Result{Accepted: true}
	}
	return Result{}
}

func (s *Session) tick() snake.Outcome {
	out := s.game.Tick()
	switch out {
	case snake.OutcomeAte:
		s.bus.Emit(s.event(EventFoodEaten, out))
		s.raise()
	case snake.OutcomeCollided:
		s.cadence.Stop()
		s.logger.Printf("session %s: game %d over (%s), score %d", s.id, s.games, s.game.Cause(), s.game.Score())
		s.bus.Emit(s.event(EventFinished, out))
	}
	if out != snake.OutcomeIdle {
		s.bus.Emit(s.event(EventTicked, out))
	}
	return out
}

func (s *Session) raise() {
	rec, raised, err := store.Raise(s.store, s.record, s.game.Score())
	if !raised {
		return
	}
	s.record = rec
	if err != nil {
		s.logger.Printf("session %s: saving record: %v", s.id, err)
	}
	s.bus.Emit(s.event(EventHighScore, snake.OutcomeAte))
}

func (s *Session) restart(now time.Time) error {
	game, err := snake.New(s.opts.Width, s.opts.Height, s.opts.Foods, s.src)
	if err != nil {
		return err
	}
	s.game = game
	s.games++
	s.cadence.Reset(now)
	s.bus.Emit(s.event(EventRestarted, snake.OutcomeIdle))
	return nil
}

func (s *Session) event(t EventType, out snake.Outcome) Event {
	return Event{
		Type:      t,
		Outcome:   out,
		Score:     s.game.Score(),
		HighScore: s.record.HighScore,
		Cause:     s.game.Cause(),
	}
}

// Frame snapshots the state for drawing.
func (s *Session) Frame() Frame {
	return Frame{
		Session:    s.id.String(),
		Projection: snake.Project(s.game),
		Head:       s.game.Head(),
		Score:      s.game.Score(),
		HighScore:  s.record.HighScore,
		Length:     s.game.Len(),
		Finished:   s.game.Finished(),
		Cause:      s.game.Cause(),
	}
}

// Stats returns the values a HUD shows beside the grid.
func (s *Session) Stats() core.ParameterSnapshot {
	state := "running"
	if s.game.Finished() {
		state = "over: " + s.game.Cause().String()
	}
	w, h := s.game.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Score",
			Params: []core.Parameter{
				core.IntParam("score", "Score", s.game.Score()),
				core.IntParam("high", "Best", s.record.HighScore),
				core.IntParam("length", "Length", s.game.Len()),
			},
		},
		{
			Name: "Game",
			Params: []core.Parameter{
				core.TextParam("state", "State", state),
				core.IntParam("game", "Game", s.games),
				core.IntParam("foods", "Foods", len(s.game.Foods())),
				core.TextParam("size", "Board", fmt.Sprintf("%dx%d", w, h)),
			},
		},
	}}
}

// Run processes commands and scheduled ticks until ctx is cancelled or cmds
// is closed. emit receives a frame at start and after every change. Run is the
// only goroutine that touches the session while it is running.
func (s *Session) Run(ctx context.Context, cmds <-chan Command, emit func(Frame)) error {
	s.Start(time.Now())
	if emit != nil {
		emit(s.Frame())
	}

	timer := time.NewTimer(s.cadence.Interval())
	defer timer.Stop()
	timerC := timer.C

	rearm := func(now time.Time) {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		if s.cadence.Stopped() {
			timerC = nil
			return
		}
		timer.Reset(s.cadence.Remaining(now))
		timerC = timer.C
	}

	for {
		var res Result
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-cmds:
			if !ok {
				return nil
			}
			now := time.Now()
			res = s.Apply(cmd, now)
			rearm(now)
		case <-timerC:
			now := time.Now()
			res = s.Poll(now)
			rearm(now)
		}
		if res.Changed() && emit != nil {
			emit(s.Frame())
		}
	}
}

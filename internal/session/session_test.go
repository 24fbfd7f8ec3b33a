package session

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"gridsnake/internal/store"
	"gridsnake/pkg/core"
	"gridsnake/pkg/snake"
)

// scriptSource replays queued values before falling back to a seeded RNG.
type scriptSource struct {
	vals     []int
	fallback *core.RNG
}

func script(vals ...int) *scriptSource {
	return &scriptSource{vals: vals, fallback: core.NewRNG(3)}
}

func (s *scriptSource) UniformInt(min, max int) int {
	if len(s.vals) > 0 {
		v := s.vals[0]
		s.vals = s.vals[1:]
		return v
	}
	return s.fallback.UniformInt(min, max)
}

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func mustSession(t *testing.T, opts Options, st store.Store) *Session {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = quietLogger()
	}
	s, err := New(opts, st)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	_, err := New(Options{Width: 0, Height: 5, Logger: quietLogger()}, nil)
	if !errors.Is(err, snake.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestAcceptedTurnTicksImmediatelyAndResetsCadence(t *testing.T) {
	s := mustSession(t, Options{Width: 10, Height: 10, Interval: time.Second, InstantTurn: true, Seed: 1}, nil)
	start := time.Unix(100, 0)
	s.Start(start)

	head := s.Game().Head()
	now := start.Add(900 * time.Millisecond)
	res := s.Apply(Turn(core.Up), now)
	if !res.Accepted || !res.Ticked {
		t.Fatalf("turn result = %+v, expected accepted and ticked", res)
	}
	if got, want := s.Game().Head(), head.Add(core.V(0, -1)); got != want {
		t.Fatalf("head = %v, expected %v", got, want)
	}
	if got := s.Cadence().Remaining(now); got != time.Second {
		t.Fatalf("remaining after turn = %v, expected a full interval", got)
	}
	if s.Poll(start.Add(time.Second)).Ticked {
		t.Fatal("original schedule should have been postponed")
	}
	if !s.Poll(now.Add(time.Second)).Ticked {
		t.Fatal("expected tick one interval after the turn")
	}
}

func TestRejectedTurnDoesNotTick(t *testing.T) {
	s := mustSession(t, Options{Width: 10, Height: 10, Interval: time.Second, InstantTurn: true, Seed: 1}, nil)
	s.Start(time.Unix(0, 0))
	head := s.Game().Head()

	for _, d := range []core.Direction{core.Left, core.Right} {
		if res := s.Apply(Turn(d), time.Unix(0, 0)); res.Changed() {
			t.Fatalf("turn %s should be ignored, got %+v", d, res)
		}
	}
	if s.Game().Head() != head {
		t.Fatal("rejected turns moved the snake")
	}
}

func TestTurnWithoutInstantTickWaitsForCadence(t *testing.T) {
	s := mustSession(t, Options{Width: 10, Height: 10, Interval: time.Second, Seed: 1}, nil)
	start := time.Unix(0, 0)
	s.Start(start)
	head := s.Game().Head()

	res := s.Apply(Turn(core.Down), start)
	if !res.Accepted || res.Ticked {
		t.Fatalf("turn result = %+v, expected accepted only", res)
	}
	if s.Game().Head() != head {
		t.Fatal("snake moved before the scheduled tick")
	}
	if !s.Poll(start.Add(time.Second)).Ticked {
		t.Fatal("expected scheduled tick")
	}
	if got, want := s.Game().Head(), head.Add(core.V(0, 1)); got != want {
		t.Fatalf("head = %v, expected %v", got, want)
	}
}

func TestHighScorePersistsAcrossSessions(t *testing.T) {
	dir := t.TempDir()
	fs := store.NewFileStore(dir)
	if err := fs.Save(store.Record{HighScore: 5}); err != nil {
		t.Fatalf("seed record: %v", err)
	}

	// The snake starts at (19,10) heading left; each scripted x, y, icon
	// triple places the next food directly in its path.
	var vals []int
	for k := 1; k <= 8; k++ {
		vals = append(vals, 19-k, 10, 0)
	}
	s := mustSession(t, Options{Width: 20, Height: 20, Foods: 1, Source: script(vals...)}, fs)
	if got := s.Record().HighScore; got != 5 {
		t.Fatalf("loaded high score = %d, expected 5", got)
	}

	var raised []int
	s.Bus().Subscribe(EventHighScore, func(e Event) { raised = append(raised, e.HighScore) })

	for i := 0; i < 7; i++ {
		if res := s.Apply(Tick(), time.Time{}); res.Outcome != snake.OutcomeAte {
			t.Fatalf("tick %d outcome = %s, expected ate", i, res.Outcome)
		}
	}
	if got := s.Game().Score(); got != 7 {
		t.Fatalf("score = %d, expected 7", got)
	}
	if len(raised) != 2 || raised[0] != 6 || raised[1] != 7 {
		t.Fatalf("high score events = %v, expected [6 7]", raised)
	}

	next := mustSession(t, Options{Width: 20, Height: 20, Foods: 1, Seed: 9}, store.NewFileStore(dir))
	if got := next.Record().HighScore; got != 7 {
		t.Fatalf("reloaded high score = %d, expected 7", got)
	}
}

func TestCorruptRecordStartsFromZero(t *testing.T) {
	s := mustSession(t, Options{Width: 5, Height: 5, Seed: 1}, failingStore{})
	if got := s.Record().HighScore; got != 0 {
		t.Fatalf("high score = %d, expected 0", got)
	}
}

type failingStore struct{}

func (failingStore) Load() (store.Record, error) { return store.Record{}, store.ErrCorrupt }
func (failingStore) Save(store.Record) error    { return errors.New("read-only") }

func TestFinishStopsCadenceAndRestartResumes(t *testing.T) {
	mem := &store.MemoryStore{}
	s := mustSession(t, Options{Width: 3, Height: 1, Interval: time.Second, Seed: 4}, mem)
	start := time.Unix(0, 0)
	s.Start(start)

	var finished, restarted int
	s.Bus().Subscribe(EventFinished, func(Event) { finished++ })
	s.Bus().Subscribe(EventRestarted, func(Event) { restarted++ })

	if res := s.Apply(Restart(), start); res.Changed() {
		t.Fatal("restart must be ignored while the game runs")
	}

	now := start
	for i := 0; i < 4 && !s.Game().Finished(); i++ {
		now = now.Add(time.Second)
		s.Poll(now)
	}
	if !s.Game().Finished() || s.Game().Cause() != snake.CauseWall {
		t.Fatalf("expected wall collision, finished=%v cause=%s", s.Game().Finished(), s.Game().Cause())
	}
	if finished != 1 {
		t.Fatalf("finished events = %d, expected 1", finished)
	}
	if !s.Cadence().Stopped() {
		t.Fatal("cadence should stop when the game ends")
	}
	if s.Poll(now.Add(time.Hour)).Ticked {
		t.Fatal("finished session kept ticking")
	}
	if s.Apply(Turn(core.Up), now).Changed() {
		t.Fatal("turn accepted after finish")
	}

	if res := s.Apply(Restart(), now); !res.Accepted {
		t.Fatal("restart rejected after finish")
	}
	if restarted != 1 || s.Games() != 2 {
		t.Fatalf("restarted=%d games=%d", restarted, s.Games())
	}
	if s.Game().Finished() || s.Cadence().Stopped() {
		t.Fatal("restart should produce a running game")
	}
	if got := s.Game().Head(); got != core.V(2, 0) {
		t.Fatalf("restart head = %v, expected (2,0)", got)
	}
}

func TestStatsReportScoreAndState(t *testing.T) {
	s := mustSession(t, Options{Width: 4, Height: 4, Foods: 2, Seed: 2}, nil)
	stats := s.Stats()
	if p, ok := stats.Lookup("score"); !ok || p.Value != "0" {
		t.Fatalf("score param = %+v %v", p, ok)
	}
	if p, ok := stats.Lookup("state"); !ok || p.Value != "running" {
		t.Fatalf("state param = %+v %v", p, ok)
	}
	if p, ok := stats.Lookup("size"); !ok || p.Value != "4x4" {
		t.Fatalf("size param = %+v %v", p, ok)
	}
}

func TestFrameMirrorsGame(t *testing.T) {
	s := mustSession(t, Options{Width: 6, Height: 4, Foods: 3, Seed: 8}, nil)
	f := s.Frame()
	if f.Session != s.ID().String() {
		t.Fatalf("frame session = %q", f.Session)
	}
	if f.Head != s.Game().Head() || f.Length != 1 || f.Finished {
		t.Fatalf("unexpected frame %+v", f)
	}
	if f.Projection.At(f.Head).Kind != snake.KindHead {
		t.Fatal("projection does not show the head")
	}
}

func TestRunReturnsWhenCommandsClose(t *testing.T) {
	s := mustSession(t, Options{Width: 10, Height: 10, Interval: time.Hour, Seed: 1}, nil)
	cmds := make(chan Command, 2)
	cmds <- Turn(core.Up)
	cmds <- Tick()
	close(cmds)

	var frames []Frame
	if err := s.Run(context.Background(), cmds, func(f Frame) { frames = append(frames, f) }); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("emitted %d frames, expected 3", len(frames))
	}
	if got := frames[2].Head; got != core.V(9, 4) {
		t.Fatalf("final head = %v, expected (9,4)", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s := mustSession(t, Options{Width: 10, Height: 10, Interval: time.Hour, Seed: 1}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, make(chan Command), nil) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run returned %v, expected context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunTicksOnSchedule(t *testing.T) {
	s := mustSession(t, Options{Width: 40, Height: 3, Interval: time.Millisecond, Seed: 1}, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	frames := make(chan Frame, 64)
	go s.Run(ctx, make(chan Command), func(f Frame) {
		select {
		case frames <- f:
		default:
		}
	})

	for {
		select {
		case f := <-frames:
			if f.Length == 1 && f.Head.X < 39 {
				cancel()
				return
			}
		case <-ctx.Done():
			t.Fatal("no scheduled tick observed")
		}
	}
}

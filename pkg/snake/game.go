// Package snake implements the grid snake simulation: body movement, food
// placement, collision detection and score derivation. It performs no I/O;
// hosts drive it through SetDirection and Tick and read it back through
// Project and the accessors.
package snake

import (
	"errors"
	"fmt"

	"gridsnake/pkg/core"
)

// ErrInvalidConfiguration is returned by New for unusable dimensions or food counts.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Outcome reports what a single Tick did.
type Outcome uint8

const (
	// OutcomeIdle means the game was already finished and nothing changed.
	OutcomeIdle Outcome = iota
	// OutcomeMoved means the snake advanced one cell without growing.
	OutcomeMoved
	// OutcomeAte means the head landed on food and the snake grew.
	OutcomeAte
	// OutcomeCollided means the move was invalid and the game is now finished.
	OutcomeCollided
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeCollided:
		return "collided"
	default:
		return "unknown"
	}
}

// Cause identifies why a game finished.
type Cause uint8

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "none"
	}
}

// Food is a consumable cell and the icon it is drawn with.
type Food struct {
	Pos  core.Vector
	Icon rune
}

// Game is the simulation state of one snake session.
type Game struct {
	w, h int

	// body[0] is the head.
	body     []core.Vector
	occupied map[core.Vector]struct{}

	foods      []Food
	foodTarget int

	direction core.Direction
	pending   core.Direction

	finished bool
	cause    Cause

	rng core.RangeSource
}

// New creates a game on a w*h grid that keeps up to foods items on the board.
// The snake starts as a single segment on the right edge, heading left.
func New(w, h, foods int, rng core.RangeSource) (*Game, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfiguration, w, h)
	}
	if foods < 0 {
		return nil, fmt.Errorf("%w: food count must not be negative, got %d", ErrInvalidConfiguration, foods)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfiguration)
	}
	start := core.V(w-1, h/2)
	g := &Game{
		w:          w,
		h:          h,
		body:       []core.Vector{start},
		occupied:   map[core.Vector]struct{}{start: {}},
		foodTarget: foods,
		direction:  core.Left,
		pending:    core.Left,
		rng:        rng,
	}
	g.spawnFood()
	return g, nil
}

// SetDirection requests a new heading for the next tick. Requests matching the
// applied heading, reversing it, or arriving after the game finished are
// ignored. It reports whether the request was accepted.
func (g *Game) SetDirection(d core.Direction) bool {
	if g.finished || !d.Valid() {
		return false
	}
	// Compare against the applied heading, not the pending one, so two quick
	// inputs inside one tick cannot combine into a U-turn.
	if d == g.direction || d == g.direction.Opposite() {
		return false
	}
	g.pending = d
	return true
}

// Tick advances the simulation by one step.
func (g *Game) Tick() Outcome {
	if g.finished {
		return OutcomeIdle
	}
	g.direction = g.pending
	next := g.body[0].Add(g.direction.Vector())

	switch {
	case !g.InBounds(next):
		g.finish(CauseWall)
		return OutcomeCollided
	case g.Occupied(next):
		g.finish(CauseSelf)
		return OutcomeCollided
	}

	if i := g.foodIndex(next); i >= 0 {
		g.foods = append(g.foods[:i], g.foods[i+1:]...)
		g.pushHead(next)
		g.spawnFood()
		return OutcomeAte
	}

	g.pushHead(next)
	g.popTail()
	return OutcomeMoved
}

func (g *Game) finish(c Cause) {
	g.finished = true
	g.cause = c
}

func (g *Game) pushHead(v core.Vector) {
	g.body = append(g.body, core.Vector{})
	copy(g.body[1:], g.body)
	g.body[0] = v
	g.occupied[v] = struct{}{}
}

func (g *Game) popTail() {
	last := len(g.body) - 1
	delete(g.occupied, g.body[last])
	g.body = g.body[:last]
}

func (g *Game) foodIndex(v core.Vector) int {
	for i, f := range g.foods {
		if f.Pos == v {
			return i
		}
	}
	return -1
}

// Score is the number of foods eaten: the body length minus the initial segment.
func (g *Game) Score() int { return len(g.body) - 1 }

// Size returns the grid dimensions.
func (g *Game) Size() (w, h int) { return g.w, g.h }

// Head returns the head position.
func (g *Game) Head() core.Vector { return g.body[0] }

// Len returns the number of body segments.
func (g *Game) Len() int { return len(g.body) }

// Body returns a copy of the body, head first.
func (g *Game) Body() []core.Vector { return append([]core.Vector(nil), g.body...) }

// Foods returns a copy of the food items currently on the board.
func (g *Game) Foods() []Food { return append([]Food(nil), g.foods...) }

// FoodAt reports the food at v, if any.
func (g *Game) FoodAt(v core.Vector) (Food, bool) {
	if i := g.foodIndex(v); i >= 0 {
		return g.foods[i], true
	}
	return Food{}, false
}

// FoodTarget returns the number of foods the game tries to keep on the board.
func (g *Game) FoodTarget() int { return g.foodTarget }

// Occupied reports whether a body segment covers v.
func (g *Game) Occupied(v core.Vector) bool {
	_, ok := g.occupied[v]
	return ok
}

// InBounds reports whether v lies on the grid.
func (g *Game) InBounds(v core.Vector) bool {
	return v.X >= 0 && v.X < g.w && v.Y >= 0 && v.Y < g.h
}

// Direction returns the heading applied on the last tick.
func (g *Game) Direction() core.Direction { return g.direction }

// Pending returns the heading that the next tick will apply.
func (g *Game) Pending() core.Direction { return g.pending }

// Finished reports whether the game has ended.
func (g *Game) Finished() bool { return g.finished }

// Cause reports why the game ended, or CauseNone while it is running.
func (g *Game) Cause() Cause { return g.cause }

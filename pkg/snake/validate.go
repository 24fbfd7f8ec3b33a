package snake

import (
	"fmt"

	"gridsnake/pkg/core"
)

// Validate checks the structural invariants of the game state. A non-nil
// result is a bug in the simulation, never an expected condition.
func (g *Game) Validate() error {
	if len(g.body) == 0 {
		return fmt.Errorf("snake has no segments")
	}
	if len(g.occupied) != len(g.body) {
		return fmt.Errorf("occupancy has %d cells for %d segments", len(g.occupied), len(g.body))
	}
	seen := make(map[core.Vector]struct{}, len(g.body)+len(g.foods))
	for i, v := range g.body {
		if !g.InBounds(v) {
			return fmt.Errorf("segment %d at %v is off the %dx%d grid", i, v, g.w, g.h)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("segment %d at %v overlaps the body", i, v)
		}
		if !g.Occupied(v) {
			return fmt.Errorf("segment %d at %v missing from occupancy", i, v)
		}
		seen[v] = struct{}{}
	}
	if len(g.foods) > g.foodTarget {
		return fmt.Errorf("%d foods exceed target %d", len(g.foods), g.foodTarget)
	}
	for i, f := range g.foods {
		if !g.InBounds(f.Pos) {
			return fmt.Errorf("food %d at %v is off the grid", i, f.Pos)
		}
		if _, dup := seen[f.Pos]; dup {
			return fmt.Errorf("food %d at %v overlaps the snake or another food", i, f.Pos)
		}
		if IconIndex(f.Icon) < 0 {
			return fmt.Errorf("food %d has unknown icon %q", i, f.Icon)
		}
		seen[f.Pos] = struct{}{}
	}
	if g.finished && g.cause == CauseNone {
		return fmt.Errorf("finished game without a cause")
	}
	return nil
}

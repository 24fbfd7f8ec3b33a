// Package autopilot steers a snake without a player. It drives the headless
// seed sweep and can stand in for a player in any host.
package autopilot

import (
	"gridsnake/pkg/core"
	"gridsnake/pkg/snake"
)

// Choose picks the heading for the next tick. Moves that hit a wall or the
// body are never chosen. Among safe moves it prefers ones that keep at least
// the snake's length of open space reachable, then the shortest distance to
// food. Reversals are skipped since the game rejects them. It reports false
// when every move is fatal.
func Choose(g *snake.Game) (core.Direction, bool) {
	head := g.Head()
	current := g.Direction()
	foods := g.Foods()

	best := core.Direction(0)
	bestRoomy := false
	bestDist := 0
	found := false
	for _, d := range core.Directions {
		if d == current.Opposite() {
			continue
		}
		next := head.Add(d.Vector())
		if !g.InBounds(next) || g.Occupied(next) {
			continue
		}
		roomy := reachable(g, next, g.Len()) >= g.Len()
		dist := nearest(next, foods)
		if !found || (roomy && !bestRoomy) || (roomy == bestRoomy && dist < bestDist) {
			best, bestRoomy, bestDist, found = d, roomy, dist, true
		}
	}
	return best, found
}

// reachable counts free cells connected to from, stopping once limit is
// reached.
func reachable(g *snake.Game, from core.Vector, limit int) int {
	seen := map[core.Vector]bool{from: true}
	queue := []core.Vector{from}
	for len(queue) > 0 && len(seen) < limit {
		v := queue[0]
		queue = queue[1:]
		for _, d := range core.Directions {
			n := v.Add(d.Vector())
			if seen[n] || !g.InBounds(n) || g.Occupied(n) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return len(seen)
}

func nearest(v core.Vector, foods []snake.Food) int {
	best := -1
	for _, f := range foods {
		d := abs(f.Pos.X-v.X) + abs(f.Pos.Y-v.Y)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Result summarises one autopiloted game.
type Result struct {
	Score int
	Ticks int
	Cause snake.Cause
}

// Play steers g until it finishes or maxTicks ticks have run. maxTicks <= 0
// means no limit.
func Play(g *snake.Game, maxTicks int) Result {
	ticks := 0
	for !g.Finished() && (maxTicks <= 0 || ticks < maxTicks) {
		if d, ok := Choose(g); ok {
			g.SetDirection(d)
		}
		g.Tick()
		ticks++
	}
	return Result{Score: g.Score(), Ticks: ticks, Cause: g.Cause()}
}

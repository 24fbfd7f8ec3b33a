package snake

import "gridsnake/pkg/core"

// Icons is the palette food items are drawn from.
var Icons = []rune{'🥕', '🍞', '🥑', '🍒'}

// spawnAttempts bounds the samples spent on each missing food slot.
const spawnAttempts = 1000

// spawnFood tops the board up to foodTarget items. It gives up on a slot after
// spawnAttempts rejected samples, so a crowded board ends up with fewer foods.
func (g *Game) spawnFood() {
	for len(g.foods) < g.foodTarget {
		if len(g.body)+len(g.foods) >= g.w*g.h {
			return
		}
		placed := false
		for attempt := 0; attempt < spawnAttempts; attempt++ {
			pos := core.V(g.rng.UniformInt(0, g.w), g.rng.UniformInt(0, g.h))
			if !g.InBounds(pos) || g.Occupied(pos) || g.foodIndex(pos) >= 0 {
				continue
			}
			icon := Icons[iconIndex(g.rng.UniformInt(0, len(Icons)))]
			g.foods = append(g.foods, Food{Pos: pos, Icon: icon})
			placed = true
			break
		}
		if !placed {
			return
		}
	}
}

func iconIndex(i int) int {
	if i < 0 || i >= len(Icons) {
		return 0
	}
	return i
}

// IconIndex returns the palette index of r, or -1 when r is not a food icon.
func IconIndex(r rune) int {
	for i, icon := range Icons {
		if icon == r {
			return i
		}
	}
	return -1
}

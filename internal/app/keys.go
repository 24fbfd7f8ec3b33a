package app

import "gridsnake/pkg/core"

// turnBinding pairs a key with the heading it requests.
type turnBinding[K comparable] struct {
	key K
	dir core.Direction
}

// pressedTurns returns the headings of every pressed binding in table order,
// so simultaneous presses always apply in the same sequence.
func pressedTurns[K comparable](table []turnBinding[K], pressed func(K) bool) []core.Direction {
	var dirs []core.Direction
	for _, b := range table {
		if pressed(b.key) {
			dirs = append(dirs, b.dir)
		}
	}
	return dirs
}

package core

import "strings"

// Direction is one of the four headings a snake can take.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every valid heading in declaration order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool { return d <= Right }

// Opposite returns the reverse heading. Invalid values map to themselves.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Vector returns the unit step for d. Invalid values map to the zero vector.
func (d Direction) Vector() Vector {
	switch d {
	case Up:
		return Vector{X: 0, Y: -1}
	case Down:
		return Vector{X: 0, Y: 1}
	case Left:
		return Vector{X: -1, Y: 0}
	case Right:
		return Vector{X: 1, Y: 0}
	default:
		return Vector{}
	}
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps a name such as "Up" or "left" to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	}
	return 0, false
}

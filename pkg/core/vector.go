// Package core holds the coordinate algebra shared by the snake simulation
// and its hosts. Y grows downward, matching screen coordinates.
package core

import "fmt"

// Vector is an integer grid coordinate or a direction delta.
type Vector struct {
	X int
	Y int
}

// V is a convenience constructor for Vector.
func V(x, y int) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the component-wise sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// String returns a string representation of the vector.
func (v Vector) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

package core

import "testing"

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite() == d {
			t.Fatalf("%v must not be its own opposite", d)
		}
		if d.Opposite().Opposite() != d {
			t.Fatalf("opposite of opposite of %v = %v", d, d.Opposite().Opposite())
		}
		sum := d.Vector().Add(d.Opposite().Vector())
		if sum != (Vector{}) {
			t.Fatalf("%v and its opposite should cancel, got %v", d, sum)
		}
	}
}

func TestDirectionVectors(t *testing.T) {
	expects := map[Direction]Vector{
		Up:    {0, -1},
		Down:  {0, 1},
		Left:  {-1, 0},
		Right: {1, 0},
	}
	for d, want := range expects {
		if got := d.Vector(); got != want {
			t.Fatalf("%v.Vector() = %v, expected %v", d, got, want)
		}
	}
	if got := Direction(9).Vector(); got != (Vector{}) {
		t.Fatalf("invalid direction should map to zero vector, got %v", got)
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		parsed, ok := ParseDirection(" " + d.String() + " ")
		if !ok || parsed != d {
			t.Fatalf("ParseDirection(%q) = %v, %v", d.String(), parsed, ok)
		}
	}
	if d, ok := ParseDirection("RIGHT"); !ok || d != Right {
		t.Fatalf("expected case-insensitive parse, got %v %v", d, ok)
	}
	if _, ok := ParseDirection("north"); ok {
		t.Fatal("unexpected parse of unknown direction")
	}
}

func TestVectorAddAndKey(t *testing.T) {
	a := V(19, 10)
	b := a.Add(Left.Vector())
	if b != V(18, 10) {
		t.Fatalf("expected (18,10), got %v", b)
	}
	if a != V(19, 10) {
		t.Fatal("Add must not mutate its receiver")
	}
	seen := map[Vector]bool{V(1, 2): true}
	if !seen[V(1, 2)] {
		t.Fatal("vectors with equal components must hash alike")
	}
	if got := b.String(); got != "(18,10)" {
		t.Fatalf("unexpected String %q", got)
	}
}

func TestRNGUniformIntRangeAndDeterminism(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 500; i++ {
		x := a.UniformInt(3, 9)
		if x < 3 || x >= 9 {
			t.Fatalf("UniformInt out of range: %d", x)
		}
		if y := b.UniformInt(3, 9); x != y {
			t.Fatalf("same seed diverged at draw %d: %d vs %d", i, x, y)
		}
	}
	if got := a.UniformInt(4, 4); got != 4 {
		t.Fatalf("empty range should return min, got %d", got)
	}
}

package app

import (
	"slices"
	"testing"

	"gridsnake/pkg/core"
)

func TestPressedTurnsFollowTableOrder(t *testing.T) {
	table := []turnBinding[string]{
		{"up", core.Up},
		{"down", core.Down},
		{"left", core.Left},
		{"right", core.Right},
	}
	pressed := map[string]bool{"right": true, "up": true}
	want := []core.Direction{core.Up, core.Right}
	for i := 0; i < 50; i++ {
		got := pressedTurns(table, func(k string) bool { return pressed[k] })
		if !slices.Equal(got, want) {
			t.Fatalf("pressed turns = %v, expected %v", got, want)
		}
	}
	if got := pressedTurns(table, func(string) bool { return false }); len(got) != 0 {
		t.Fatalf("no keys pressed, got %v", got)
	}
}

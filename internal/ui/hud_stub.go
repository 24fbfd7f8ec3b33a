//go:build !ebiten

package ui

import "gridsnake/internal/core"

type statsProvider interface {
	Stats() core.ParameterSnapshot
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(statsProvider, int) *HUD { return nil }

// Width is zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) PadButton { return PadNone }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}

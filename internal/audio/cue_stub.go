//go:build !ebiten

package audio

import "gridsnake/internal/session"

// Cues is a no-op placeholder for headless builds.
type Cues struct{}

// NewCues returns nil in the headless build.
func NewCues() *Cues { return nil }

// Attach is a no-op in the headless build.
func (c *Cues) Attach(*session.EventBus) {}

// ToggleMute is a no-op in the headless build.
func (c *Cues) ToggleMute() {}

package core

import "sort"

// Size describes the dimensions of a game grid.
type Size struct {
	W int
	H int
}

// Preset is a named board configuration.
type Preset struct {
	Size  Size
	Foods int
}

var presets = map[string]Preset{}

// Register adds a preset under the provided name.
func Register(name string, p Preset) {
	if name == "" {
		return
	}
	presets[name] = p
}

// Presets exposes the registry of available presets.
func Presets() map[string]Preset {
	return presets
}

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package app

import "gridsnake/internal/core"

func init() {
	core.Register("classic", core.Preset{Size: core.Size{W: 20, H: 20}, Foods: 50})
	core.Register("small", core.Preset{Size: core.Size{W: 12, H: 12}, Foods: 8})
	core.Register("sparse", core.Preset{Size: core.Size{W: 30, H: 20}, Foods: 3})
}

package voxel

import (
	"github.com/df07/go-voxel-raytracer/pkg/core"
)

// Material ids used by the bundled scenes
const (
	MaterialEmpty uint8 = 0
	MaterialStone uint8 = 1
	MaterialBrick uint8 = 2
	MaterialMoss  uint8 = 3
	MaterialSteel uint8 = 4
)

// MaterialColor returns the base color for a material id. The lookup is
// total: unknown ids render white rather than failing.
func MaterialColor(id uint8) core.Vec3 {
	switch id {
	case MaterialStone:
		return core.NewVec3(0.28, 0.30, 0.33)
	case MaterialBrick:
		return core.NewVec3(0.95, 0.30, 0.18)
	case MaterialMoss:
		return core.NewVec3(0.15, 0.75, 0.35)
	case MaterialSteel:
		return core.NewVec3(0.20, 0.45, 0.95)
	default:
		return core.NewVec3(1.0, 1.0, 1.0)
	}
}

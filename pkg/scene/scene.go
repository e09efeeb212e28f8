package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-voxel-raytracer/pkg/voxel"
)

// Default voxel world dimensions shared by the bundled scenes
const (
	GridWidth  = 24
	GridHeight = 16
	GridDepth  = 24
)

// NewDefaultScene builds the tutorial world: a stone ground plane, a 2x2
// brick column, a moss wall, and a tall steel pillar
func NewDefaultScene() *voxel.Grid {
	grid := voxel.NewGrid(GridWidth, GridHeight, GridDepth)

	// Ground plane
	for z := 0; z < GridDepth; z++ {
		for x := 0; x < GridWidth; x++ {
			grid.Set(x, 0, z, voxel.MaterialStone)
		}
	}

	// 2x2 brick column
	for y := 1; y <= 5; y++ {
		grid.Set(8, y, 8, voxel.MaterialBrick)
		grid.Set(9, y, 8, voxel.MaterialBrick)
		grid.Set(8, y, 9, voxel.MaterialBrick)
		grid.Set(9, y, 9, voxel.MaterialBrick)
	}

	// Moss wall
	for y := 1; y <= 3; y++ {
		for x := 14; x <= 18; x++ {
			grid.Set(x, y, 14, voxel.MaterialMoss)
		}
	}

	// Steel pillar
	for y := 1; y <= 7; y++ {
		grid.Set(17, y, 6, voxel.MaterialSteel)
	}

	return grid
}

// NewTerrainScene builds rolling sine-wave terrain with a moss surface
// layer. Denser than the default scene, which makes it useful for comparing
// traversal step counts.
func NewTerrainScene() *voxel.Grid {
	grid := voxel.NewGrid(GridWidth, GridHeight, GridDepth)

	for z := 0; z < GridDepth; z++ {
		for x := 0; x < GridWidth; x++ {
			top := terrainHeight(x, z)
			for y := 0; y < top; y++ {
				grid.Set(x, y, z, voxel.MaterialStone)
			}
			grid.Set(x, top, z, voxel.MaterialMoss)
		}
	}

	// A few brick markers for orientation, rising from the surface so the
	// moss cap underneath stays intact
	for _, col := range [][2]int{{4, 4}, {19, 19}} {
		x, z := col[0], col[1]
		top := terrainHeight(x, z)
		for y := top + 1; y <= top+6; y++ {
			grid.Set(x, y, z, voxel.MaterialBrick)
		}
	}

	return grid
}

// terrainHeight returns the surface cell height of the terrain scene at the
// given column
func terrainHeight(x, z int) int {
	h := 2.5 + 2.0*math.Sin(float64(x)*0.45)*math.Cos(float64(z)*0.35)
	return max(int(h), 0)
}

// NewEmptyScene builds a grid with no solid voxels; every ray that enters
// the box exhausts it and falls through to the sky gradient
func NewEmptyScene() *voxel.Grid {
	return voxel.NewGrid(GridWidth, GridHeight, GridDepth)
}

// Create builds a scene by name
func Create(name string) (*voxel.Grid, error) {
	switch name {
	case "default":
		return NewDefaultScene(), nil
	case "terrain":
		return NewTerrainScene(), nil
	case "empty":
		return NewEmptyScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene: %s", name)
	}
}

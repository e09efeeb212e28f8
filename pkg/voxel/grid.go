package voxel

import (
	"github.com/df07/go-voxel-raytracer/pkg/core"
)

// Grid is a fixed-size 3D array of material ids. Id 0 means empty; any
// non-zero id selects a material color. The grid occupies the world-space box
// [0,width]×[0,height]×[0,depth], one world unit per voxel. It is populated
// once by scene-building code and treated as read-only while a frame renders.
type Grid struct {
	width  int
	height int
	depth  int
	voxels []uint8
}

// NewGrid creates an empty grid with the given dimensions
func NewGrid(width, height, depth int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		depth:  depth,
		voxels: make([]uint8, width*height*depth),
	}
}

// Width returns the grid extent along X
func (g *Grid) Width() int { return g.width }

// Height returns the grid extent along Y
func (g *Grid) Height() int { return g.height }

// Depth returns the grid extent along Z
func (g *Grid) Depth() int { return g.depth }

// index converts 3D voxel coords to a linear index. Callers must bounds-check
// first via Contains.
func (g *Grid) index(x, y, z int) int {
	return x + y*g.width + z*g.width*g.height
}

// Contains reports whether the cell coordinates lie inside the grid
func (g *Grid) Contains(x, y, z int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height && z >= 0 && z < g.depth
}

// At returns the material id at the given cell, or 0 (empty) for cells
// outside the grid
func (g *Grid) At(x, y, z int) uint8 {
	if !g.Contains(x, y, z) {
		return 0
	}
	return g.voxels[g.index(x, y, z)]
}

// Set writes one voxel. Out-of-range coordinates are silently ignored so
// scene builders can write shapes that overlap the grid edge.
func (g *Grid) Set(x, y, z int, id uint8) {
	if g.Contains(x, y, z) {
		g.voxels[g.index(x, y, z)] = id
	}
}

// Bounds returns the world-space bounding box of the grid
func (g *Grid) Bounds() core.AABB {
	return core.NewAABB(
		core.NewVec3(0, 0, 0),
		core.NewVec3(float64(g.width), float64(g.height), float64(g.depth)),
	)
}

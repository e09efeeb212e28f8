package voxel

import (
	"math"

	"github.com/df07/go-voxel-raytracer/pkg/core"
)

// MaxTraversalSteps bounds the DDA loop. A ray crossing the default grid
// diagonally visits far fewer cells than this, so hitting the budget is a
// diagnostic signal rather than an expected outcome.
const MaxTraversalSteps = 256

// lightDir is the single pre-normalized directional light used for shading
var lightDir = core.NewVec3(0.46608496, 0.8474272, 0.25422817)

// TraceResult is the outcome of tracing one ray through the grid
type TraceResult struct {
	Hit         bool      // A solid voxel was hit
	EnteredGrid bool      // The ray intersected the grid bounding box
	Steps       int       // Voxel cells visited during traversal
	Color       core.Vec3 // Shaded color, components in [0,1]
}

// TraceRay walks a ray through the grid using Amanatides-Woo 3D DDA and
// returns the shading result plus traversal metadata. The ray direction must
// be normalized so parametric distances are in world units.
func TraceRay(grid *Grid, ray core.Ray) TraceResult {
	// Clip the ray against the grid bounds first
	tEnter, tExit, ok := grid.Bounds().Clip(ray)
	if !ok {
		return TraceResult{
			Hit:         false,
			EnteredGrid: false,
			Steps:       0,
			Color:       skyColor(ray.Direction, false),
		}
	}

	// Start at the entry point, or at the origin if it is inside the box
	t := math.Max(tEnter, 0)
	p := ray.At(t)

	// Map the start point to an initial cell. The clamp guards against
	// floating-point entry points landing exactly on or just past a face.
	cellX := min(max(int(math.Floor(p.X)), 0), grid.Width()-1)
	cellY := min(max(int(math.Floor(p.Y)), 0), grid.Height()-1)
	cellZ := min(max(int(math.Floor(p.Z)), 0), grid.Depth()-1)

	// Travel direction per axis
	stepX, stepY, stepZ := -1, -1, -1
	if ray.Direction.X > 0 {
		stepX = 1
	}
	if ray.Direction.Y > 0 {
		stepY = 1
	}
	if ray.Direction.Z > 0 {
		stepZ = 1
	}

	// First boundary crossing candidate on each axis
	nextX := float64(cellX)
	if stepX > 0 {
		nextX = float64(cellX + 1)
	}
	nextY := float64(cellY)
	if stepY > 0 {
		nextY = float64(cellY + 1)
	}
	nextZ := float64(cellZ)
	if stepZ > 0 {
		nextZ = float64(cellZ + 1)
	}

	// tMax: distance to the next crossing on each axis.
	// tDelta: crossing distance per whole voxel on that axis.
	// Axes the ray never crosses stay at +Inf and never win the comparison.
	tMaxX, tMaxY, tMaxZ := math.Inf(1), math.Inf(1), math.Inf(1)
	tDeltaX, tDeltaY, tDeltaZ := math.Inf(1), math.Inf(1), math.Inf(1)

	if math.Abs(ray.Direction.X) > core.ParallelEpsilon {
		tMaxX = t + (nextX-p.X)/ray.Direction.X
		tDeltaX = math.Abs(1.0 / ray.Direction.X)
	}
	if math.Abs(ray.Direction.Y) > core.ParallelEpsilon {
		tMaxY = t + (nextY-p.Y)/ray.Direction.Y
		tDeltaY = math.Abs(1.0 / ray.Direction.Y)
	}
	if math.Abs(ray.Direction.Z) > core.ParallelEpsilon {
		tMaxZ = t + (nextZ-p.Z)/ray.Direction.Z
		tDeltaZ = math.Abs(1.0 / ray.Direction.Z)
	}

	// Outward normal of the most recently crossed face
	normalX, normalY, normalZ := 0, 1, 0
	steps := 0

	for i := 0; i < MaxTraversalSteps; i++ {
		// Terminate outside the clipped segment or outside the grid
		if !grid.Contains(cellX, cellY, cellZ) || t > tExit {
			break
		}
		steps++

		if id := grid.At(cellX, cellY, cellZ); id != MaterialEmpty {
			return TraceResult{
				Hit:         true,
				EnteredGrid: true,
				Steps:       steps,
				Color:       shadeHit(grid, id, cellY, normalX, normalY, normalZ),
			}
		}

		// Advance along whichever axis crosses first. The comparison chain
		// is ordered x, y, z with strict less-than, so on an exact tie the
		// later axis advances; keep the order, it is observable in output.
		if tMaxX < tMaxY && tMaxX < tMaxZ {
			cellX += stepX
			t = tMaxX
			tMaxX += tDeltaX
			normalX, normalY, normalZ = -stepX, 0, 0
		} else if tMaxY < tMaxZ {
			cellY += stepY
			t = tMaxY
			tMaxY += tDeltaY
			normalX, normalY, normalZ = 0, -stepY, 0
		} else {
			cellZ += stepZ
			t = tMaxZ
			tMaxZ += tDeltaZ
			normalX, normalY, normalZ = 0, 0, -stepZ
		}
	}

	return TraceResult{
		Hit:         false,
		EnteredGrid: true,
		Steps:       steps,
		Color:       skyColor(ray.Direction, true),
	}
}

// shadeHit computes the color of a solid voxel: lambert against the fixed
// light plus an ambient term that brightens with cell height in the grid
func shadeHit(grid *Grid, id uint8, cellY, normalX, normalY, normalZ int) core.Vec3 {
	base := MaterialColor(id)
	normal := core.NewVec3(float64(normalX), float64(normalY), float64(normalZ))
	lambert := math.Max(normal.Dot(lightDir), 0)
	ambient := 0.7 + 0.3*(float64(cellY)/float64(grid.Height()))
	return base.Multiply(0.2 + 0.8*lambert*ambient)
}

// skyColor returns the miss gradient from the ray's vertical component.
// Rays that entered the grid but exhausted it use slightly darker constants
// than rays that never reached the box, which makes the two miss classes
// distinguishable on screen.
func skyColor(dir core.Vec3, entered bool) core.Vec3 {
	sky := math.Min(math.Max(0.5*(dir.Y+1.0), 0), 1)
	if entered {
		return core.NewVec3(0.5+0.3*sky, 0.65+0.2*sky, 0.95)
	}
	return core.NewVec3(0.55+0.2*sky, 0.7+0.15*sky, 0.95)
}

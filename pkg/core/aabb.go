package core

import "math"

// ParallelEpsilon is the direction-component magnitude below which a ray is
// treated as parallel to an axis. Shared by the slab clipper and the grid
// traverser so both agree on which rays never cross an axis.
const ParallelEpsilon = 1e-6

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// Contains reports whether a point lies inside the AABB (inclusive)
func (aabb AABB) Contains(p Vec3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// clipSlab intersects the running [tMin, tMax] interval with one axis-aligned
// slab. Rays nearly parallel to the slab hit only if the origin is already
// inside it, in which case the interval is left untouched.
func clipSlab(origin, direction, min, max float64, tMin, tMax *float64) bool {
	if math.Abs(direction) < ParallelEpsilon {
		return origin >= min && origin <= max
	}

	invDirection := 1.0 / direction
	t1 := (min - origin) * invDirection
	t2 := (max - origin) * invDirection

	// Ensure t1 <= t2 (swap if needed)
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	*tMin = math.Max(*tMin, t1)
	*tMax = math.Min(*tMax, t2)
	return true
}

// Clip intersects a ray with the AABB using the slab method and returns the
// parametric interval [tEnter, tExit] of the overlap. tEnter may be negative
// when the ray origin is inside the box; callers that only care about the
// forward part of the ray should clamp it to zero. Returns ok=false when the
// ray misses the box entirely, including when the whole overlap lies behind
// the origin.
func (aabb AABB) Clip(ray Ray) (tEnter, tExit float64, ok bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	if !clipSlab(ray.Origin.X, ray.Direction.X, aabb.Min.X, aabb.Max.X, &tMin, &tMax) {
		return 0, 0, false
	}
	if !clipSlab(ray.Origin.Y, ray.Direction.Y, aabb.Min.Y, aabb.Max.Y, &tMin, &tMax) {
		return 0, 0, false
	}
	if !clipSlab(ray.Origin.Z, ray.Direction.Z, aabb.Min.Z, aabb.Max.Z, &tMin, &tMax) {
		return 0, 0, false
	}

	// No intersection if the interval is empty or entirely behind the origin
	if tMax < math.Max(tMin, 0) {
		return 0, 0, false
	}

	return tMin, tMax, true
}

// Hit tests if a ray intersects with this AABB
func (aabb AABB) Hit(ray Ray) bool {
	_, _, ok := aabb.Clip(ray)
	return ok
}

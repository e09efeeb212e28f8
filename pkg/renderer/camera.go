package renderer

import (
	"math"

	"github.com/df07/go-voxel-raytracer/pkg/core"
	"github.com/df07/go-voxel-raytracer/pkg/voxel"
)

// CameraConfig describes the orbiting pinhole camera
type CameraConfig struct {
	Center       core.Vec3 // Orbit center, normally the middle of the grid
	OrbitRadius  float64   // Horizontal orbit radius in world units
	OrbitSpeed   float64   // Orbit angle advance per second of scene time
	EyeHeight    float64   // Base camera height
	BobAmplitude float64   // Vertical bob amplitude
	BobRate      float64   // Bob phase relative to the orbit angle
	VFov         float64   // Vertical field of view in degrees
	Width        int       // Image width in pixels
	Height       int       // Image height in pixels
}

// DefaultCameraConfig returns the orbit used by the bundled scenes: a wide
// circle around the grid center at roughly half the grid height above it
func DefaultCameraConfig(grid *voxel.Grid, width, height int) CameraConfig {
	return CameraConfig{
		Center:       core.NewVec3(float64(grid.Width())*0.5, 3.0, float64(grid.Depth())*0.5),
		OrbitRadius:  18.0,
		OrbitSpeed:   0.6,
		EyeHeight:    8.5,
		BobAmplitude: 1.5,
		BobRate:      0.7,
		VFov:         55.0,
		Width:        width,
		Height:       height,
	}
}

// Camera generates one ray direction per output pixel from an orbiting or
// frozen pose. Projection constants are precomputed once; per-frame pose is
// derived in Frame.
type Camera struct {
	config CameraConfig
	uStart float64
	uStep  float64
	vStart float64
	vStep  float64
}

// NewCamera creates a camera and precomputes the pinhole projection constants
func NewCamera(config CameraConfig) *Camera {
	aspect := float64(config.Width) / float64(config.Height)
	fovScale := math.Tan((config.VFov * 0.5) * (math.Pi / 180.0))
	invW := 1.0 / float64(config.Width)
	invH := 1.0 / float64(config.Height)

	return &Camera{
		config: config,
		// Offsets address pixel centers: the first column sits half a pixel
		// in from the left edge of the view plane, and v decreases downward
		// so raster order scans top to bottom.
		uStart: (-1.0 + invW) * aspect * fovScale,
		uStep:  2.0 * aspect * fovScale * invW,
		vStart: (1.0 - invH) * fovScale,
		vStep:  -2.0 * fovScale * invH,
	}
}

// Frame computes the camera pose for the given scene time. When frozen the
// camera holds a fixed pose on the orbit circle instead of advancing.
func (c *Camera) Frame(elapsed float64, frozen bool) *CameraFrame {
	cfg := c.config

	origin := core.NewVec3(cfg.Center.X+cfg.OrbitRadius, cfg.EyeHeight, cfg.Center.Z)
	if !frozen {
		orbitT := elapsed * cfg.OrbitSpeed
		origin = core.NewVec3(
			cfg.Center.X+math.Cos(orbitT)*cfg.OrbitRadius,
			cfg.EyeHeight+math.Sin(orbitT*cfg.BobRate)*cfg.BobAmplitude,
			cfg.Center.Z+math.Sin(orbitT)*cfg.OrbitRadius,
		)
	}

	forward := cfg.Center.Subtract(origin).Normalize()

	// Orthonormal basis from the look direction and a world up hint. If the
	// camera ever looks straight up or down the cross product degenerates,
	// so fall back to a fixed horizontal axis.
	right := forward.Cross(core.NewVec3(0, 1, 0))
	if right.LengthSquared() < 1e-12 {
		right = core.NewVec3(1, 0, 0)
	} else {
		right = right.Normalize()
	}
	up := right.Cross(forward).Normalize()

	return &CameraFrame{
		Origin:  origin,
		forward: forward,
		right:   right,
		up:      up,
		uStart:  c.uStart,
		uStep:   c.uStep,
		vStart:  c.vStart,
		vStep:   c.vStep,
	}
}

// CameraFrame is one frame's pose: a shared ray origin plus the basis and
// projection constants needed to build per-pixel directions
type CameraFrame struct {
	Origin  core.Vec3
	forward core.Vec3
	right   core.Vec3
	up      core.Vec3
	uStart  float64
	uStep   float64
	vStart  float64
	vStep   float64
}

// RayDirection returns the normalized direction through pixel (x, y).
// Offsets are evaluated in closed form per pixel, so repeated calls for the
// same pixel are bit-identical regardless of iteration order.
func (f *CameraFrame) RayDirection(x, y int) core.Vec3 {
	u := f.uStart + float64(x)*f.uStep
	v := f.vStart + float64(y)*f.vStep
	return f.forward.
		Add(f.right.Multiply(u)).
		Add(f.up.Multiply(v)).
		Normalize()
}

// Ray returns the full ray through pixel (x, y)
func (f *CameraFrame) Ray(x, y int) core.Ray {
	return core.NewRay(f.Origin, f.RayDirection(x, y))
}

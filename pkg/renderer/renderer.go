package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-voxel-raytracer/pkg/core"
	"github.com/df07/go-voxel-raytracer/pkg/voxel"
)

// Renderer is the render context for one scene: the voxel grid, image
// dimensions, camera, and worker count. It is owned by the caller and holds
// no hidden mutable state; the grid must not change while RenderFrame runs.
type Renderer struct {
	grid   *voxel.Grid
	camera *Camera
	width  int
	height int
	pool   *WorkerPool
}

// NewRenderer creates a renderer for the given grid and camera configuration
func NewRenderer(grid *voxel.Grid, config CameraConfig) *Renderer {
	return &Renderer{
		grid:   grid,
		camera: NewCamera(config),
		width:  config.Width,
		height: config.Height,
		pool:   NewWorkerPool(0),
	}
}

// SetWorkers sets the number of render workers. n <= 0 selects one worker
// per CPU; n == 1 renders serially on the calling goroutine.
func (r *Renderer) SetWorkers(n int) {
	r.pool = NewWorkerPool(n)
}

// RenderFrame traces one ray per pixel and returns the frame's color buffer
// plus aggregated traversal statistics. The elapsed scene time drives the
// camera orbit and the throughput figures; output is deterministic for
// identical elapsed time, freeze flag, and grid contents, regardless of the
// worker count.
func (r *Renderer) RenderFrame(elapsed float64, frozen bool) (*image.RGBA, FrameStats) {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	frame := r.camera.Frame(elapsed, frozen)

	var stats FrameStats
	if r.pool.NumWorkers() > 1 {
		stats = r.pool.Render(r.grid, frame, img)
	} else {
		stats = renderRows(r.grid, frame, img, 0, r.height)
	}

	stats.Finalize(elapsed)
	return img, stats
}

// renderRows traces every pixel in rows [yMin, yMax) and returns the band's
// raw counters. Bands are disjoint, so concurrent calls may share img.
func renderRows(grid *voxel.Grid, frame *CameraFrame, img *image.RGBA, yMin, yMax int) FrameStats {
	var stats FrameStats
	width := img.Rect.Dx()

	for y := yMin; y < yMax; y++ {
		for x := 0; x < width; x++ {
			result := voxel.TraceRay(grid, frame.Ray(x, y))
			stats.AddTrace(result)
			img.SetRGBA(x, y, vec3ToColor(result.Color))
		}
	}

	return stats
}

// vec3ToColor converts a normalized color to 8-bit RGBA with per-channel
// clamping. No gamma correction: the shading model already targets display
// range.
func vec3ToColor(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: uint8(min(max(int(c.X*255.0), 0), 255)),
		G: uint8(min(max(int(c.Y*255.0), 0), 255)),
		B: uint8(min(max(int(c.Z*255.0), 0), 255)),
		A: 255,
	}
}

package renderer

import (
	"bytes"
	"testing"

	"github.com/df07/go-voxel-raytracer/pkg/scene"
	"github.com/df07/go-voxel-raytracer/pkg/voxel"
)

func newTestRenderer(grid *voxel.Grid, workers int) *Renderer {
	r := NewRenderer(grid, DefaultCameraConfig(grid, 64, 36))
	r.SetWorkers(workers)
	return r
}

func TestRenderFrameCountsEveryPixel(t *testing.T) {
	r := newTestRenderer(scene.NewDefaultScene(), 1)

	img, stats := r.RenderFrame(1.0, false)

	if stats.Rays != 64*36 {
		t.Errorf("Expected %d rays, got %d", 64*36, stats.Rays)
	}
	if img.Rect.Dx() != 64 || img.Rect.Dy() != 36 {
		t.Errorf("Expected 64x36 image, got %dx%d", img.Rect.Dx(), img.Rect.Dy())
	}
	// The default scene has a full ground plane; an orbit camera above it
	// must land plenty of hits
	if stats.Hits == 0 {
		t.Error("Expected hits on the default scene")
	}
	if stats.MaxSteps < 1 || stats.MaxSteps > voxel.MaxTraversalSteps {
		t.Errorf("Max steps %d outside [1, %d]", stats.MaxSteps, voxel.MaxTraversalSteps)
	}
}

func TestRenderFrameEmptyGrid(t *testing.T) {
	r := newTestRenderer(scene.NewEmptyScene(), 1)

	_, stats := r.RenderFrame(2.0, false)

	if stats.Hits != 0 {
		t.Errorf("Expected 0 hits on an empty grid, got %d", stats.Hits)
	}
	if stats.HitRatio != 0 {
		t.Errorf("Expected hit ratio 0, got %f", stats.HitRatio)
	}
	// Rays still enter the box and consume steps
	if stats.RaysEnteredGrid == 0 || stats.TotalSteps == 0 {
		t.Errorf("Expected entered rays and steps on an empty grid, got %+v", stats)
	}
}

func TestRenderFrameZeroElapsedTime(t *testing.T) {
	r := newTestRenderer(scene.NewDefaultScene(), 1)

	_, stats := r.RenderFrame(0, true)

	if stats.RaysPerSec != 0 || stats.StepsPerSec != 0 {
		t.Errorf("Expected zero throughput at zero elapsed time, got %f rays/s %f steps/s",
			stats.RaysPerSec, stats.StepsPerSec)
	}
}

func TestRenderFrameDeterministic(t *testing.T) {
	r := newTestRenderer(scene.NewDefaultScene(), 1)

	imgA, statsA := r.RenderFrame(5.0, true)
	imgB, statsB := r.RenderFrame(5.0, true)

	if !bytes.Equal(imgA.Pix, imgB.Pix) {
		t.Error("Expected byte-identical pixel buffers for identical inputs")
	}
	if statsA != statsB {
		t.Errorf("Expected identical stats, got %+v vs %+v", statsA, statsB)
	}
}

func TestRenderFrameDeterministicAcrossWorkerCounts(t *testing.T) {
	grid := scene.NewDefaultScene()
	serial := newTestRenderer(grid, 1)
	parallel := newTestRenderer(grid, 4)

	imgA, statsA := serial.RenderFrame(3.3, false)
	imgB, statsB := parallel.RenderFrame(3.3, false)

	if !bytes.Equal(imgA.Pix, imgB.Pix) {
		t.Error("Expected identical pixel buffers regardless of worker count")
	}
	if statsA != statsB {
		t.Errorf("Expected identical stats regardless of worker count, got %+v vs %+v", statsA, statsB)
	}
}

func TestRenderFrameFrozenIgnoresElapsedPose(t *testing.T) {
	r := newTestRenderer(scene.NewDefaultScene(), 1)

	imgA, _ := r.RenderFrame(1.0, true)
	imgB, _ := r.RenderFrame(9.0, true)

	if !bytes.Equal(imgA.Pix, imgB.Pix) {
		t.Error("Expected identical frames while the camera is frozen")
	}
}

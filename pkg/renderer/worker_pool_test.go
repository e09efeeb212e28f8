package renderer

import (
	"bytes"
	"image"
	"testing"

	"github.com/df07/go-voxel-raytracer/pkg/scene"
)

func TestWorkerPoolDefaultsToCPUCount(t *testing.T) {
	pool := NewWorkerPool(0)
	if pool.NumWorkers() < 1 {
		t.Errorf("Expected at least one worker, got %d", pool.NumWorkers())
	}

	pool = NewWorkerPool(3)
	if pool.NumWorkers() != 3 {
		t.Errorf("Expected 3 workers, got %d", pool.NumWorkers())
	}
}

func TestWorkerPoolMatchesSerialRender(t *testing.T) {
	grid := scene.NewDefaultScene()
	camera := NewCamera(DefaultCameraConfig(grid, 64, 36))
	frame := camera.Frame(2.5, false)

	serialImg := image.NewRGBA(image.Rect(0, 0, 64, 36))
	serialStats := renderRows(grid, frame, serialImg, 0, 36)

	for _, workers := range []int{2, 4, 7} {
		poolImg := image.NewRGBA(image.Rect(0, 0, 64, 36))
		poolStats := NewWorkerPool(workers).Render(grid, frame, poolImg)

		if !bytes.Equal(serialImg.Pix, poolImg.Pix) {
			t.Errorf("Workers=%d: pixel buffer differs from serial render", workers)
		}
		if serialStats != poolStats {
			t.Errorf("Workers=%d: stats differ from serial render: %+v vs %+v",
				workers, serialStats, poolStats)
		}
	}
}

func TestWorkerPoolHandlesOddBandSizes(t *testing.T) {
	// Height not divisible by the band size: the final short band must still
	// be rendered
	grid := scene.NewDefaultScene()
	camera := NewCamera(DefaultCameraConfig(grid, 32, 13))
	frame := camera.Frame(0, true)

	img := image.NewRGBA(image.Rect(0, 0, 32, 13))
	stats := NewWorkerPool(4).Render(grid, frame, img)

	if stats.Rays != 32*13 {
		t.Errorf("Expected %d rays, got %d", 32*13, stats.Rays)
	}
}

package renderer

import (
	"image"
	"runtime"
	"sync"

	"github.com/df07/go-voxel-raytracer/pkg/voxel"
)

// bandRows is the number of scanlines per worker task. Small enough to
// balance load across workers, large enough that channel overhead stays
// negligible next to tracing a band.
const bandRows = 8

// rowBand is a task for the worker pool: a half-open range of scanlines
type rowBand struct {
	yMin int
	yMax int
}

// WorkerPool renders disjoint scanline bands in parallel. Pixels are
// independent, so workers share the output image without coordination; only
// the per-band stats travel back through a channel to be merged.
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a pool with the specified number of workers.
// numWorkers <= 0 selects one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Render traces the whole image using the pool's workers and returns the
// merged raw counters. The merge is commutative (sums and a max), so the
// result does not depend on completion order.
func (wp *WorkerPool) Render(grid *voxel.Grid, frame *CameraFrame, img *image.RGBA) FrameStats {
	height := img.Rect.Dy()
	numBands := (height + bandRows - 1) / bandRows

	tasks := make(chan rowBand, numBands)
	results := make(chan FrameStats, numBands)

	var wg sync.WaitGroup
	for i := 0; i < wp.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for band := range tasks {
				results <- renderRows(grid, frame, img, band.yMin, band.yMax)
			}
		}()
	}

	for yMin := 0; yMin < height; yMin += bandRows {
		tasks <- rowBand{yMin: yMin, yMax: min(yMin+bandRows, height)}
	}
	close(tasks)
	wg.Wait()
	close(results)

	var stats FrameStats
	for bandStats := range results {
		stats.Merge(bandStats)
	}
	return stats
}

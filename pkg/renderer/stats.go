package renderer

import "github.com/df07/go-voxel-raytracer/pkg/voxel"

// FrameStats aggregates traversal counters for one rendered frame
type FrameStats struct {
	Rays            int     // Total rays cast (one per pixel)
	RaysEnteredGrid int     // Rays whose clip interval against the grid box was non-empty
	Hits            int     // Rays that hit a solid voxel
	TotalSteps      int     // Sum of traversal steps over all rays
	MaxSteps        int     // Largest step count observed for a single ray
	AvgStepsPerRay  float64 // TotalSteps / Rays
	HitRatio        float64 // Hits / Rays
	RaysPerSec      float64 // Throughput from the frame's elapsed time
	StepsPerSec     float64
}

// AddTrace folds one ray's traversal result into the counters
func (fs *FrameStats) AddTrace(result voxel.TraceResult) {
	fs.Rays++
	if result.EnteredGrid {
		fs.RaysEnteredGrid++
	}
	if result.Hit {
		fs.Hits++
	}
	fs.TotalSteps += result.Steps
	if result.Steps > fs.MaxSteps {
		fs.MaxSteps = result.Steps
	}
}

// Merge combines counters from another stats record, typically one produced
// by a worker for a disjoint band of rows
func (fs *FrameStats) Merge(other FrameStats) {
	fs.Rays += other.Rays
	fs.RaysEnteredGrid += other.RaysEnteredGrid
	fs.Hits += other.Hits
	fs.TotalSteps += other.TotalSteps
	if other.MaxSteps > fs.MaxSteps {
		fs.MaxSteps = other.MaxSteps
	}
}

// Finalize computes the derived ratios and throughput. Zero rays or a
// degenerate elapsed time produce zeros, never NaN or Inf.
func (fs *FrameStats) Finalize(elapsedSeconds float64) {
	if fs.Rays > 0 {
		fs.AvgStepsPerRay = float64(fs.TotalSteps) / float64(fs.Rays)
		fs.HitRatio = float64(fs.Hits) / float64(fs.Rays)
	}
	if elapsedSeconds > 1e-6 {
		fs.RaysPerSec = float64(fs.Rays) / elapsedSeconds
		fs.StepsPerSec = float64(fs.TotalSteps) / elapsedSeconds
	}
}

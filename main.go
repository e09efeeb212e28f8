package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-voxel-raytracer/pkg/config"
	"github.com/df07/go-voxel-raytracer/pkg/renderer"
	"github.com/df07/go-voxel-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "default", "Scene to render: 'default', 'terrain' or 'empty'")
	configPath := flag.String("config", "", "Optional TOML settings file")
	sceneTime := flag.Float64("time", 0, "Scene time in seconds (drives the camera orbit)")
	frames := flag.Int("frames", 1, "Number of frames to render")
	frameStep := flag.Float64("step", 1.0/30.0, "Scene time advance between frames")
	freeze := flag.Bool("freeze", false, "Hold the camera at its frozen pose")
	workers := flag.Int("workers", 0, "Render workers (0 = one per CPU)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Voxel Raytracer")
		fmt.Println("Usage: voxelray [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Ground plane with brick column, moss wall and steel pillar")
		fmt.Println("  terrain - Rolling sine terrain with a moss surface layer")
		fmt.Println("  empty   - No solid voxels, sky gradient only")
		fmt.Println()
		fmt.Println("Output is saved to output/<scene>/frame_<n>.png")
		return
	}

	settings := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		settings = loaded
	}

	grid, err := scene.Create(*sceneName)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	outputDir := filepath.Join("output", *sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	r := renderer.NewRenderer(grid, settings.CameraConfig(grid))
	r.SetWorkers(*workers)

	fmt.Printf("Rendering %d frame(s) of scene '%s' at %dx%d...\n",
		*frames, *sceneName, settings.Image.Width, settings.Image.Height)

	elapsed := *sceneTime
	for frame := 0; frame < *frames; frame++ {
		startTime := time.Now()
		img, stats := r.RenderFrame(elapsed, *freeze)
		renderTime := time.Since(startTime)

		filename := filepath.Join(outputDir, fmt.Sprintf("frame_%03d.png", frame))
		if err := writePNG(filename, img); err != nil {
			fmt.Printf("Error saving PNG: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Frame %d: %v | hits %d/%d (%.1f%%) | steps avg %.2f max %d | %s\n",
			frame, renderTime, stats.Hits, stats.Rays, stats.HitRatio*100,
			stats.AvgStepsPerRay, stats.MaxSteps, filename)

		elapsed += *frameStep
	}
}

func writePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}

package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/df07/go-voxel-raytracer/pkg/renderer"
	"github.com/df07/go-voxel-raytracer/pkg/voxel"
)

// Settings are the render options shared by the binaries. All fields have
// working defaults; a TOML file overrides only what it mentions.
type Settings struct {
	Image  ImageSettings  `toml:"image"`
	Camera CameraSettings `toml:"camera"`
	Render RenderSettings `toml:"render"`
}

// ImageSettings sets the ray buffer resolution
type ImageSettings struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// CameraSettings overrides the orbit camera defaults
type CameraSettings struct {
	OrbitRadius  float64 `toml:"orbit_radius"`
	OrbitSpeed   float64 `toml:"orbit_speed"`
	EyeHeight    float64 `toml:"eye_height"`
	BobAmplitude float64 `toml:"bob_amplitude"`
	VFov         float64 `toml:"vfov"`
}

// RenderSettings selects the scene and parallelism
type RenderSettings struct {
	Scene   string `toml:"scene"`
	Workers int    `toml:"workers"` // 0 = one worker per CPU
}

// Default returns the settings used when no config file is given: the
// tutorial scene at 320x180 with the standard orbit
func Default() Settings {
	return Settings{
		Image: ImageSettings{
			Width:  320,
			Height: 180,
		},
		Camera: CameraSettings{
			OrbitRadius:  18.0,
			OrbitSpeed:   0.6,
			EyeHeight:    8.5,
			BobAmplitude: 1.5,
			VFov:         55.0,
		},
		Render: RenderSettings{
			Scene:   "default",
			Workers: 0,
		},
	}
}

// Load reads a TOML settings file over the defaults
func Load(path string) (Settings, error) {
	settings := Default()
	if _, err := toml.DecodeFile(path, &settings); err != nil {
		return Settings{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if settings.Image.Width <= 0 || settings.Image.Height <= 0 {
		return Settings{}, fmt.Errorf("config %s: image dimensions must be positive", path)
	}
	return settings, nil
}

// CameraConfig builds the camera configuration for a grid from these
// settings, keeping the scene-derived orbit center and bob rate
func (s Settings) CameraConfig(grid *voxel.Grid) renderer.CameraConfig {
	cfg := renderer.DefaultCameraConfig(grid, s.Image.Width, s.Image.Height)
	cfg.OrbitRadius = s.Camera.OrbitRadius
	cfg.OrbitSpeed = s.Camera.OrbitSpeed
	cfg.EyeHeight = s.Camera.EyeHeight
	cfg.BobAmplitude = s.Camera.BobAmplitude
	cfg.VFov = s.Camera.VFov
	return cfg
}

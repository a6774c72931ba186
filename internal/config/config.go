// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all viewer settings.
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ViewportConfig holds window settings.
type ViewportConfig struct {
	Title         string `yaml:"title"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Fullscreen    bool   `yaml:"fullscreen"`
	VSync         bool   `yaml:"vsync"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// CameraConfig holds projection and control sensitivity settings.
type CameraConfig struct {
	FOV           float32 `yaml:"fov"` // degrees
	Near          float32 `yaml:"near"`
	Far           float32 `yaml:"far"`
	RotationSpeed float32 `yaml:"rotation_speed"`
	PanSpeed      float32 `yaml:"pan_speed"`
	ZoomSpeed     float32 `yaml:"zoom_speed"`
}

// SceneConfig holds scene content settings.
type SceneConfig struct {
	Subdivisions  int     `yaml:"subdivisions"`   // sphere grid resolution
	PresetPath    string  `yaml:"preset_path"`    // empty: built-in preset
	DistancesPath string  `yaml:"distances_path"` // empty: fallback distances
	TimeScale     float32 `yaml:"time_scale"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewport: ViewportConfig{
			Title:         "Orbits",
			Width:         1280,
			Height:        720,
			VSync:         true,
			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			FOV:           45,
			Near:          0.1,
			Far:           100,
			RotationSpeed: 0.1,
			PanSpeed:      0.001,
			ZoomSpeed:     0.1,
		},
		Scene: SceneConfig{
			Subdivisions: 12,
			TimeScale:    1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ErrInvalid is wrapped by every Validate error.
var ErrInvalid = errors.New("invalid config")

// Validate rejects settings the viewer cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalid, c.Viewport.Width, c.Viewport.Height)
	case c.Camera.FOV < 1 || c.Camera.FOV > 90:
		return fmt.Errorf("%w: fov %v outside [1, 90]", ErrInvalid, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: clip range %v..%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Scene.Subdivisions < 1:
		return fmt.Errorf("%w: subdivisions %d", ErrInvalid, c.Scene.Subdivisions)
	case c.Scene.TimeScale < 0:
		return fmt.Errorf("%w: negative time scale %v", ErrInvalid, c.Scene.TimeScale)
	}
	return nil
}

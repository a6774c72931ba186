package scene

import (
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"github.com/Faultbox/orbitforge/internal/config"
	"github.com/Faultbox/orbitforge/internal/engine/camera"
	"github.com/Faultbox/orbitforge/internal/logger"
	"github.com/Faultbox/orbitforge/internal/orbit"
	"github.com/Faultbox/orbitforge/internal/preset"
	"github.com/Faultbox/orbitforge/pkg/mesh"
)

// NewCamera builds a camera with the configured projection and speeds.
func NewCamera(cfg config.CameraConfig) *camera.Camera {
	cam := camera.New()
	cam.SetFOV(cfg.FOV)
	cam.SetClip(cfg.Near, cfg.Far)
	cam.RotationSpeed = cfg.RotationSpeed
	cam.PanSpeed = cfg.PanSpeed
	cam.ZoomSpeed = cfg.ZoomSpeed
	return cam
}

// FromConfig builds a controller and loads its initial preset. A
// configured preset file that does not exist yet falls back to the
// built-in preset.
func FromConfig(cfg *config.Config, hooks Hooks) (*Controller, error) {
	log := logger.Named("scene")

	var distances orbit.DistanceMap
	if cfg.Scene.DistancesPath != "" {
		var err error
		distances, err = orbit.LoadDistances(cfg.Scene.DistancesPath)
		if err != nil {
			return nil, fmt.Errorf("distances: %w", err)
		}
		log.Info("distance map loaded",
			zap.String("path", cfg.Scene.DistancesPath),
			zap.Int("entries", len(distances)),
		)
	}

	c := New(NewCamera(cfg.Camera), Options{
		Meshes:    mesh.NewFactory(cfg.Scene.Subdivisions),
		Distances: distances,
		Hooks:     hooks,
		Logger:    log,
		TimeScale: cfg.Scene.TimeScale,
	})
	c.SetViewport(cfg.Viewport.Width, cfg.Viewport.Height)

	p, err := initialPreset(cfg.Scene.PresetPath, log)
	if err != nil {
		return nil, err
	}
	if err := c.Load(p); err != nil {
		return nil, err
	}
	return c, nil
}

func initialPreset(path string, log *zap.Logger) (*preset.Preset, error) {
	if path == "" {
		return preset.Default(), nil
	}
	p, err := preset.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("preset file not found, using built-in preset", zap.String("path", path))
		return preset.Default(), nil
	}
	return p, err
}

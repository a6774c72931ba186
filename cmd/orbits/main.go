// Package main is the entry point for the orbit viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/orbitforge/internal/config"
	"github.com/Faultbox/orbitforge/internal/logger"
	"github.com/Faultbox/orbitforge/internal/preset"
	"github.com/Faultbox/orbitforge/internal/scene"
	"github.com/Faultbox/orbitforge/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Orbits ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	sc, err := scene.FromConfig(cfg, scene.Hooks{
		OnInfo: func(b preset.Body) {
			logger.Info("body info",
				zap.String("name", b.Name),
				zap.Stringer("shape", b.Shape),
				zap.Float32("size", b.Size),
				zap.Int("slot", b.Position),
				zap.Float32("distance", b.DistanceFromCenter),
				zap.String("color", b.Color),
			)
		},
	})
	if err != nil {
		logger.Error("failed to set up scene", zap.Error(err))
		os.Exit(1)
	}

	v, err := viewer.New(cfg, sc)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

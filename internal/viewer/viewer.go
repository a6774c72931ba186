// Package viewer implements the interactive frame loop around a scene.
package viewer

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/orbitforge/internal/config"
	"github.com/Faultbox/orbitforge/internal/engine/input"
	"github.com/Faultbox/orbitforge/internal/engine/renderer"
	"github.com/Faultbox/orbitforge/internal/engine/window"
	"github.com/Faultbox/orbitforge/internal/logger"
	"github.com/Faultbox/orbitforge/internal/scene"
)

// Viewer is the interactive viewer instance.
type Viewer struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Controller
	controls *controls
	log      *zap.Logger
}

// New opens the window and binds it to sc.
func New(cfg *config.Config, sc *scene.Controller) (*Viewer, error) {
	log := logger.Named("viewer")
	log.Info("initializing viewer",
		zap.String("title", cfg.Viewport.Title),
		zap.Int("width", cfg.Viewport.Width),
		zap.Int("height", cfg.Viewport.Height),
	)

	v := &Viewer{
		config: cfg,
		scene:  sc,
		log:    log,
	}

	// Window first: it creates the OpenGL context
	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Viewport.Title,
		Width:      cfg.Viewport.Width,
		Height:     cfg.Viewport.Height,
		Fullscreen: cfg.Viewport.Fullscreen,
		VSync:      cfg.Viewport.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dw, dh := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{Width: dw, Height: dh})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()
	v.controls = &controls{
		scene:    sc,
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		log:      log,
		savePath: cfg.Scene.PresetPath,
	}
	shots := renderer.NewScreenshots(cfg.Viewport.ScreenshotDir, "orbits")
	v.controls.capture = func() (string, error) {
		return shots.Save(v.renderer.ReadPixels())
	}
	v.scene.SetViewport(v.window.GetSize())

	log.Info("viewer initialized")
	return v, nil
}

// Run runs the frame loop until the window closes or Escape is pressed
// with nothing focused.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()
	title := ""

	v.log.Info("starting frame loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			if event.Type == input.EventWindowResize {
				v.renderer.Resize(v.window.DrawableSize())
				v.scene.SetViewport(v.window.GetSize())
				continue
			}
			if !v.controls.handle(event) {
				v.running = false
			}
		}

		v.scene.Update(float32(dt))

		v.renderer.Begin(highlight(v.scene))
		v.renderer.End()
		v.window.SwapBuffers()

		if t := Title(v.config.Viewport.Title, v.scene); t != title {
			v.window.SetTitle(t)
			title = t
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

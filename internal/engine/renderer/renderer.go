// Package renderer owns the OpenGL frame: viewport, clear and the hover
// highlight of the background.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitforge/internal/logger"
	"github.com/Faultbox/orbitforge/pkg/math"
)

// Background is the clear color when nothing is hovered.
var Background = math.Vec3{X: 0.02, Y: 0.02, Z: 0.05}

// hoverMix is how far the background leans towards a hovered body's color.
const hoverMix = 0.15

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles the per-frame OpenGL state.
type Renderer struct {
	config Config
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	logger.Debug("closing renderer")
}

// Resize sets the viewport to the drawable size in pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin clears the frame. A non-nil highlight tints the background
// towards that color.
func (r *Renderer) Begin(highlight *math.Vec3) {
	c := ClearColor(highlight)
	gl.ClearColor(c.X, c.Y, c.Z, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.Flush()
}

// ClearColor returns the background for the given highlight.
func ClearColor(highlight *math.Vec3) math.Vec3 {
	if highlight == nil {
		return Background
	}
	return Background.Lerp(*highlight, hoverMix)
}

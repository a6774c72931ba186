package viewer

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitforge/internal/engine/input"
	"github.com/Faultbox/orbitforge/internal/preset"
	"github.com/Faultbox/orbitforge/internal/scene"
	"github.com/Faultbox/orbitforge/pkg/math"
)

// controls maps input events onto the scene and camera.
type controls struct {
	scene *scene.Controller
	rng   *rand.Rand
	log   *zap.Logger

	savePath  string
	capture   func() (string, error)
	leftDown  bool
	rightDown bool
}

// handle applies one event. It returns false when the viewer should quit.
func (c *controls) handle(e input.Event) bool {
	switch e.Type {
	case input.EventQuit:
		return false

	case input.EventMouseMove:
		if c.rightDown {
			c.scene.Camera().Rotate(float32(e.DeltaX), float32(e.DeltaY))
			return true
		}
		if c.leftDown {
			// no-op while focused: FocusOn locks panning
			c.scene.Camera().Pan(float32(e.DeltaX), float32(e.DeltaY))
			return true
		}
		if !c.scene.Hover(pointer(e)) {
			c.scene.ClearHover()
		}

	case input.EventMouseDown:
		switch e.Button {
		case input.ButtonLeft:
			c.scene.Click(pointer(e))
			c.leftDown = true
		case input.ButtonRight:
			c.rightDown = true
		}

	case input.EventMouseUp:
		switch e.Button {
		case input.ButtonLeft:
			c.leftDown = false
		case input.ButtonRight:
			c.rightDown = false
		}

	case input.EventMouseWheel:
		// wheel up narrows the view
		c.scene.Camera().Zoom(-e.Wheel * 10)

	case input.EventKeyDown:
		return c.key(e.Key)
	}
	return true
}

func (c *controls) key(k sdl.Scancode) bool {
	switch k {
	case sdl.SCANCODE_ESCAPE:
		if c.scene.Camera().Following() < 0 {
			return false
		}
		c.scene.Camera().Release()

	case sdl.SCANCODE_G:
		c.generate()

	case sdl.SCANCODE_DELETE, sdl.SCANCODE_BACKSPACE:
		if sel := c.scene.Selected(); sel >= 0 {
			if err := c.scene.Remove(sel); err != nil {
				c.log.Info("remove refused", zap.Int("index", sel), zap.Error(err))
			}
		}

	case sdl.SCANCODE_C:
		c.scene.Clear()

	case sdl.SCANCODE_R:
		c.scene.Camera().Reset()

	case sdl.SCANCODE_S:
		c.save()

	case sdl.SCANCODE_F12:
		c.screenshot()
	}
	return true
}

func (c *controls) generate() {
	b := preset.RandomBody(c.rng, c.scene.NextID())

	if _, err := c.scene.Generate(b); err != nil && !errors.Is(err, scene.ErrNoSlot) {
		c.log.Error("generate failed", zap.Error(err))
	}
}

func (c *controls) save() {
	if c.savePath == "" {
		c.log.Warn("no preset path configured, not saving")
		return
	}
	if err := c.scene.Preset().Save(c.savePath); err != nil {
		c.log.Error("save preset failed", zap.String("path", c.savePath), zap.Error(err))
		return
	}
	c.log.Info("preset saved", zap.String("path", c.savePath))
}

func (c *controls) screenshot() {
	if c.capture == nil {
		return
	}
	path, err := c.capture()
	if err != nil {
		c.log.Error("screenshot failed", zap.Error(err))
		return
	}
	c.log.Info("screenshot saved", zap.String("path", path))
}

func pointer(e input.Event) math.Vec2 {
	return math.Vec2{X: float32(e.MouseX), Y: float32(e.MouseY)}
}

// Title describes the scene for the window title bar.
func Title(base string, sc *scene.Controller) string {
	title := fmt.Sprintf("%s - %d bodies", base, sc.Len())
	if f := sc.Camera().Following(); f >= 0 {
		if b, ok := sc.Body(f); ok {
			title += " - following " + b.Name
		}
	}
	if sel := sc.Selected(); sel >= 0 && sc.Intersecting() {
		if b, ok := sc.Body(sel); ok {
			title += fmt.Sprintf(" - %s (%s, slot %d)", b.Name, b.Shape, b.Position)
		}
	}
	return title
}

// highlight returns the hovered body's color, or nil.
func highlight(sc *scene.Controller) *math.Vec3 {
	if !sc.Intersecting() {
		return nil
	}
	b, ok := sc.Body(sc.Selected())
	if !ok {
		return nil
	}
	c := preset.HexToRGB(b.Color)
	return &c
}

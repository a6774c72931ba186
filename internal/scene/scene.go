// Package scene owns the placed bodies and the pointer selection state,
// and routes pointer events through the picking engine.
package scene

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/orbitforge/internal/engine/camera"
	"github.com/Faultbox/orbitforge/internal/engine/picking"
	"github.com/Faultbox/orbitforge/internal/logger"
	"github.com/Faultbox/orbitforge/internal/orbit"
	"github.com/Faultbox/orbitforge/internal/preset"
	"github.com/Faultbox/orbitforge/pkg/math"
)

// Errors returned by body list edits.
var (
	ErrNoSlot       = errors.New("no orbit slot available")
	ErrRemoveCenter = errors.New("center body cannot be removed")
	ErrIndexRange   = errors.New("body index out of range")
)

// Hooks are called after a click lands on a body. Either may be nil.
type Hooks struct {
	OnFocus func(index int, b preset.Body)
	OnInfo  func(b preset.Body)
}

// Options configures a Controller. Zero values are usable.
type Options struct {
	Meshes    picking.MeshSource // nil: shared default meshes
	Distances orbit.DistanceMap  // nil: fallback distances only
	Hooks     Hooks
	Logger    *zap.Logger // nil: logger.Named("scene")
	TimeScale float32     // 0 is treated as 1
}

// Controller is the single owner of the body list and selection state.
// It is not safe for concurrent use; drive it from the frame loop.
type Controller struct {
	name        string
	description string
	bodies      []preset.Body
	nextID      int

	selected     int
	intersecting bool

	camera    *camera.Camera
	meshes    picking.MeshSource
	distances orbit.DistanceMap
	hooks     Hooks
	timeScale float32
	log       *zap.Logger

	width  float32
	height float32
}

// New creates an empty controller driving cam.
func New(cam *camera.Camera, opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = logger.Named("scene")
	}
	scale := opts.TimeScale
	if scale == 0 {
		scale = 1
	}
	return &Controller{
		nextID:    1,
		selected:  -1,
		camera:    cam,
		meshes:    opts.Meshes,
		distances: opts.Distances,
		hooks:     opts.Hooks,
		timeScale: scale,
		log:       log,
		width:     1,
		height:    1,
	}
}

// SetViewport records the drawable size in pixels.
func (c *Controller) SetViewport(width, height int) {
	if width > 0 && height > 0 {
		c.width, c.height = float32(width), float32(height)
	}
}

// Camera returns the camera the controller focuses.
func (c *Controller) Camera() *camera.Camera { return c.camera }

// Len returns the number of placed bodies.
func (c *Controller) Len() int { return len(c.bodies) }

// Body returns the body at index i.
func (c *Controller) Body(i int) (preset.Body, bool) {
	if i < 0 || i >= len(c.bodies) {
		return preset.Body{}, false
	}
	return c.bodies[i], true
}

// Bodies returns a copy of the body list.
func (c *Controller) Bodies() []preset.Body {
	return append([]preset.Body(nil), c.bodies...)
}

// NextID returns the id Generate gives a body that has none.
func (c *Controller) NextID() int { return c.nextID }

// Selected returns the index of the last body under the pointer, or -1.
func (c *Controller) Selected() int { return c.selected }

// Intersecting reports whether the last hover landed on a body.
func (c *Controller) Intersecting() bool { return c.intersecting }

// Target returns the picking target for body i at its current position.
func (c *Controller) Target(i int) picking.Target {
	b := c.bodies[i]
	return picking.Target{
		Position: orbit.WorldPosition(b),
		Size:     b.Size,
		Shape:    b.Shape,
	}
}

// Pick returns the first body in list order under the pointer, or -1.
func (c *Controller) Pick(pointer math.Vec2) int {
	ray := picking.ScreenToRay(pointer, c.width, c.height, c.camera.Snapshot())
	for i := range c.bodies {
		if picking.IntersectTarget(ray, c.Target(i), c.meshes) {
			return i
		}
	}
	return -1
}

// Hover updates the selection from a pointer move. A miss leaves the
// previous selection in place; see ClearHover.
func (c *Controller) Hover(pointer math.Vec2) bool {
	hit := c.Pick(pointer)
	c.intersecting = hit >= 0
	if hit >= 0 {
		c.selected = hit
	}
	return c.intersecting
}

// ClearHover drops the selection.
func (c *Controller) ClearHover() {
	c.selected = -1
	c.intersecting = false
}

// Click focuses the camera on the first body under the pointer and runs
// the hooks. It reports whether a body was hit.
func (c *Controller) Click(pointer math.Vec2) bool {
	hit := c.Pick(pointer)
	if hit < 0 {
		return false
	}

	c.selected = hit
	c.intersecting = true
	b := c.bodies[hit]
	c.camera.FocusOn(orbit.WorldPosition(b), b.Size, hit)
	c.log.Debug("body focused", zap.Int("index", hit), zap.String("name", b.Name))

	if c.hooks.OnFocus != nil {
		c.hooks.OnFocus(hit, b)
	}
	if c.hooks.OnInfo != nil {
		c.hooks.OnInfo(b)
	}
	return true
}

// Generate places b in the lowest free orbit slot, or evicts the body in
// the highest slot when all are taken. It returns the index b landed at.
func (c *Controller) Generate(b preset.Body) (int, error) {
	if b.ID == 0 {
		b.ID = c.nextID
	}
	if b.ID >= c.nextID {
		c.nextID = b.ID + 1
	}

	if slot, ok := orbit.FindAvailable(c.bodies); ok {
		b.Position = slot
		b.DistanceFromCenter = c.distances.Distance(slot)
		c.bodies = append(c.bodies, b)
		c.log.Info("body placed",
			zap.String("name", b.Name),
			zap.Stringer("shape", b.Shape),
			zap.Int("slot", slot),
		)
		return len(c.bodies) - 1, nil
	}

	idx, ok := orbit.ReplaceLastIndex(c.bodies, b)
	if !ok {
		c.log.Warn("no body could be placed", zap.String("name", b.Name), zap.Int("bodies", len(c.bodies)))
		return -1, ErrNoSlot
	}

	placed := &c.bodies[idx]
	placed.DistanceFromCenter = c.distances.Distance(placed.Position)
	c.forget(idx)
	c.log.Info("body replaced",
		zap.String("name", placed.Name),
		zap.Int("slot", placed.Position),
		zap.Int("index", idx),
	)
	return idx, nil
}

// Remove deletes body i. The center body stays.
func (c *Controller) Remove(i int) error {
	if i < 0 || i >= len(c.bodies) {
		return fmt.Errorf("%w: %d", ErrIndexRange, i)
	}
	if c.bodies[i].IsCenter() {
		return ErrRemoveCenter
	}

	removed := c.bodies[i]
	c.bodies = append(c.bodies[:i], c.bodies[i+1:]...)
	c.forget(i)

	// Indices after i moved down by one
	if c.selected > i {
		c.selected--
	}
	if f := c.camera.Following(); f > i {
		c.camera.Renumber(f - 1)
	}

	c.log.Info("body removed", zap.String("name", removed.Name), zap.Int("slot", removed.Position))
	return nil
}

// forget drops selection and focus that point at index i.
func (c *Controller) forget(i int) {
	if c.selected == i {
		c.ClearHover()
	}
	if c.camera.Following() == i {
		c.camera.Release()
	}
}

// Clear removes every orbiting body and keeps the center.
func (c *Controller) Clear() {
	kept := c.bodies[:0]
	for _, b := range c.bodies {
		if b.IsCenter() {
			kept = append(kept, b)
		}
	}
	c.bodies = kept
	c.reset()
	c.log.Info("scene cleared", zap.Int("kept", len(kept)))
}

// Load replaces the scene with a copy of p. Orbiting bodies without a
// stored distance get one from the distance map.
func (c *Controller) Load(p *preset.Preset) error {
	if err := preset.Validate(p); err != nil {
		return fmt.Errorf("load preset %q: %w", p.Name, err)
	}

	c.name = p.Name
	c.description = p.Description
	c.bodies = p.Clone().Planets
	c.nextID = 1
	for i := range c.bodies {
		b := &c.bodies[i]
		if !b.IsCenter() && b.DistanceFromCenter == 0 {
			b.DistanceFromCenter = c.distances.Distance(b.Position)
		}
		if b.ID >= c.nextID {
			c.nextID = b.ID + 1
		}
	}
	c.reset()

	c.log.Info("preset loaded", zap.String("name", p.Name), zap.Int("bodies", len(c.bodies)))
	return nil
}

func (c *Controller) reset() {
	c.ClearHover()
	c.camera.Release()
}

// Preset exports the current scene.
func (c *Controller) Preset() *preset.Preset {
	return &preset.Preset{
		Name:        c.name,
		Description: c.description,
		Planets:     c.Bodies(),
	}
}

// Update advances the bodies by dt seconds and keeps a focused body in view.
func (c *Controller) Update(dt float32) {
	orbit.Advance(c.bodies, dt*c.timeScale)

	if f := c.camera.Following(); f >= 0 && f < len(c.bodies) {
		c.camera.Follow(orbit.WorldPosition(c.bodies[f]))
	}
}

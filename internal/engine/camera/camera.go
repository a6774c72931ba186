// Package camera provides the scene camera and the immutable snapshots of it
// that the picking engine consumes.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/orbitforge/pkg/math"
)

// Defaults for a freshly created or reset camera.
const (
	DefaultFOV  = 45.0
	DefaultNear = 0.1
	DefaultFar  = 100.0

	minFOV   = 1.0
	maxFOV   = 90.0
	maxPitch = 89.0

	// focusDistance is how many body sizes away the camera parks on focus.
	focusDistance = 3.0
)

var worldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// Snapshot is a read-only copy of the camera state for one query.
type Snapshot struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
	FOVY     float32 // vertical field of view, degrees
	Near     float32
	Far      float32
}

// View returns the look-at view matrix.
func (s Snapshot) View() math.Mat4 {
	return math.LookAt(s.Position, s.Target, s.Up)
}

// Projection returns the perspective projection for the given aspect ratio.
func (s Snapshot) Projection(aspect float32) math.Mat4 {
	near, far := s.Near, s.Far
	if near <= 0 {
		near = DefaultNear
	}
	if far <= near {
		far = DefaultFar
	}
	return math.Perspective(math.Radians(s.FOVY), aspect, near, far)
}

// Camera is a yaw/pitch camera orbiting a target point. It can focus on a
// body, follow it while it moves, and return to where it was before.
type Camera struct {
	position math.Vec3
	target   math.Vec3
	up       math.Vec3
	right    math.Vec3

	yaw   float32 // degrees
	pitch float32 // degrees
	fov   float32 // degrees
	near  float32
	far   float32

	// Sensitivity
	RotationSpeed float32
	PanSpeed      float32
	ZoomSpeed     float32

	panningLocked bool

	savedPosition math.Vec3
	savedTarget   math.Vec3

	following    bool
	followIndex  int
	followOffset math.Vec3
}

// New creates a camera three units in front of the origin.
func New() *Camera {
	c := &Camera{
		RotationSpeed: 0.1,
		PanSpeed:      0.001,
		ZoomSpeed:     0.1,
		near:          DefaultNear,
		far:           DefaultFar,
	}
	c.Reset()
	return c
}

// Reset returns the camera to its initial pose and drops any focus.
func (c *Camera) Reset() {
	c.position = math.Vec3{X: 0, Y: 0, Z: 3}
	c.target = math.Vec3{}
	c.up = worldUp
	c.yaw = -90
	c.pitch = 0
	c.fov = DefaultFOV
	c.panningLocked = false
	c.following = false
	c.followIndex = -1
	c.savedPosition = c.position
	c.savedTarget = c.target
	c.updateVectors()
}

// Snapshot copies the current state.
func (c *Camera) Snapshot() Snapshot {
	return Snapshot{
		Position: c.position,
		Target:   c.target,
		Up:       c.up,
		FOVY:     c.fov,
		Near:     c.near,
		Far:      c.far,
	}
}

// SetClip sets the near and far clip distances. Invalid ranges are ignored.
func (c *Camera) SetClip(near, far float32) {
	if near <= 0 || far <= near {
		return
	}
	c.near, c.far = near, far
}

// Position returns the eye position.
func (c *Camera) Position() math.Vec3 { return c.position }

// Target returns the look-at point.
func (c *Camera) Target() math.Vec3 { return c.target }

// FOV returns the vertical field of view in degrees.
func (c *Camera) FOV() float32 { return c.fov }

// SetPose places the camera explicitly and derives yaw and pitch from it.
func (c *Camera) SetPose(position, target math.Vec3) {
	c.position = position
	c.target = target
	c.lookAlong(target.Sub(position))
	c.updateVectors()
}

// SetFOV sets the vertical field of view, clamped to [1, 90] degrees.
func (c *Camera) SetFOV(deg float32) {
	c.fov = math.Clamp(deg, minFOV, maxFOV)
}

// Rotate turns the camera around its target from a pointer drag delta.
func (c *Camera) Rotate(deltaX, deltaY float32) {
	c.yaw += deltaX * c.RotationSpeed
	c.pitch -= deltaY * c.RotationSpeed
	c.pitch = math.Clamp(c.pitch, -maxPitch, maxPitch)
	c.updateVectors()
}

// Pan slides position and target together in the view plane.
func (c *Camera) Pan(deltaX, deltaY float32) {
	if c.panningLocked {
		return
	}
	offset := c.right.Scale(-deltaX).Add(c.up.Scale(deltaY)).Scale(c.PanSpeed)
	c.position = c.position.Add(offset)
	c.target = c.target.Add(offset)
}

// Zoom narrows or widens the field of view.
func (c *Camera) Zoom(delta float32) {
	c.SetFOV(c.fov + delta*c.ZoomSpeed)
}

// FocusOn moves the camera to look at a body from focusDistance sizes away,
// keeping the current viewing direction, and starts following it.
// The pose before the first focus is kept for Release.
func (c *Camera) FocusOn(pos math.Vec3, size float32, index int) {
	if !c.following {
		c.savedPosition = c.position
		c.savedTarget = c.target
	}

	dir := pos.Sub(c.position).Normalize()
	if dir == (math.Vec3{}) {
		dir = c.target.Sub(c.position).Normalize()
	}

	c.target = pos
	c.followOffset = dir.Neg().Scale(size * focusDistance)
	c.position = pos.Add(c.followOffset)
	c.up = worldUp
	c.following = true
	c.followIndex = index
	c.panningLocked = true

	c.lookAlong(dir)
	c.updateVectors()
}

// Following reports the index of the followed body, or -1.
func (c *Camera) Following() int {
	if !c.following {
		return -1
	}
	return c.followIndex
}

// Renumber changes the followed body's index without moving the camera,
// for when the body list shifts under it.
func (c *Camera) Renumber(index int) {
	if c.following {
		c.followIndex = index
	}
}

// Follow keeps the focused body in view after it moved to pos.
func (c *Camera) Follow(pos math.Vec3) {
	if !c.following {
		return
	}
	c.target = pos
	c.position = pos.Add(c.followOffset)
}

// Release stops following and restores the pose saved by FocusOn.
func (c *Camera) Release() {
	if !c.following {
		return
	}
	c.following = false
	c.followIndex = -1
	c.panningLocked = false
	c.SetPose(c.savedPosition, c.savedTarget)
}

// lookAlong derives yaw and pitch from a view direction.
func (c *Camera) lookAlong(dir math.Vec3) {
	dir = dir.Normalize()
	if dir == (math.Vec3{}) {
		return
	}
	c.pitch = math.Clamp(math32.Asin(dir.Y)/math.Radians(1), -maxPitch, maxPitch)
	c.yaw = math32.Atan2(dir.Z, dir.X) / math.Radians(1)
}

// updateVectors recomputes position, right and up from yaw and pitch,
// keeping the distance to the target.
func (c *Camera) updateVectors() {
	yaw := math.Radians(c.yaw)
	pitch := math.Radians(c.pitch)
	front := math.Vec3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()

	distance := c.position.Distance(c.target)
	c.position = c.target.Sub(front.Scale(distance))
	if c.following {
		c.followOffset = c.position.Sub(c.target)
	}

	c.right = front.Cross(worldUp).Normalize()
	c.up = c.right.Cross(front).Normalize()
}

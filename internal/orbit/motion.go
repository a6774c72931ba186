package orbit

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/orbitforge/internal/preset"
	"github.com/Faultbox/orbitforge/pkg/math"
)

// Speed multipliers applied to the per-body speeds stored in presets.
const (
	SelfRotationScale = 20
	OrbitScale        = 2000
)

// Advance moves every body forward by dt seconds: each body spins around
// its rotation axis and every non-center body travels along its orbit.
// Angles stay within (-360, 360).
func Advance(bodies []preset.Body, dt float32) {
	for i := range bodies {
		advance(&bodies[i], dt)
	}
}

func advance(b *preset.Body, dt float32) {
	axis := b.RotationDir
	b.CurrentRotation.SetAxis(axis, b.CurrentRotation.Axis(axis)+b.RotationSpeedItself*SelfRotationScale*dt)
	b.CurrentRotation = preset.Angles{
		X: math.WrapDegrees(b.CurrentRotation.X),
		Y: math.WrapDegrees(b.CurrentRotation.Y),
		Z: math.WrapDegrees(b.CurrentRotation.Z),
	}

	if b.IsCenter() {
		return
	}
	b.OrbitAngle.Y = math.WrapDegrees(b.OrbitAngle.Y + b.RotationSpeedCenter*OrbitScale*dt)
}

// WorldPosition places a body on its orbit circle in the XZ plane.
func WorldPosition(b preset.Body) math.Vec3 {
	theta := math.Radians(b.OrbitAngle.Y)
	return math.Vec3{
		X: b.DistanceFromCenter * math32.Cos(theta),
		Y: 0,
		Z: b.DistanceFromCenter * math32.Sin(theta),
	}
}

// Package picking provides ray casting and object picking utilities.
package picking

import (
	"github.com/Faultbox/orbitforge/internal/engine/camera"
	"github.com/Faultbox/orbitforge/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// ScreenToRay converts a pointer position in pixels to a world-space ray
// starting at the camera.
//
// The pointer is mapped to clip space, unprojected through the inverse
// projection with the eye-space ray forced to (x, y, -1, 0), then brought to
// world space through the inverse view matrix and normalized.
func ScreenToRay(pointer math.Vec2, viewportW, viewportH float32, cam camera.Snapshot) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2*pointer.X/viewportW - 1
	ndcY := 1 - 2*pointer.Y/viewportH // Flip Y

	rayClip := math.Vec4{ndcX, ndcY, -1, 1}

	invProj := cam.Projection(viewportW / viewportH).Inverse()
	rayEye := invProj.MulVec4(rayClip)
	rayEye = math.Vec4{rayEye[0], rayEye[1], -1, 0}

	invView := cam.View().Inverse()
	rayWorld := invView.MulVec4(rayEye).XYZ().Normalize()

	return Ray{Origin: cam.Position, Direction: rayWorld}
}

// toLocal moves the ray into the space of a body whose model matrix is
// Translate(pos) * Scale(scale). The direction is not renormalized.
func (r Ray) toLocal(pos math.Vec3, scale float32) Ray {
	inv := math.TranslateScale(pos, scale).Inverse()
	return Ray{
		Origin:    inv.TransformPoint(r.Origin),
		Direction: inv.TransformDirection(r.Direction),
	}
}

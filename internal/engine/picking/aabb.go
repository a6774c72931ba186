package picking

import "github.com/Faultbox/orbitforge/pkg/math"

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Slab intersects the ray with the box using per-axis slabs. It returns the
// largest entry distance and the smallest exit distance.
//
// The reciprocal direction is used as is: an axis-aligned ray yields ±Inf
// on the parallel axes, which the min/max reduction handles without special
// cases.
func (r Ray) Slab(box AABB) (tEnter, tExit float32) {
	invDir := r.Direction.Reciprocal()
	t0 := box.Min.Sub(r.Origin).MulComponents(invDir)
	t1 := box.Max.Sub(r.Origin).MulComponents(invDir)

	tmin := math.Vec3{X: minf(t0.X, t1.X), Y: minf(t0.Y, t1.Y), Z: minf(t0.Z, t1.Z)}
	tmax := math.Vec3{X: maxf(t0.X, t1.X), Y: maxf(t0.Y, t1.Y), Z: maxf(t0.Z, t1.Z)}

	tEnter = maxf(maxf(tmin.X, tmin.Y), tmin.Z)
	tExit = minf(minf(tmax.X, tmax.Y), tmax.Z)
	return tEnter, tExit
}

// IntersectAABB reports whether the ray hits the box in front of its origin.
func (r Ray) IntersectAABB(box AABB) bool {
	tEnter, tExit := r.Slab(box)
	return tExit >= tEnter && tExit > 0
}

// minf and maxf keep the first argument unless the comparison strictly
// favors the second; a NaN first argument is passed through.
func minf(a, b float32) float32 {
	if b < a {
		return b
	}
	return a
}

func maxf(a, b float32) float32 {
	if a < b {
		return b
	}
	return a
}

package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/orbitforge/internal/engine/camera"
	"github.com/Faultbox/orbitforge/pkg/math"
	"github.com/Faultbox/orbitforge/pkg/mesh"
)

// Epsilon is the parallel-ray and minimum-distance threshold of the
// ray/triangle test.
const Epsilon = 1e-7

// boxScale maps a body's size (a radius) onto the unit shapes, whose
// extent is [-0.5, 0.5].
const boxScale = 2

// unitBox bounds the cube and bipyramid in body-local space.
var unitBox = AABB{
	Min: math.Vec3{X: -0.5, Y: -0.5, Z: -0.5},
	Max: math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
}

// Target is the part of a body the picking tests need.
type Target struct {
	Position math.Vec3
	Size     float32
	Shape    mesh.ShapeKind
}

// MeshSource resolves the triangle mesh for shapes without a closed-form test.
type MeshSource interface {
	For(kind mesh.ShapeKind) *mesh.Mesh
}

type defaultMeshes struct{}

func (defaultMeshes) For(kind mesh.ShapeKind) *mesh.Mesh { return mesh.For(kind) }

// Intersects casts a ray from the camera through the pointer and tests it
// against the target. A nil source uses the shared default meshes.
func Intersects(pointer math.Vec2, viewportW, viewportH float32, cam camera.Snapshot, target Target, src MeshSource) bool {
	ray := ScreenToRay(pointer, viewportW, viewportH, cam)
	return IntersectTarget(ray, target, src)
}

// IntersectTarget dispatches to the test matching the target's shape.
// Shapes without a dedicated test fall back to the triangle mesh test.
func IntersectTarget(ray Ray, target Target, src MeshSource) bool {
	switch target.Shape {
	case mesh.ShapeSphere:
		return IntersectSphere(ray, target.Position, target.Size)
	case mesh.ShapeCube:
		return IntersectCube(ray, target.Position, target.Size)
	case mesh.ShapeTriangle:
		return IntersectBipyramid(ray, target.Position, target.Size)
	default:
		if src == nil {
			src = defaultMeshes{}
		}
		return IntersectMesh(ray, src.For(target.Shape), target.Position, target.Size)
	}
}

// IntersectSphere reports whether the ray's line meets the sphere.
//
// Only the discriminant is checked, so a sphere entirely behind the ray
// origin also counts as a hit. The cube and triangle tests do require the
// hit to be in front; this asymmetry is kept on purpose.
func IntersectSphere(ray Ray, center math.Vec3, radius float32) bool {
	oc := ray.Origin.Sub(center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - 4*a*c
	return discriminant >= 0
}

// IntersectCube tests the ray against a cube of half-extent size centered
// at center, using the slab test in the cube's local unit space.
func IntersectCube(ray Ray, center math.Vec3, size float32) bool {
	local := ray.toLocal(center, size*boxScale)
	return local.IntersectAABB(unitBox)
}

// IntersectBipyramid tests the ray against the six triangles of the
// pyramid shape scaled like the cube.
func IntersectBipyramid(ray Ray, center math.Vec3, size float32) bool {
	local := ray.toLocal(center, size*boxScale)
	local.Direction = local.Direction.Normalize()
	return intersectTriangles(local, bipyramid)
}

// IntersectMesh tests the ray against every triangle of m, with the mesh
// placed at center and uniformly scaled by scale. Cost is linear in the
// triangle count.
func IntersectMesh(ray Ray, m *mesh.Mesh, center math.Vec3, scale float32) bool {
	if m == nil {
		return false
	}
	local := ray.toLocal(center, scale)
	local.Direction = local.Direction.Normalize()
	return intersectTriangles(local, m)
}

func intersectTriangles(local Ray, m *mesh.Mesh) bool {
	for t := 0; t < m.TriangleCount(); t++ {
		v0, v1, v2 := m.Triangle(t)
		if IntersectTriangle(local.Origin, local.Direction, v0, v1, v2) {
			return true
		}
	}
	return false
}

// bipyramid shares its geometry with the rendered pyramid mesh.
var bipyramid = mesh.Bipyramid()

// IntersectTriangle is the Möller–Trumbore ray/triangle test. It rejects
// rays parallel to the triangle plane and hits behind the origin.
func IntersectTriangle(origin, dir, v0, v1, v2 math.Vec3) bool {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	h := dir.Cross(edge2)

	a := edge1.Dot(h)
	if math32.Abs(a) < Epsilon {
		return false // Ray parallel to triangle
	}

	f := 1 / a
	s := origin.Sub(v0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return false
	}

	q := s.Cross(edge1)
	v := f * dir.Dot(q)
	if v < 0 || u+v > 1 {
		return false
	}

	t := f * edge2.Dot(q)
	return t > Epsilon
}

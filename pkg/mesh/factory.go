package mesh

import "sync"

// Factory builds each shape's mesh on first use and hands out the same
// *Mesh afterwards. Callers must treat returned meshes as read-only.
type Factory struct {
	subdivisions int

	once   [3]sync.Once
	meshes [3]*Mesh
}

// NewFactory creates a factory whose spheres use the given subdivision count.
func NewFactory(subdivisions int) *Factory {
	if subdivisions < 1 {
		subdivisions = DefaultSubdivisions
	}
	return &Factory{subdivisions: subdivisions}
}

// Subdivisions returns the sphere grid resolution.
func (f *Factory) Subdivisions() int {
	return f.subdivisions
}

// For returns the shared mesh for kind. Unknown kinds get the sphere.
func (f *Factory) For(kind ShapeKind) *Mesh {
	if !kind.Known() {
		kind = ShapeSphere
	}
	f.once[kind].Do(func() {
		f.meshes[kind] = f.build(kind)
	})
	return f.meshes[kind]
}

func (f *Factory) build(kind ShapeKind) *Mesh {
	switch kind {
	case ShapeCube:
		return Cube()
	case ShapeTriangle:
		return Bipyramid()
	default:
		return Sphere(f.subdivisions)
	}
}

var defaultFactory = NewFactory(DefaultSubdivisions)

// For returns the shared mesh for kind from the default factory.
func For(kind ShapeKind) *Mesh {
	return defaultFactory.For(kind)
}

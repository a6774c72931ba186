// Package mesh builds the static triangle meshes used for every body shape.
//
// Meshes are generated once per shape kind and shared read-only by all
// bodies of that shape. Vertices are interleaved position (xyz) and
// texture coordinate (uv); indices form a triangle list.
package mesh

import "github.com/Faultbox/orbitforge/pkg/math"

// Stride values for interleaved vertex data.
const (
	StridePosition   = 3
	StridePositionUV = 5
)

// Mesh is an immutable indexed triangle list with its bounding box.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
	Stride   int // floats per vertex
	Min      math.Vec3
	Max      math.Vec3
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	if m.Stride == 0 {
		return 0
	}
	return len(m.Vertices) / m.Stride
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i uint32) math.Vec3 {
	base := int(i) * m.Stride
	return math.Vec3{X: m.Vertices[base], Y: m.Vertices[base+1], Z: m.Vertices[base+2]}
}

// UV returns the texture coordinate of vertex i, or zero when the mesh has none.
func (m *Mesh) UV(i uint32) math.Vec2 {
	if m.Stride < StridePositionUV {
		return math.Vec2{}
	}
	base := int(i) * m.Stride
	return math.Vec2{X: m.Vertices[base+3], Y: m.Vertices[base+4]}
}

// Triangle returns the corner positions of triangle t.
func (m *Mesh) Triangle(t int) (v0, v1, v2 math.Vec3) {
	i := t * 3
	return m.Position(m.Indices[i]), m.Position(m.Indices[i+1]), m.Position(m.Indices[i+2])
}

// unitMin and unitMax bound every built-in shape.
var (
	unitMin = math.Vec3{X: -0.5, Y: -0.5, Z: -0.5}
	unitMax = math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
)

package mesh

import "github.com/Faultbox/orbitforge/pkg/math"

// DefaultSubdivisions is the grid resolution of each sphere face.
const DefaultSubdivisions = 12

// sphereRadius keeps the sphere inside the same unit box as the other shapes.
const sphereRadius = 0.5

type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

var cubeCorners = [8]math.Vec3{
	{X: -0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: 0.5, Z: 0.5},
	{X: -0.5, Y: 0.5, Z: 0.5},
}

// cubeFace lists the corners in grid order: v0 -> v1 is +x, v0 -> v3 is +y.
type cubeFace struct {
	corners [4]int
	primary axis
}

var cubeFaces = [6]cubeFace{
	{corners: [4]int{0, 1, 2, 3}, primary: axisZ},
	{corners: [4]int{5, 4, 7, 6}, primary: axisZ},
	{corners: [4]int{4, 0, 3, 7}, primary: axisX},
	{corners: [4]int{1, 5, 6, 2}, primary: axisX},
	{corners: [4]int{3, 2, 6, 7}, primary: axisY},
	{corners: [4]int{4, 5, 1, 0}, primary: axisY},
}

// Sphere builds a spherified cube: each cube face is split into an n x n
// grid, every grid point is bilinearly interpolated from the face corners
// and pushed out onto a sphere of radius 0.5.
//
// The result has 6*(n+1)^2 vertices and 6*n*n*2 triangles. n < 1 is treated as 1.
func Sphere(n int) *Mesh {
	if n < 1 {
		n = 1
	}
	side := n + 1
	verticesPerFace := side * side

	vertices := make([]float32, 0, 6*verticesPerFace*StridePositionUV)
	indices := make([]uint32, 0, 6*n*n*6)

	for _, face := range cubeFaces {
		v0 := cubeCorners[face.corners[0]]
		v1 := cubeCorners[face.corners[1]]
		v2 := cubeCorners[face.corners[2]]
		v3 := cubeCorners[face.corners[3]]

		for y := 0; y <= n; y++ {
			fy := float32(y) / float32(n)
			a := v0.Lerp(v3, fy)
			b := v1.Lerp(v2, fy)

			for x := 0; x <= n; x++ {
				fx := float32(x) / float32(n)
				local := a.Lerp(b, fx)
				p := local.Normalize().Scale(sphereRadius)
				u, v := faceUV(local, face.primary)
				vertices = append(vertices, p.X, p.Y, p.Z, u, v)
			}
		}
	}

	for face := 0; face < 6; face++ {
		base := face * verticesPerFace
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				v0 := uint32(base + y*side + x)
				v1 := v0 + 1
				v2 := uint32(base + (y+1)*side + x)
				v3 := v2 + 1

				indices = append(indices,
					v0, v2, v1,
					v1, v2, v3,
				)
			}
		}
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Stride:   StridePositionUV,
		Min:      unitMin,
		Max:      unitMax,
	}
}

// faceUV projects the face-local point onto the two axes orthogonal to the
// face's primary axis.
func faceUV(p math.Vec3, primary axis) (u, v float32) {
	switch primary {
	case axisZ:
		u, v = p.X+0.5, p.Y+0.5
	case axisX:
		u, v = p.Z+0.5, p.Y+0.5
	default:
		u, v = p.X+0.5, p.Z+0.5
	}
	return math.Clamp(u, 0, 1), math.Clamp(v, 0, 1)
}

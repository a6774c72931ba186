package mesh

// Bipyramid returns the square-based pyramid shape: four base corners, one
// apex, four side faces fanning from the apex and two base triangles.
func Bipyramid() *Mesh {
	return &Mesh{
		Vertices: []float32{
			-0.5, -0.5, -0.5, 0.0, 0.0,
			0.5, -0.5, -0.5, 1.0, 0.0,
			0.5, -0.5, 0.5, 1.0, 1.0,
			-0.5, -0.5, 0.5, 0.0, 1.0,
			0.0, 0.5, 0.0, 0.5, 0.5,
		},
		Indices: []uint32{
			4, 0, 1,
			4, 1, 2,
			4, 2, 3,
			4, 3, 0,
			0, 1, 2,
			0, 2, 3,
		},
		Stride: StridePositionUV,
		Min:    unitMin,
		Max:    unitMax,
	}
}

// Cube returns a unit cube with 4 independently UV-mapped vertices per face.
func Cube() *Mesh {
	return &Mesh{
		Vertices: []float32{
			// +Z
			-0.5, -0.5, 0.5, 0.0, 0.0,
			0.5, -0.5, 0.5, 1.0, 0.0,
			0.5, 0.5, 0.5, 1.0, 1.0,
			-0.5, 0.5, 0.5, 0.0, 1.0,
			// -Z
			0.5, -0.5, -0.5, 0.0, 0.0,
			-0.5, -0.5, -0.5, 1.0, 0.0,
			-0.5, 0.5, -0.5, 1.0, 1.0,
			0.5, 0.5, -0.5, 0.0, 1.0,
			// +Y
			-0.5, 0.5, 0.5, 0.0, 0.0,
			0.5, 0.5, 0.5, 1.0, 0.0,
			0.5, 0.5, -0.5, 1.0, 1.0,
			-0.5, 0.5, -0.5, 0.0, 1.0,
			// -Y
			-0.5, -0.5, -0.5, 0.0, 0.0,
			0.5, -0.5, -0.5, 1.0, 0.0,
			0.5, -0.5, 0.5, 1.0, 1.0,
			-0.5, -0.5, 0.5, 0.0, 1.0,
			// +X
			0.5, -0.5, 0.5, 0.0, 0.0,
			0.5, -0.5, -0.5, 1.0, 0.0,
			0.5, 0.5, -0.5, 1.0, 1.0,
			0.5, 0.5, 0.5, 0.0, 1.0,
			// -X
			-0.5, -0.5, -0.5, 0.0, 0.0,
			-0.5, -0.5, 0.5, 1.0, 0.0,
			-0.5, 0.5, 0.5, 1.0, 1.0,
			-0.5, 0.5, -0.5, 0.0, 1.0,
		},
		Indices: []uint32{
			0, 1, 2, 0, 2, 3,
			4, 5, 6, 4, 6, 7,
			8, 9, 10, 8, 10, 11,
			12, 13, 14, 12, 14, 15,
			16, 17, 18, 16, 18, 19,
			20, 21, 22, 20, 22, 23,
		},
		Stride: StridePositionUV,
		Min:    unitMin,
		Max:    unitMax,
	}
}

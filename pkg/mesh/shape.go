package mesh

import "strings"

// ShapeKind selects both the mesh and the intersection test of a body.
type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapeCube
	ShapeTriangle // square-based bipyramid, stored in presets as "TRIANGLE"
)

// String returns the preset name of the shape.
func (k ShapeKind) String() string {
	switch k {
	case ShapeSphere:
		return "SPHERE"
	case ShapeCube:
		return "CUBE"
	case ShapeTriangle:
		return "TRIANGLE"
	default:
		return "UNKNOWN"
	}
}

// Known reports whether k is one of the built-in shapes.
func (k ShapeKind) Known() bool {
	return k >= ShapeSphere && k <= ShapeTriangle
}

// ParseShape maps a preset shape name to a ShapeKind.
// Unrecognized names fall back to ShapeSphere.
func ParseShape(name string) ShapeKind {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "CUBE":
		return ShapeCube
	case "TRIANGLE":
		return ShapeTriangle
	default:
		return ShapeSphere
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ShapeKind) MarshalText() ([]byte, error) {
	if !k.Known() {
		k = ShapeSphere
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ShapeKind) UnmarshalText(text []byte) error {
	*k = ParseShape(string(text))
	return nil
}

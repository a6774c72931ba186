// Package preset holds the body and preset data model shared by the scene,
// the CLI tool and the on-disk preset files.
package preset

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Faultbox/orbitforge/pkg/math"
	"github.com/Faultbox/orbitforge/pkg/mesh"
)

// Orbit slots. Position 0 is the center body; the rest orbit it.
const (
	CenterPosition = 0
	MaxPositions   = 15
)

// Field defaults applied when a preset omits them.
const (
	DefaultColor = "#808080"
	DefaultSize  = 1.0
)

// RotationAxis is the axis a body spins around.
type RotationAxis int

const (
	AxisX RotationAxis = iota
	AxisY
	AxisZ
)

func (a RotationAxis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisZ:
		return "Z"
	default:
		return "Y"
	}
}

// ParseAxis maps "X", "Y" or "Z" to an axis. Anything else is Y.
func ParseAxis(s string) RotationAxis {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return AxisX
	case "Z":
		return AxisZ
	default:
		return AxisY
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a RotationAxis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *RotationAxis) UnmarshalText(text []byte) error {
	*a = ParseAxis(string(text))
	return nil
}

// Angles is a per-axis angle triple in degrees.
type Angles struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Vec returns the angles as a vector.
func (a Angles) Vec() math.Vec3 {
	return math.Vec3{X: a.X, Y: a.Y, Z: a.Z}
}

// Axis returns the component for axis.
func (a Angles) Axis(axis RotationAxis) float32 {
	switch axis {
	case AxisX:
		return a.X
	case AxisZ:
		return a.Z
	default:
		return a.Y
	}
}

// SetAxis sets the component for axis.
func (a *Angles) SetAxis(axis RotationAxis, v float32) {
	switch axis {
	case AxisX:
		a.X = v
	case AxisZ:
		a.Z = v
	default:
		a.Y = v
	}
}

// Body is one placed body of a scene: its orbit slot plus everything needed
// to draw and animate it.
type Body struct {
	ID                  int            `json:"id"`
	Name                string         `json:"name"`
	Shape               mesh.ShapeKind `json:"shape"`
	Size                float32        `json:"size"`
	Texture             string         `json:"texture,omitempty"`
	Color               string         `json:"color"`
	Position            int            `json:"position"`
	RotationDir         RotationAxis   `json:"rotationDir"`
	RotationSpeedItself float32        `json:"rotationSpeedItself"`
	RotationSpeedCenter float32        `json:"rotationSpeedCenter"`
	DistanceFromCenter  float32        `json:"distanceFromCenter"`
	CurrentRotation     Angles         `json:"currentRotation"`
	OrbitAngle          Angles         `json:"orbitAngle"`
}

// NewBody returns a body with the field defaults filled in.
func NewBody() Body {
	return Body{
		Shape:       mesh.ShapeSphere,
		Size:        DefaultSize,
		Color:       DefaultColor,
		RotationDir: AxisY,
	}
}

// IsCenter reports whether the body occupies the center slot.
func (b Body) IsCenter() bool {
	return b.Position == CenterPosition
}

// UnmarshalJSON decodes a body, leaving omitted fields at their defaults.
func (b *Body) UnmarshalJSON(data []byte) error {
	type plain Body
	decoded := plain(NewBody())
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if decoded.Color == "" {
		decoded.Color = DefaultColor
	}
	*b = Body(decoded)
	return nil
}

func (b Body) String() string {
	return fmt.Sprintf("%s#%d(%s, slot %d)", b.Name, b.ID, b.Shape, b.Position)
}

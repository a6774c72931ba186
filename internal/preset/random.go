package preset

import (
	"fmt"
	"math/rand/v2"

	"github.com/Faultbox/orbitforge/pkg/math"
	"github.com/Faultbox/orbitforge/pkg/mesh"
)

// Ranges the body generator draws from.
const (
	minRandomSize = 0.1
	maxRandomSize = 0.5
	maxSelfSpeed  = 1.0
	minOrbitSpeed = 0.001
	maxOrbitSpeed = 0.02
)

// RandomBody returns a generated body with the given id. Its position is
// left for the slot allocator to decide.
func RandomBody(r *rand.Rand, id int) Body {
	b := NewBody()
	b.ID = id
	b.Name = fmt.Sprintf("Body %d", id)
	b.Shape = mesh.ShapeKind(r.IntN(3))
	b.Size = between(r, minRandomSize, maxRandomSize)
	b.Color = RGBToHex(math.Vec3{X: r.Float32(), Y: r.Float32(), Z: r.Float32()})
	b.RotationDir = RotationAxis(r.IntN(3))
	b.RotationSpeedItself = between(r, 0, maxSelfSpeed)
	b.RotationSpeedCenter = between(r, minOrbitSpeed, maxOrbitSpeed)
	b.OrbitAngle.Y = between(r, 0, 360)
	return b
}

func between(r *rand.Rand, lo, hi float32) float32 {
	return lo + r.Float32()*(hi-lo)
}

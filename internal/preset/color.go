package preset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/orbitforge/pkg/math"
)

var fallbackRGB = math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}

// HexToRGB converts "#rgb", "#rrggbb" or "#rrggbbaa" (alpha dropped) to
// normalized RGB. Malformed input yields mid gray.
func HexToRGB(hex string) math.Vec3 {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 8:
		s = s[:6]
	}
	if len(s) != 6 {
		return fallbackRGB
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallbackRGB
	}
	return math.Vec3{
		X: float32(v>>16&0xff) / 255,
		Y: float32(v>>8&0xff) / 255,
		Z: float32(v&0xff) / 255,
	}
}

// RGBToHex converts normalized RGB, clamped to [0,1], to "#rrggbb".
func RGBToHex(c math.Vec3) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.X), channel(c.Y), channel(c.Z))
}

func channel(v float32) int {
	return int(math.Clamp(v, 0, 1)*255 + 0.5)
}

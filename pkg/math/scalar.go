package math

import (
	gomath "math"

	"github.com/chewxy/math32"
)

const degToRad = gomath.Pi / 180

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * degToRad
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// WrapDegrees keeps an angle inside (-360, 360) the way fmod does.
func WrapDegrees(deg float32) float32 {
	return math32.Mod(deg, 360)
}

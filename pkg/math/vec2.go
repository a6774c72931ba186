package math

// Vec2 is a pointer position in window coordinates.
type Vec2 struct {
	X, Y float32
}

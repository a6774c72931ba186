package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformPoint(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := TranslateScale(Vec3{10, 20, 30}, 2)
	got := m.TransformDirection(Vec3{1, 0, -1})

	want := Vec3{2, 0, -2}
	if got != want {
		t.Errorf("TransformDirection: got %v, want %v", got, want)
	}
}

func TestTranslateScaleRoundTrip(t *testing.T) {
	model := TranslateScale(Vec3{3, -1, 2}, 0.5)
	inv := model.Inverse()

	p := Vec3{0.25, -0.5, 0.125}
	back := inv.TransformPoint(model.TransformPoint(p))
	if !vecNear(back, p, 1e-5) {
		t.Errorf("inverse(model) * model * p = %v, want %v", back, p)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(Radians(45), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

// The remaining tests cross-check against mathgl, which follows the same
// right-handed, column-major conventions as GLM.

func TestPerspectiveMatchesMathgl(t *testing.T) {
	got := Perspective(Radians(45), 800.0/600.0, 0.1, 100)
	want := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100)
	assertMatNear(t, got, Mat4(want), 1e-5)
}

func TestLookAtMatchesMathgl(t *testing.T) {
	tests := []struct {
		name            string
		eye, center, up Vec3
	}{
		{"down -z", Vec3{0, 0, 5}, Vec3{0, 0, 0}, Vec3{0, 1, 0}},
		{"oblique", Vec3{3, 4, -2}, Vec3{1, 0, 1}, Vec3{0, 1, 0}},
		{"offset target", Vec3{-6, 2, 8}, Vec3{2, -1, 0}, Vec3{0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LookAt(tt.eye, tt.center, tt.up)
			want := mgl32.LookAtV(
				mgl32.Vec3{tt.eye.X, tt.eye.Y, tt.eye.Z},
				mgl32.Vec3{tt.center.X, tt.center.Y, tt.center.Z},
				mgl32.Vec3{tt.up.X, tt.up.Y, tt.up.Z},
			)
			assertMatNear(t, got, Mat4(want), 1e-5)
		})
	}
}

func TestInverseMatchesMathgl(t *testing.T) {
	mats := map[string]Mat4{
		"view":       LookAt(Vec3{3, 4, -2}, Vec3{1, 0, 1}, Vec3{0, 1, 0}),
		"projection": Perspective(Radians(60), 1.5, 0.1, 100),
		"model":      TranslateScale(Vec3{-4, 2, 7}, 3),
	}
	for name, m := range mats {
		t.Run(name, func(t *testing.T) {
			want := mgl32.Mat4(m).Inv()
			assertMatNear(t, m.Inverse(), Mat4(want), 1e-4)
		})
	}
}

func TestInverseSingularReturnsIdentity(t *testing.T) {
	if got := Scale(0, 1, 1).Inverse(); got != Identity() {
		t.Errorf("singular inverse: got %v, want identity", got)
	}
}

func assertMatNear(t *testing.T, got, want Mat4, eps float32) {
	t.Helper()
	for i := range got {
		if abs(got[i]-want[i]) > eps {
			t.Errorf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func vecNear(a, b Vec3, eps float32) bool {
	return abs(a.X-b.X) <= eps && abs(a.Y-b.Y) <= eps && abs(a.Z-b.Z) <= eps
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

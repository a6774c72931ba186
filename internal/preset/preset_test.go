package preset

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/orbitforge/pkg/mesh"
)

func TestDefault(t *testing.T) {
	p := Default()
	if !p.IsDefault {
		t.Error("default preset should be flagged as default")
	}
	if len(p.Planets) == 0 {
		t.Fatal("default preset has no bodies")
	}
	if err := Validate(p); err != nil {
		t.Errorf("Validate(Default()) = %v", err)
	}

	// Each call hands out an independent copy.
	p.Planets[0].Name = "changed"
	if Default().Planets[0].Name == "changed" {
		t.Error("Default() shares state between calls")
	}
}

func TestParseDefaults(t *testing.T) {
	data := []byte(`{"planets":[{"id":1,"name":"core","position":0}]}`)
	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	b := p.Planets[0]
	if b.Shape != mesh.ShapeSphere {
		t.Errorf("Shape = %v, want SPHERE", b.Shape)
	}
	if b.Size != DefaultSize {
		t.Errorf("Size = %v, want %v", b.Size, DefaultSize)
	}
	if b.Color != DefaultColor {
		t.Errorf("Color = %q, want %q", b.Color, DefaultColor)
	}
	if b.RotationDir != AxisY {
		t.Errorf("RotationDir = %v, want Y", b.RotationDir)
	}
}

func TestParseFields(t *testing.T) {
	data := []byte(`{
		"name": "test",
		"description": "two bodies",
		"planets": [
			{"id": 1, "name": "a", "shape": "CUBE", "position": 0, "rotationDir": "X"},
			{"id": 2, "name": "b", "shape": "triangle", "size": 0.5, "color": "#fff",
			 "position": 4, "rotationDir": "W", "rotationSpeedItself": 1.5,
			 "rotationSpeedCenter": 0.1, "distanceFromCenter": 2.5,
			 "currentRotation": {"x": 1, "y": 2, "z": 3},
			 "orbitAngle": {"y": 45}}
		]
	}`)
	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.Name != "test" || p.Description != "two bodies" {
		t.Errorf("header = %q/%q", p.Name, p.Description)
	}

	a, b := p.Planets[0], p.Planets[1]
	if a.Shape != mesh.ShapeCube || a.RotationDir != AxisX {
		t.Errorf("a = %+v", a)
	}
	if b.Shape != mesh.ShapeTriangle {
		t.Errorf("b.Shape = %v, want TRIANGLE", b.Shape)
	}
	if b.RotationDir != AxisY {
		t.Errorf("unknown axis should fall back to Y, got %v", b.RotationDir)
	}
	if b.Size != 0.5 || b.DistanceFromCenter != 2.5 || b.RotationSpeedItself != 1.5 {
		t.Errorf("b numeric fields = %+v", b)
	}
	if b.CurrentRotation != (Angles{X: 1, Y: 2, Z: 3}) {
		t.Errorf("CurrentRotation = %+v", b.CurrentRotation)
	}
	if b.OrbitAngle.Y != 45 {
		t.Errorf("OrbitAngle.Y = %v, want 45", b.OrbitAngle.Y)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"missing planets", `{"name":"x"}`, ErrMissingPlanets},
		{"empty planets", `{"planets":[]}`, ErrEmpty},
		{"no center", `{"planets":[{"position":2}]}`, ErrNoCenter},
		{"two centers", `{"planets":[{"position":0},{"position":0}]}`, ErrMultipleCenters},
		{"duplicate", `{"planets":[{"position":0},{"position":3},{"position":3}]}`, ErrDuplicatePosition},
		{"negative", `{"planets":[{"position":0},{"position":-1}]}`, ErrPositionRange},
		{"too far", `{"planets":[{"position":0},{"position":15}]}`, ErrPositionRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Parse([]byte(`{not json`)); err == nil {
		t.Error("Parse() accepted malformed JSON")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets", "mine.json")

	orig := Default()
	orig.Name = "mine"
	orig.IsDefault = false
	if err := orig.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Name != "mine" || loaded.IsDefault {
		t.Errorf("loaded header = %q default=%v", loaded.Name, loaded.IsDefault)
	}
	if len(loaded.Planets) != len(orig.Planets) {
		t.Fatalf("loaded %d bodies, want %d", len(loaded.Planets), len(orig.Planets))
	}
	for i := range orig.Planets {
		if loaded.Planets[i] != orig.Planets[i] {
			t.Errorf("body %d = %+v, want %+v", i, loaded.Planets[i], orig.Planets[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load() of missing file succeeded")
	}
}

func TestClone(t *testing.T) {
	p := Default()
	c := p.Clone()
	c.Planets[0].Size = 42
	c.Planets = append(c.Planets, NewBody())

	if p.Planets[0].Size == 42 {
		t.Error("Clone shares body storage")
	}
	if len(p.Planets) == len(c.Planets) {
		t.Error("Clone shares slice header")
	}
}

func TestParseAxis(t *testing.T) {
	tests := map[string]RotationAxis{
		"X": AxisX, "y": AxisY, " z ": AxisZ, "": AxisY, "Q": AxisY,
	}
	for in, want := range tests {
		if got := ParseAxis(in); got != want {
			t.Errorf("ParseAxis(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestAnglesAxis(t *testing.T) {
	var a Angles
	a.SetAxis(AxisX, 1)
	a.SetAxis(AxisY, 2)
	a.SetAxis(AxisZ, 3)
	if a.Axis(AxisX) != 1 || a.Axis(AxisY) != 2 || a.Axis(AxisZ) != 3 {
		t.Errorf("Angles = %+v", a)
	}
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b float32
	}{
		{"#ff0000", 1, 0, 0},
		{"00ff00", 0, 1, 0},
		{"#00f", 0, 0, 1},
		{"#ffffff80", 1, 1, 1},
		{"", 0.5, 0.5, 0.5},
		{"#12", 0.5, 0.5, 0.5},
		{"#zzzzzz", 0.5, 0.5, 0.5},
	}
	for _, tt := range tests {
		got := HexToRGB(tt.in)
		if got.X != tt.r || got.Y != tt.g || got.Z != tt.b {
			t.Errorf("HexToRGB(%q) = %v, want (%v, %v, %v)", tt.in, got, tt.r, tt.g, tt.b)
		}
	}
}

func TestRGBToHex(t *testing.T) {
	if got := RGBToHex(HexToRGB("#3a7bd5")); got != "#3a7bd5" {
		t.Errorf("round trip = %q", got)
	}
	if got := RGBToHex(HexToRGB("#808080")); got != "#808080" {
		t.Errorf("gray round trip = %q", got)
	}
}

func TestRandomBody(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for id := 1; id <= 50; id++ {
		b := RandomBody(r, id)
		if b.ID != id {
			t.Errorf("ID = %d, want %d", b.ID, id)
		}
		if !b.Shape.Known() {
			t.Errorf("unknown shape %v", b.Shape)
		}
		if b.Size < minRandomSize || b.Size > maxRandomSize {
			t.Errorf("Size = %v out of range", b.Size)
		}
		if b.RotationSpeedCenter < minOrbitSpeed || b.RotationSpeedCenter > maxOrbitSpeed {
			t.Errorf("RotationSpeedCenter = %v out of range", b.RotationSpeedCenter)
		}
		if len(b.Color) != 7 || b.Color[0] != '#' {
			t.Errorf("Color = %q", b.Color)
		}
	}
}

package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/orbitforge/internal/config"
	"github.com/Faultbox/orbitforge/internal/preset"
)

func TestFromConfigDefaults(t *testing.T) {
	cfg := config.Default()
	c, err := FromConfig(cfg, Hooks{})
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}
	if c.Len() != len(preset.Default().Planets) {
		t.Errorf("Len() = %d, want the built-in preset", c.Len())
	}
	if c.Camera().FOV() != cfg.Camera.FOV {
		t.Errorf("camera fov = %v, want %v", c.Camera().FOV(), cfg.Camera.FOV)
	}
}

func TestFromConfigFiles(t *testing.T) {
	dir := t.TempDir()
	distances := filepath.Join(dir, "positions.json")
	if err := os.WriteFile(distances, []byte(`{"distances":[{"index":1,"distance":"3.5f"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	presetPath := filepath.Join(dir, "p.json")
	p := &preset.Preset{Name: "file", Planets: []preset.Body{preset.NewBody()}}
	if err := p.Save(presetPath); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Scene.DistancesPath = distances
	cfg.Scene.PresetPath = presetPath
	cfg.Camera.FOV = 30

	c, err := FromConfig(cfg, Hooks{})
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}
	if c.Preset().Name != "file" || c.Len() != 1 {
		t.Errorf("loaded %q with %d bodies", c.Preset().Name, c.Len())
	}
	if c.Camera().FOV() != 30 {
		t.Errorf("camera fov = %v, want 30", c.Camera().FOV())
	}

	idx, err := c.Generate(preset.NewBody())
	if err != nil {
		t.Fatal(err)
	}
	if b, _ := c.Body(idx); b.DistanceFromCenter != 3.5 {
		t.Errorf("distance = %v, want 3.5 from the distance file", b.DistanceFromCenter)
	}
}

func TestFromConfigMissingPresetFallsBack(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.PresetPath = filepath.Join(t.TempDir(), "later.json")

	c, err := FromConfig(cfg, Hooks{})
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}
	if c.Len() == 0 {
		t.Error("no bodies loaded")
	}
}

func TestFromConfigBadFiles(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Scene.PresetPath = bad
	if _, err := FromConfig(cfg, Hooks{}); err == nil {
		t.Error("malformed preset accepted")
	}

	cfg = config.Default()
	cfg.Scene.DistancesPath = bad
	if _, err := FromConfig(cfg, Hooks{}); err == nil {
		t.Error("malformed distance file accepted")
	}
}

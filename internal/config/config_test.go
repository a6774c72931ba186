package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Viewport.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Viewport.Width)
	}
	if cfg.Viewport.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Viewport.Height)
	}
	if cfg.Viewport.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Viewport.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Camera.FOV != 45 {
		t.Errorf("expected fov 45, got %v", cfg.Camera.FOV)
	}
	if cfg.Camera.Near != 0.1 || cfg.Camera.Far != 100 {
		t.Errorf("expected clip range 0.1..100, got %v..%v", cfg.Camera.Near, cfg.Camera.Far)
	}

	if cfg.Scene.Subdivisions != 12 {
		t.Errorf("expected 12 subdivisions, got %d", cfg.Scene.Subdivisions)
	}
	if cfg.Scene.PresetPath != "" {
		t.Errorf("expected built-in preset, got %s", cfg.Scene.PresetPath)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
viewport:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

camera:
  fov: 60
  zoom_speed: 0.5

scene:
  subdivisions: 24
  preset_path: "presets/mine.json"
  distances_path: "positions.json"
  time_scale: 0.5

logging:
  level: "debug"
  log_file: "orbits.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Viewport.Width != 1920 || cfg.Viewport.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Viewport.Width, cfg.Viewport.Height)
	}
	if !cfg.Viewport.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Viewport.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Camera.FOV != 60 || cfg.Camera.ZoomSpeed != 0.5 {
		t.Errorf("camera = %+v", cfg.Camera)
	}
	// Untouched keys keep their defaults
	if cfg.Camera.Far != 100 {
		t.Errorf("expected far plane default 100, got %v", cfg.Camera.Far)
	}
	if cfg.Scene.Subdivisions != 24 {
		t.Errorf("expected 24 subdivisions, got %d", cfg.Scene.Subdivisions)
	}
	if cfg.Scene.PresetPath != "presets/mine.json" || cfg.Scene.DistancesPath != "positions.json" {
		t.Errorf("scene paths = %+v", cfg.Scene)
	}
	if cfg.Scene.TimeScale != 0.5 {
		t.Errorf("expected time scale 0.5, got %v", cfg.Scene.TimeScale)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "orbits.log" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
viewport:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "orbits.yaml")
	if err := os.WriteFile(configPath, []byte("viewport:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find orbits.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(*testing.T, *Config)
	}{
		{
			name: "debug flag",
			args: []string{"-debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "preset and distances",
			args: []string{"-preset", "a.json", "-distances", "d.json"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.PresetPath != "a.json" || cfg.Scene.DistancesPath != "d.json" {
					t.Errorf("scene = %+v", cfg.Scene)
				}
			},
		},
		{
			name: "width and height flags",
			args: []string{"-width", "2560", "-height", "1440"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Viewport.Width != 2560 || cfg.Viewport.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Viewport.Width, cfg.Viewport.Height)
				}
			},
		},
		{
			name: "fullscreen flag",
			args: []string{"-fullscreen"},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Viewport.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
		},
		{
			name: "subdivisions and fov",
			args: []string{"-subdivisions", "4", "-fov", "30"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Subdivisions != 4 {
					t.Errorf("expected 4 subdivisions, got %d", cfg.Scene.Subdivisions)
				}
				if cfg.Camera.FOV != 30 {
					t.Errorf("expected fov 30, got %v", cfg.Camera.FOV)
				}
			},
		},
		{
			name: "no flags",
			args: nil,
			verify: func(t *testing.T, cfg *Config) {
				if *cfg != *Default() {
					t.Errorf("expected defaults, got %+v", cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet(tt.name, flag.ContinueOnError)
			f := BindFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("parse flags: %v", err)
			}

			cfg := Default()
			f.apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
viewport:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	f := &Flags{Config: configPath, Width: 1920}
	cfg, err := LoadWith(f)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from the flag, height from the file
	if cfg.Viewport.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Viewport.Width)
	}
	if cfg.Viewport.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Viewport.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  subdivisions: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadWith(&Flags{Config: configPath})
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Viewport.Width = 0 }},
		{"fov too wide", func(c *Config) { c.Camera.FOV = 120 }},
		{"fov too narrow", func(c *Config) { c.Camera.FOV = 0.5 }},
		{"far before near", func(c *Config) { c.Camera.Far = 0.05 }},
		{"no subdivisions", func(c *Config) { c.Scene.Subdivisions = 0 }},
		{"negative time", func(c *Config) { c.Scene.TimeScale = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.Subdivisions = 7
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("reloaded config = %+v, want %+v", loaded, cfg)
	}
}

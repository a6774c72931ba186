package config

import "flag"

// Flags holds the command-line overrides. Zero values mean "not set".
type Flags struct {
	Config       string
	Debug        bool
	Preset       string
	Distances    string
	Width        int
	Height       int
	Fullscreen   bool
	Subdivisions int
	FOV          float64
}

// BindFlags registers the config flags on fs.
func BindFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Preset, "preset", "", "Preset file to load")
	fs.StringVar(&f.Distances, "distances", "", "Orbit distance file")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.IntVar(&f.Subdivisions, "subdivisions", 0, "Sphere subdivisions per cube face")
	fs.Float64Var(&f.FOV, "fov", 0, "Vertical field of view in degrees")
	return f
}

var cliFlags = BindFlags(flag.CommandLine)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return cliFlags.Config
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Preset != "" {
		cfg.Scene.PresetPath = f.Preset
	}
	if f.Distances != "" {
		cfg.Scene.DistancesPath = f.Distances
	}
	if f.Width > 0 {
		cfg.Viewport.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Viewport.Height = f.Height
	}
	if f.Fullscreen {
		cfg.Viewport.Fullscreen = true
	}
	if f.Subdivisions > 0 {
		cfg.Scene.Subdivisions = f.Subdivisions
	}
	if f.FOV > 0 {
		cfg.Camera.FOV = float32(f.FOV)
	}
}

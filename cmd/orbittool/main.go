// orbittool is a CLI utility for inspecting meshes, presets and picking
// without opening a window.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/Faultbox/orbitforge/internal/config"
	"github.com/Faultbox/orbitforge/internal/logger"
	"github.com/Faultbox/orbitforge/internal/orbit"
	"github.com/Faultbox/orbitforge/internal/preset"
	"github.com/Faultbox/orbitforge/internal/scene"
	"github.com/Faultbox/orbitforge/pkg/math"
	"github.com/Faultbox/orbitforge/pkg/mesh"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "mesh":
		cmdMesh(args)
	case "pick":
		cmdPick(args)
	case "place":
		cmdPlace(args)
	case "validate", "check":
		cmdValidate(args)
	case "advance":
		cmdAdvance(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`orbittool - orbit scene utility

Usage:
  orbittool <command> [options]

Commands:
  mesh <shape> [-n N]                    Show mesh statistics (SPHERE, CUBE, TRIANGLE)
  pick -x X -y Y [-preset file]          Report the body under a pointer position
  place [-shape S -size F -name N] [-o out]
                                         Place a body and print the slot it got
  validate <preset.json>                 Check a preset file
  advance [-dt S -steps N]               Step the orbits and print body positions

pick, place and advance also accept the viewer flags
(-config -preset -distances -width -height -subdivisions -fov -debug).

Examples:
  orbittool mesh SPHERE -n 4
  orbittool pick -x 640 -y 360
  orbittool place -shape CUBE -size 0.3 -preset mine.json -o mine.json
  orbittool advance -dt 0.016 -steps 60`)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadScene parses the shared viewer flags and builds a scene from them.
func loadScene(fs *flag.FlagSet, flags *config.Flags, args []string) (*config.Config, *scene.Controller) {
	fs.Parse(args)

	cfg, err := config.LoadWith(flags)
	if err != nil {
		fail("%v", err)
	}

	level := "warn"
	if flags.Debug {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fail("%v", err)
	}

	sc, err := scene.FromConfig(cfg, scene.Hooks{})
	if err != nil {
		fail("%v", err)
	}
	return cfg, sc
}

func cmdMesh(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: orbittool mesh <shape> [-n N]")
		os.Exit(1)
	}
	kind := mesh.ParseShape(args[0])

	fs := flag.NewFlagSet("mesh", flag.ExitOnError)
	n := fs.Int("n", mesh.DefaultSubdivisions, "Sphere subdivisions per cube face")
	fs.Parse(args[1:])

	f := mesh.NewFactory(*n)
	m := f.For(kind)

	fmt.Printf("Shape:     %s\n", kind)
	if kind == mesh.ShapeSphere {
		fmt.Printf("Grid:      %d x %d per face\n", f.Subdivisions(), f.Subdivisions())
	}
	fmt.Printf("Vertices:  %d\n", m.VertexCount())
	fmt.Printf("Triangles: %d\n", m.TriangleCount())
	fmt.Printf("Stride:    %d floats\n", m.Stride)
	fmt.Printf("Bounds:    %v .. %v\n", m.Min, m.Max)
}

func cmdPick(args []string) {
	fs := flag.NewFlagSet("pick", flag.ExitOnError)
	flags := config.BindFlags(fs)
	x := fs.Float64("x", -1, "Pointer X in pixels")
	y := fs.Float64("y", -1, "Pointer Y in pixels")
	cfg, sc := loadScene(fs, flags, args)

	if *x < 0 || *y < 0 {
		*x = float64(cfg.Viewport.Width) / 2
		*y = float64(cfg.Viewport.Height) / 2
	}

	pointer := math.Vec2{X: float32(*x), Y: float32(*y)}
	hit := sc.Pick(pointer)
	if hit < 0 {
		fmt.Printf("(%.0f, %.0f): no body\n", *x, *y)
		return
	}
	b, _ := sc.Body(hit)
	fmt.Printf("(%.0f, %.0f): %s [%d] %s size %.2f slot %d at %v\n",
		*x, *y, b.Name, hit, b.Shape, b.Size, b.Position, orbit.WorldPosition(b))
}

func cmdPlace(args []string) {
	fs := flag.NewFlagSet("place", flag.ExitOnError)
	flags := config.BindFlags(fs)
	shape := fs.String("shape", "", "Body shape (random when empty)")
	size := fs.Float64("size", 0, "Body size (random when 0)")
	name := fs.String("name", "", "Body name")
	out := fs.String("o", "", "Write the resulting preset here")
	_, sc := loadScene(fs, flags, args)

	r := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	b := preset.RandomBody(r, sc.NextID())
	if *shape != "" {
		b.Shape = mesh.ParseShape(*shape)
	}
	if *size > 0 {
		b.Size = float32(*size)
	}
	if *name != "" {
		b.Name = *name
	}

	before := sc.Len()
	idx, err := sc.Generate(b)
	if err != nil {
		fail("%v", err)
	}
	placed, _ := sc.Body(idx)
	verb := "placed"
	if sc.Len() == before {
		verb = "replaced the body"
	}
	fmt.Printf("%s %s in slot %d (distance %.2f)\n", verb, placed.Name, placed.Position, placed.DistanceFromCenter)

	if *out != "" {
		if err := sc.Preset().Save(*out); err != nil {
			fail("%v", err)
		}
		fmt.Printf("saved %s\n", *out)
	}
}

func cmdValidate(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: orbittool validate <preset.json>")
		os.Exit(1)
	}

	p, err := preset.Load(args[0])
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Preset: %s\n", p.Name)
	if p.Description != "" {
		fmt.Printf("About:  %s\n", p.Description)
	}
	fmt.Printf("Bodies: %d\n", len(p.Planets))
	for _, b := range p.Planets {
		fmt.Printf("  slot %-2d %-8s %-12s size %.2f\n", b.Position, b.Shape, b.Name, b.Size)
	}
	if _, ok := orbit.FindAvailable(p.Planets); !ok {
		fmt.Println("All orbit slots are taken; the next body replaces the outermost one.")
	}
	fmt.Println("OK")
}

func cmdAdvance(args []string) {
	fs := flag.NewFlagSet("advance", flag.ExitOnError)
	flags := config.BindFlags(fs)
	dt := fs.Float64("dt", 1.0/60, "Seconds per step")
	steps := fs.Int("steps", 60, "Number of steps")
	_, sc := loadScene(fs, flags, args)

	for i := 0; i < *steps; i++ {
		sc.Update(float32(*dt))
	}

	fmt.Printf("After %d steps of %.4fs:\n", *steps, *dt)
	for _, b := range sc.Bodies() {
		pos := orbit.WorldPosition(b)
		fmt.Printf("  %-12s orbit %7.2f deg  spin %v  at (%.3f, %.3f, %.3f)\n",
			b.Name, b.OrbitAngle.Y, b.CurrentRotation.Vec(), pos.X, pos.Y, pos.Z)
	}
}

package preset

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Validation errors.
var (
	ErrMissingPlanets    = errors.New("preset has no planets field")
	ErrEmpty             = errors.New("preset has no bodies")
	ErrNoCenter          = errors.New("preset has no center body")
	ErrMultipleCenters   = errors.New("preset has more than one center body")
	ErrDuplicatePosition = errors.New("duplicate body position")
	ErrPositionRange     = errors.New("body position out of range")
)

// Preset is a named, saved arrangement of bodies.
type Preset struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsDefault   bool   `json:"isDefault"`
	Planets     []Body `json:"planets"`
}

//go:embed data/default.json
var defaultPreset []byte

// Default returns a fresh copy of the built-in preset.
func Default() *Preset {
	p, err := Parse(defaultPreset)
	if err != nil {
		panic(fmt.Sprintf("preset: built-in preset is invalid: %v", err))
	}
	p.IsDefault = true
	return p
}

// Parse decodes and validates a preset document.
func Parse(data []byte) (*Preset, error) {
	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	if p.Planets == nil {
		return nil, ErrMissingPlanets
	}
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads and validates a preset file.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Marshal encodes the preset as indented JSON.
func (p *Preset) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal preset: %w", err)
	}
	return data, nil
}

// Save writes the preset to path via a temp file and rename.
func (p *Preset) Save(path string) error {
	data, err := p.Marshal()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Clone returns a deep copy.
func (p *Preset) Clone() *Preset {
	c := *p
	c.Planets = append([]Body(nil), p.Planets...)
	return &c
}

// Validate checks that the preset is non-empty, has exactly one center
// body and that every position is a distinct slot in range.
func Validate(p *Preset) error {
	if len(p.Planets) == 0 {
		return ErrEmpty
	}

	seen := make(map[int]int, len(p.Planets))
	for i, b := range p.Planets {
		if b.Position < CenterPosition || b.Position >= MaxPositions {
			return fmt.Errorf("%w: %s has position %d", ErrPositionRange, b.Name, b.Position)
		}
		if prev, ok := seen[b.Position]; ok {
			if b.IsCenter() {
				return fmt.Errorf("%w: %s and %s", ErrMultipleCenters, p.Planets[prev].Name, b.Name)
			}
			return fmt.Errorf("%w: %d (%s and %s)", ErrDuplicatePosition, b.Position, p.Planets[prev].Name, b.Name)
		}
		seen[b.Position] = i
	}

	if _, ok := seen[CenterPosition]; !ok {
		return ErrNoCenter
	}
	return nil
}

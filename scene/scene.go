// Package scene loads hit-box layouts and probe queries from YAML files
package scene

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/hitbox/collision"
)

// ErrEmptyScene is returned for a file with neither boxes nor probes
var ErrEmptyScene = errors.New("scene has no boxes or probes")

// BoxSpec is one registered box as written in the file
type BoxSpec struct {
	Pos  []float64 `yaml:"pos"`
	Size []float64 `yaml:"size"`
	Rect []string  `yaml:"rect,omitempty"`
	Text []string  `yaml:"text,omitempty"`
	Char []string  `yaml:"char,omitempty"`
}

// ProbeSpec is a named query box
type ProbeSpec struct {
	Name string    `yaml:"name"`
	Pos  []float64 `yaml:"pos"`
	Size []float64 `yaml:"size"`
}

type file struct {
	Name   string      `yaml:"name"`
	Boxes  []BoxSpec   `yaml:"boxes"`
	Probes []ProbeSpec `yaml:"probes"`
}

// Probe is a resolved query box
type Probe struct {
	Name string
	Box  collision.HitBox
}

// Scene is a validated layout ready to stage into a registry
type Scene struct {
	Name   string
	Boxes  []collision.HitBox
	Probes []Probe
}

// ProbeResult pairs a probe with the merged collision it observed
type ProbeResult struct {
	Name      string
	Collision collision.Collision
}

// Load reads and parses a scene file
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates scene YAML
func Parse(data []byte) (*Scene, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if len(f.Boxes) == 0 && len(f.Probes) == 0 {
		return nil, ErrEmptyScene
	}

	s := &Scene{
		Name:   f.Name,
		Boxes:  make([]collision.HitBox, 0, len(f.Boxes)),
		Probes: make([]Probe, 0, len(f.Probes)),
	}

	for i, b := range f.Boxes {
		hb, err := b.hitBox()
		if err != nil {
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
		s.Boxes = append(s.Boxes, hb)
	}

	for i, p := range f.Probes {
		pos, size, err := rect(p.Pos, p.Size)
		if err != nil {
			return nil, fmt.Errorf("probe %d: %w", i, err)
		}
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("probe-%d", i)
		}
		s.Probes = append(s.Probes, Probe{
			Name: name,
			Box:  collision.NewHitBox(pos[0], pos[1], size[0], size[1], collision.NewCollision()),
		})
	}

	return s, nil
}

func (b BoxSpec) hitBox() (collision.HitBox, error) {
	pos, size, err := rect(b.Pos, b.Size)
	if err != nil {
		return collision.HitBox{}, err
	}

	tags := collision.NewCollision()
	for _, name := range b.Rect {
		c, err := collision.ParseRectColor(name)
		if err != nil {
			return collision.HitBox{}, err
		}
		tags.IsColliding.Rect[c] = true
	}
	for _, k := range b.Text {
		tags.IsColliding.Text[k] = true
	}
	for _, k := range b.Char {
		tags.IsColliding.Char[k] = true
	}

	return collision.NewHitBox(pos[0], pos[1], size[0], size[1], tags), nil
}

func rect(pos, size []float64) ([2]float64, [2]float64, error) {
	var p, s [2]float64
	if len(pos) != 2 {
		return p, s, fmt.Errorf("pos needs 2 values, got %d", len(pos))
	}
	if len(size) != 2 {
		return p, s, fmt.Errorf("size needs 2 values, got %d", len(size))
	}
	copy(p[:], pos)
	copy(s[:], size)
	return p, s, nil
}

// Stage appends every scene box to the registry's staging sequence
func (s *Scene) Stage(reg *collision.Registry) {
	reg.Stage(s.Boxes...)
}

// Run evaluates all probes against a fresh frame holding only the scene boxes
func (s *Scene) Run(reg *collision.Registry) []ProbeResult {
	reg.Clear()
	s.Stage(reg)
	reg.ConcatTmpHitBoxes()

	results := make([]ProbeResult, 0, len(s.Probes))
	for _, p := range s.Probes {
		results = append(results, ProbeResult{
			Name:      p.Name,
			Collision: reg.CheckHitBoxes(p.Box),
		})
	}
	return results
}

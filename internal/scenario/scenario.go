// Package scenario loads YAML run descriptions: which sim to build, how to
// configure it and how to seed its first generation.
//
// Example:
//
//	sim: life
//	params:
//	  w: 40
//	  h: 20
//	  rule: B3/S23
//	steps: 100
//	pattern: |
//	  .#.
//	  ..#
//	  ###
//
// Unknown keys are rejected.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"lifegen/internal/core"
	"lifegen/internal/pattern"
	pcore "lifegen/pkg/core"
)

// Scenario describes one simulation run.
type Scenario struct {
	Sim         string            `yaml:"sim"`
	Params      map[string]string `yaml:"params"`
	Seed        *int64            `yaml:"seed"`
	Steps       int               `yaml:"steps"`
	TPS         int               `yaml:"tps"`
	Pattern     string            `yaml:"pattern"`
	PatternFile string            `yaml:"pattern_file"`
	Offset      *[2]int           `yaml:"offset"`
	Cells       [][2]int          `yaml:"cells"`

	baseDir string
}

// Parse decodes a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty scenario", pcore.ErrInvalidArgument)
		}
		return nil, fmt.Errorf("%w: parsing scenario: %v", pcore.ErrInvalidArgument, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the scenario at path. A relative pattern_file is
// resolved against the scenario's directory.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.baseDir = filepath.Dir(path)
	return s, nil
}

// Validate checks field combinations.
func (s *Scenario) Validate() error {
	if s.Sim == "" {
		return fmt.Errorf("%w: scenario sim is required", pcore.ErrInvalidArgument)
	}
	if s.Steps < 0 {
		return fmt.Errorf("%w: scenario steps %d must not be negative", pcore.ErrInvalidArgument, s.Steps)
	}
	sources := 0
	for _, set := range []bool{s.Pattern != "", s.PatternFile != "", len(s.Cells) > 0} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return fmt.Errorf("%w: pattern, pattern_file and cells are mutually exclusive", pcore.ErrInvalidArgument)
	}
	if s.Offset != nil && s.Pattern == "" && s.PatternFile == "" {
		return fmt.Errorf("%w: offset requires pattern or pattern_file", pcore.ErrInvalidArgument)
	}
	return nil
}

// Build constructs the sim and seeds it. Explicit cells or a pattern take
// precedence over Seed; with neither the board starts empty.
func (s *Scenario) Build() (core.Sim, error) {
	factory, ok := core.Sims()[s.Sim]
	if !ok {
		return nil, fmt.Errorf("%w: unknown sim %q", pcore.ErrInvalidArgument, s.Sim)
	}
	sim, err := factory(s.Params)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", s.Sim, err)
	}
	if err := s.Apply(sim); err != nil {
		sim.Close()
		return nil, err
	}
	return sim, nil
}

// Apply reseeds sim with the scenario's initial board. It is what Build
// runs after construction and what a restart runs again.
func (s *Scenario) Apply(sim core.Sim) error {
	points, err := s.points(sim)
	if err != nil {
		return err
	}
	if points != nil {
		inj, ok := sim.(core.Injector)
		if !ok {
			return fmt.Errorf("%w: sim %q does not accept explicit cells", pcore.ErrInvalidArgument, sim.Name())
		}
		return inj.Inject(points)
	}
	if s.Seed != nil {
		return sim.Reset(*s.Seed)
	}
	if inj, ok := sim.(core.Injector); ok {
		return inj.Inject(nil)
	}
	return nil
}

func (s *Scenario) points(sim core.Sim) ([][2]int, error) {
	if len(s.Cells) > 0 {
		return s.Cells, nil
	}
	var p pattern.Pattern
	var err error
	switch {
	case s.Pattern != "":
		p, err = pattern.ParseString(s.Pattern)
	case s.PatternFile != "":
		path := s.PatternFile
		if !filepath.IsAbs(path) && s.baseDir != "" {
			path = filepath.Join(s.baseDir, path)
		}
		p, err = pattern.Load(path)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if s.Offset != nil {
		return p.Offset(s.Offset[0], s.Offset[1]), nil
	}
	origin := [2]int{}
	if inj, ok := sim.(core.Injector); ok {
		origin = inj.Origin()
	}
	dx, dy := p.CenteredOn(origin)
	return p.Offset(dx, dy), nil
}

package ui

import (
	"fmt"

	"lifegen/internal/core"
)

// Line metrics for the basicfont 7x13 face.
const (
	padding    = 12
	lineHeight = 16
)

// Lines returns the HUD text for sim: status lines, then one line per
// parameter grouped under its heading, then the key help.
func Lines(sim core.Sim, paused bool) []string {
	state := "running"
	if paused {
		state = "paused"
	}
	lines := []string{
		sim.Name(),
		fmt.Sprintf("turn   %d", sim.Turn()),
		fmt.Sprintf("alive  %d", sim.Alive()),
		state,
	}
	if p, ok := sim.(core.ParametersProvider); ok {
		for _, group := range p.Parameters().Groups {
			lines = append(lines, "", group.Name)
			for _, param := range group.Params {
				lines = append(lines, fmt.Sprintf("  %s: %s", param.Label, param.Value))
			}
		}
	}
	return append(lines, "", "space pause  N step", "R restart  S reseed", "Q quit")
}

// MinHeight is the panel height needed to show every line for sim.
func MinHeight(sim core.Sim) int {
	return 2*padding + len(Lines(sim, false))*lineHeight
}

package rules

import (
	"fmt"

	"lifegen/pkg/core"
)

// Brian's Brain cell states.
const (
	BrainOff   uint8 = 0
	BrainOn    uint8 = 1
	BrainDying uint8 = 2
)

// BriansBrain is the three-state rule: on cells start dying, dying cells
// turn off, and off cells fire when exactly two neighbors are on.
type BriansBrain struct{}

// Default returns BrainOff.
func (BriansBrain) Default() uint8 { return BrainOff }

// Next applies the Brian's Brain transition.
func (BriansBrain) Next(current uint8, neighbors []uint8) (uint8, error) {
	if neighbors == nil {
		return BrainOff, fmt.Errorf("%w: nil neighbor states", core.ErrInvalidArgument)
	}
	switch current {
	case BrainOn:
		return BrainDying, nil
	case BrainDying:
		return BrainOff, nil
	}
	on := 0
	for _, n := range neighbors {
		if n == BrainOn {
			on++
		}
	}
	if on == 2 {
		return BrainOn, nil
	}
	return BrainOff, nil
}

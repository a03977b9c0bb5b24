package core

import "errors"

// Contract violations surfaced by the engine. Callers match them with
// errors.Is; the wrapped message carries the offending value.
var (
	// ErrOutOfRange reports a node outside a topology or generation, or a
	// dimension/radius below its minimum.
	ErrOutOfRange = errors.New("out of range")
	// ErrInvalidArgument reports a missing required input or malformed data.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidOperation reports use of a spent builder, a released
	// generation or a closed timeline.
	ErrInvalidOperation = errors.New("invalid operation")
)

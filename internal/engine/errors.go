package engine

import (
	"github.com/dshills/circuitstorm/internal/engine/circuit"
	"github.com/dshills/circuitstorm/internal/engine/history"
)

// Errors returned by engine operations.
var (
	// ErrInvalidValue indicates a non-positive component value.
	ErrInvalidValue = circuit.ErrInvalidValue

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = history.ErrNothingToUndo
)

package circuit

import "errors"

// Errors returned by registry operations.
var (
	// ErrInvalidValue indicates a non-positive component value.
	ErrInvalidValue = errors.New("component value must be positive")
)

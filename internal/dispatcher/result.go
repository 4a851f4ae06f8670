package dispatcher

import (
	"fmt"

	"github.com/dshills/circuitstorm/internal/engine"
)

// ResultStatus indicates the outcome of a request.
type ResultStatus uint8

const (
	// StatusOK indicates successful execution.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the request had no effect (unknown ID,
	// empty undo history).
	StatusNoOp
	// StatusError indicates an error occurred.
	StatusError
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result represents the outcome of handling a request.
type Result struct {
	// Status indicates the result status.
	Status ResultStatus

	// Error contains any error that occurred.
	Error error

	// Message is a status message the caller may display.
	Message string

	// ID is the assigned identifier for AddComponentRequest.
	ID engine.ID

	// Component is the lookup result for FindComponentRequest.
	Component *engine.Component

	// Series and Parallel carry group ordering for ListGroupsRequest.
	Series   []engine.ID
	Parallel []engine.ID

	// Report carries the analysis for AnalyzeRequest.
	Report *engine.Report
}

// IsOK returns true if the result indicates success.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsError returns true if the result indicates an error.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// success creates a successful result with a display message.
func success(msg string) Result {
	return Result{Status: StatusOK, Message: msg}
}

// noOp creates a no-operation result with a display message.
func noOp(msg string) Result {
	return Result{Status: StatusNoOp, Message: msg}
}

// failure creates an error result with a display message.
func failure(err error, msg string) Result {
	return Result{Status: StatusError, Error: err, Message: msg}
}

// errorf creates an error result with a formatted message.
func errorf(format string, args ...any) Result {
	err := fmt.Errorf(format, args...)
	return Result{Status: StatusError, Error: err, Message: err.Error()}
}

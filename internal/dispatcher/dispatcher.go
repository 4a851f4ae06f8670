// Package dispatcher exposes the circuit core as a request/result
// surface for presentation layers.
package dispatcher

import (
	"fmt"

	"github.com/dshills/circuitstorm/internal/engine"
)

// DefaultFrequencyHz is the analysis frequency used when a request does
// not carry one. It matches the conventional mains frequency.
const DefaultFrequencyHz = 50.0

// Dispatcher routes presentation requests to the engine. It holds no
// state of its own beyond the engine binding and the default analysis
// frequency, which is presentation configuration, not circuit state.
type Dispatcher struct {
	engine *engine.Engine
	freqHz float64
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithDefaultFrequency sets the fallback analysis frequency in hertz.
func WithDefaultFrequency(freqHz float64) Option {
	return func(d *Dispatcher) {
		if freqHz > 0 {
			d.freqHz = freqHz
		}
	}
}

// New creates a Dispatcher bound to the given engine.
func New(eng *engine.Engine, opts ...Option) *Dispatcher {
	d := &Dispatcher{engine: eng, freqHz: DefaultFrequencyHz}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch routes a request value to the matching handler.
func (d *Dispatcher) Dispatch(req any) Result {
	switch r := req.(type) {
	case AddComponentRequest:
		return d.Add(r)
	case RemoveComponentRequest:
		return d.Remove(r)
	case UndoRequest:
		return d.Undo(r)
	case FindComponentRequest:
		return d.Find(r)
	case ListGroupsRequest:
		return d.List(r)
	case AnalyzeRequest:
		return d.Analyze(r)
	default:
		return errorf("unknown request type %T", req)
	}
}

// Add handles AddComponentRequest.
func (d *Dispatcher) Add(req AddComponentRequest) Result {
	id, err := d.engine.Add(req.Type, req.Value, req.Group)
	if err != nil {
		return failure(err, "Invalid value. Enter a positive number.")
	}
	res := success("Component added successfully!")
	res.ID = id
	return res
}

// Remove handles RemoveComponentRequest.
func (d *Dispatcher) Remove(req RemoveComponentRequest) Result {
	if !d.engine.Remove(req.ID) {
		return noOp("Not found.")
	}
	return success("Component removed!")
}

// Undo handles UndoRequest. An empty history is a benign no-op, not an
// error.
func (d *Dispatcher) Undo(UndoRequest) Result {
	if err := d.engine.Undo(); err != nil {
		return noOp("Nothing to undo.")
	}
	return success("Last operation undone.")
}

// Find handles FindComponentRequest.
func (d *Dispatcher) Find(req FindComponentRequest) Result {
	c, ok := d.engine.Find(req.ID)
	if !ok {
		return noOp("Not found.")
	}
	res := success("Found!")
	res.Component = &c
	return res
}

// List handles ListGroupsRequest.
func (d *Dispatcher) List(ListGroupsRequest) Result {
	series, parallel := d.engine.Groups()
	res := success(fmt.Sprintf("Series: %d | Parallel: %d", len(series), len(parallel)))
	res.Series = series
	res.Parallel = parallel
	return res
}

// Analyze handles AnalyzeRequest.
func (d *Dispatcher) Analyze(req AnalyzeRequest) Result {
	freq := req.FrequencyHz
	if freq <= 0 {
		freq = d.freqHz
	}
	report := d.engine.Analyze(freq)
	res := success(fmt.Sprintf("Analysis complete at %.1f Hz.", freq))
	res.Report = &report
	return res
}

// OperationLog returns the engine's bounded operation log, oldest first.
func (d *Dispatcher) OperationLog() []string {
	return d.engine.OperationLog()
}

// Package app provides the reference presentation layer: a line-oriented
// workbench that drives the circuit core through the dispatcher.
package app

import (
	"context"
	"io"
	"os"

	"github.com/dshills/circuitstorm/internal/config"
	"github.com/dshills/circuitstorm/internal/dispatcher"
	"github.com/dshills/circuitstorm/internal/engine"
	"github.com/dshills/circuitstorm/internal/script"
)

// App wires the configuration, engine, dispatcher, and REPL together.
type App struct {
	cfg    config.Config
	logger *Logger

	eng  *engine.Engine
	disp *dispatcher.Dispatcher

	in  io.Reader
	out io.Writer
}

// Option configures an App during creation.
type Option func(*App)

// WithInput sets the command input stream. Defaults to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(a *App) { a.in = r }
}

// WithOutput sets the output stream. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

// WithLogger sets the application logger.
func WithLogger(l *Logger) Option {
	return func(a *App) { a.logger = l }
}

// New creates an App from the given configuration.
func New(cfg config.Config, opts ...Option) *App {
	a := &App{
		cfg: cfg,
		in:  os.Stdin,
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = NewLogger(os.Stderr, LogLevelInfo)
	}

	a.eng = engine.New(
		engine.WithMaxUndoDepth(cfg.MaxUndoDepth),
		engine.WithLogCapacity(cfg.OpLogSize),
	)
	a.disp = dispatcher.New(a.eng, dispatcher.WithDefaultFrequency(cfg.FrequencyHz))

	return a
}

// Engine returns the underlying engine, mainly for embedding and tests.
func (a *App) Engine() *engine.Engine {
	return a.eng
}

// RunScript executes a Lua script file against the engine and returns.
func (a *App) RunScript(path string) error {
	a.logger.Info("running script %s", path)
	runner := script.NewRunner(a.eng, a.cfg.FrequencyHz)
	return runner.RunFile(path)
}

// Run starts the interactive REPL. It returns when the input stream is
// exhausted, the user quits, or the context is cancelled.
func (a *App) Run(ctx context.Context) error {
	return a.repl(ctx)
}

// Package main is the entry point for the circuitstorm workbench.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/circuitstorm/internal/app"
	"github.com/dshills/circuitstorm/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath  string
	frequencyHz float64
	scriptPath  string
	logLevel    string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if opts.frequencyHz > 0 {
		cfg.FrequencyHz = opts.frequencyHz
	}

	logger := app.NewLogger(os.Stderr, app.ParseLogLevel(opts.logLevel))
	application := app.New(cfg, app.WithLogger(logger))

	// Script mode: execute and exit.
	if opts.scriptPath != "" {
		if err := application.RunScript(opts.scriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	// Handle signals for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		cancel()
	}()

	if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.Float64Var(&opts.frequencyHz, "frequency", 0, "Analysis frequency in hertz (overrides config)")
	flag.Float64Var(&opts.frequencyHz, "f", 0, "Analysis frequency in hertz (shorthand)")
	flag.StringVar(&opts.scriptPath, "script", "", "Run a Lua script and exit")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Circuitstorm - series/parallel circuit workbench\n\n")
		fmt.Fprintf(os.Stderr, "Usage: circuitstorm [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  circuitstorm                      Start the interactive workbench\n")
		fmt.Fprintf(os.Stderr, "  circuitstorm -f 60                Analyze at 60 Hz\n")
		fmt.Fprintf(os.Stderr, "  circuitstorm -script build.lua    Run a circuit script\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Circuitstorm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.logLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	return opts
}

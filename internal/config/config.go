// Package config loads workbench settings from TOML with environment
// overrides.
//
// Settings are presentation/host configuration only; circuit state is
// never persisted. Resolution order: defaults, then the TOML file, then
// CIRCUITSTORM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	// DefaultFrequencyHz is the analysis frequency when none is set.
	DefaultFrequencyHz = 50.0

	// DefaultMaxUndoDepth leaves the undo stack unbounded.
	DefaultMaxUndoDepth = 0

	// DefaultOpLogSize bounds the operation log.
	DefaultOpLogSize = 20

	// EnvPrefix is the prefix for environment overrides.
	EnvPrefix = "CIRCUITSTORM_"
)

// Errors returned by config loading.
var (
	// ErrInvalidFrequency indicates a non-positive analysis frequency.
	ErrInvalidFrequency = errors.New("frequency_hz must be positive")

	// ErrInvalidLogSize indicates a non-positive operation log size.
	ErrInvalidLogSize = errors.New("op_log_size must be positive")

	// ErrInvalidUndoDepth indicates a negative undo depth cap.
	ErrInvalidUndoDepth = errors.New("max_undo_depth must not be negative")
)

// Config holds workbench settings.
type Config struct {
	// FrequencyHz is the default analysis frequency in hertz.
	FrequencyHz float64 `toml:"frequency_hz"`

	// MaxUndoDepth caps the undo stack; 0 means unbounded.
	MaxUndoDepth int `toml:"max_undo_depth"`

	// OpLogSize bounds the operation log.
	OpLogSize int `toml:"op_log_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FrequencyHz:  DefaultFrequencyHz,
		MaxUndoDepth: DefaultMaxUndoDepth,
		OpLogSize:    DefaultOpLogSize,
	}
}

// Load reads the TOML file at path, applies environment overrides, and
// validates the result. A missing file is not an error; defaults plus
// environment apply. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides fields from CIRCUITSTORM_* environment variables.
// Malformed values are ignored in favor of the current setting.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvPrefix + "FREQUENCY_HZ"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.FrequencyHz = f
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "MAX_UNDO_DEPTH"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxUndoDepth = n
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "OP_LOG_SIZE"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.OpLogSize = n
		}
	}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.FrequencyHz <= 0 {
		return ErrInvalidFrequency
	}
	if c.OpLogSize <= 0 {
		return ErrInvalidLogSize
	}
	if c.MaxUndoDepth < 0 {
		return ErrInvalidUndoDepth
	}
	return nil
}

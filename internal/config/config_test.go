package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.FrequencyHz != 50 {
		t.Errorf("FrequencyHz = %v, want 50", cfg.FrequencyHz)
	}
	if cfg.MaxUndoDepth != 0 {
		t.Errorf("MaxUndoDepth = %v, want 0", cfg.MaxUndoDepth)
	}
	if cfg.OpLogSize != 20 {
		t.Errorf("OpLogSize = %v, want 20", cfg.OpLogSize)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	content := "frequency_hz = 60.0\nmax_undo_depth = 128\nop_log_size = 50\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.FrequencyHz != 60 || cfg.MaxUndoDepth != 128 || cfg.OpLogSize != 50 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadPartialTOMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("frequency_hz = 400.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.FrequencyHz != 400 {
		t.Errorf("FrequencyHz = %v, want 400", cfg.FrequencyHz)
	}
	if cfg.OpLogSize != DefaultOpLogSize {
		t.Errorf("OpLogSize = %v, want default %d", cfg.OpLogSize, DefaultOpLogSize)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("frequency_hz = = 60"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil for malformed TOML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CIRCUITSTORM_FREQUENCY_HZ", "1000")
	t.Setenv("CIRCUITSTORM_OP_LOG_SIZE", "5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.FrequencyHz != 1000 {
		t.Errorf("FrequencyHz = %v, want 1000", cfg.FrequencyHz)
	}
	if cfg.OpLogSize != 5 {
		t.Errorf("OpLogSize = %v, want 5", cfg.OpLogSize)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("frequency_hz = 60.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CIRCUITSTORM_FREQUENCY_HZ", "75")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.FrequencyHz != 75 {
		t.Errorf("FrequencyHz = %v, want 75 (env wins over file)", cfg.FrequencyHz)
	}
}

func TestMalformedEnvIgnored(t *testing.T) {
	t.Setenv("CIRCUITSTORM_FREQUENCY_HZ", "lots")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.FrequencyHz != DefaultFrequencyHz {
		t.Errorf("FrequencyHz = %v, want default", cfg.FrequencyHz)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"valid", Default(), nil},
		{"zero frequency", Config{FrequencyHz: 0, OpLogSize: 20}, ErrInvalidFrequency},
		{"negative frequency", Config{FrequencyHz: -50, OpLogSize: 20}, ErrInvalidFrequency},
		{"zero log size", Config{FrequencyHz: 50, OpLogSize: 0}, ErrInvalidLogSize},
		{"negative undo depth", Config{FrequencyHz: 50, OpLogSize: 20, MaxUndoDepth: -1}, ErrInvalidUndoDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

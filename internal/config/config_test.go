package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if cfg != DefaultRunnerConfig() {
		t.Errorf("Embedded YAML and DefaultRunnerConfig() differ:\nyaml: %+v\ncode: %+v", cfg, DefaultRunnerConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
obstacles:
  gap: 200
tokens:
  bonus: 10
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Obstacles.Gap != 200 {
		t.Errorf("Gap = %v, expected 200", cfg.Obstacles.Gap)
	}
	if cfg.Tokens.Bonus != 10 {
		t.Errorf("Bonus = %d, expected 10", cfg.Tokens.Bonus)
	}
	// Untouched keys keep their defaults
	if cfg.Obstacles.Spacing != 420 {
		t.Errorf("Spacing = %v, expected default 420", cfg.Obstacles.Spacing)
	}
	if cfg.Physics.JumpImpulse != -5 {
		t.Errorf("JumpImpulse = %v, expected default -5", cfg.Physics.JumpImpulse)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero spacing", func(c *RunnerConfig) { c.Obstacles.Spacing = 0 }},
		{"negative gap", func(c *RunnerConfig) { c.Obstacles.Gap = -1 }},
		{"token chance above one", func(c *RunnerConfig) { c.Tokens.Chance = 1.5 }},
		{"card chance below zero", func(c *RunnerConfig) { c.Obstacles.CardChance = -0.1 }},
		{"upward gravity jump", func(c *RunnerConfig) { c.Physics.JumpImpulse = 3 }},
		{"inverted particle speed", func(c *RunnerConfig) { c.Particles.MaxSpeed = 0.5 }},
		{"zero nominal frame", func(c *RunnerConfig) { c.Frame.NominalMS = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  scroll_speed: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.ScrollSpeed != 5 {
		t.Errorf("ScrollSpeed = %v, expected 5", cfg.Physics.ScrollSpeed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("obstacles: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("obstacles:\n  width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() of invalid values should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestMarshalRoundTripKeepsValues(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Tokens.Chance = 0.25

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back.Tokens.Chance != 0.25 {
		t.Errorf("Tokens.Chance = %v after round trip, expected 0.25", back.Tokens.Chance)
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/abs/path.db")
	if err != nil || got != "/abs/path.db" {
		t.Errorf("ExpandHome(abs) = %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/x/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, "x", "scores.db"); got != want {
		t.Errorf("ExpandHome() = %q, expected %q", got, want)
	}
}

// Package config provides YAML-based tuning for the runner: physics,
// obstacle and token geometry, particles and frame timing. All gameplay
// constants live here so the simulation never hard-codes them.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all configuration for the runner game.
type RunnerConfig struct {
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Tokens    Tokens    `yaml:"tokens"`
	Particles Particles `yaml:"particles"`
	Frame     Frame     `yaml:"frame"`
	Stars     Stars     `yaml:"stars"`
	Audio     Audio     `yaml:"audio"`
}

// Physics defines player motion and world scroll parameters.
type Physics struct {
	Gravity          float64 `yaml:"gravity"`
	GravityDampening float64 `yaml:"gravity_dampening"`
	JumpImpulse      float64 `yaml:"jump_impulse"`    // Negative = up
	Ceiling          float64 `yaml:"ceiling"`         // Highest allowed y (above the viewport)
	ScrollSpeed      float64 `yaml:"scroll_speed"`    // World units per nominal frame
	RotationFactor   float64 `yaml:"rotation_factor"` // Radians per unit of vy
}

// Player defines the player body.
type Player struct {
	Radius float64 `yaml:"radius"`
	XRatio float64 `yaml:"x_ratio"` // Horizontal position as a fraction of viewport width
}

// Obstacles defines obstacle geometry and spawning.
type Obstacles struct {
	Spacing    float64 `yaml:"spacing"`
	Width      float64 `yaml:"width"`
	Gap        float64 `yaml:"gap"`
	MinHeight  int     `yaml:"min_height"`
	Initial    int     `yaml:"initial"`     // Lookahead batch seeded on start
	CardChance float64 `yaml:"card_chance"` // Probability of the NFT card variant
	Cutoff     float64 `yaml:"cutoff"`      // Pruned once x+width <= cutoff
}

// Tokens defines collectible parameters.
type Tokens struct {
	Chance       float64 `yaml:"chance"`
	Radius       float64 `yaml:"radius"`
	Bonus        int     `yaml:"bonus"`
	BobAmplitude float64 `yaml:"bob_amplitude"`
	BobRate      float64 `yaml:"bob_rate"` // Phase advance per frame
	Cutoff       float64 `yaml:"cutoff"`   // Pruned once x <= cutoff
}

// Particles defines burst effects.
type Particles struct {
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
	Decay    float64 `yaml:"decay"`   // Life lost per nominal frame
	Gravity  float64 `yaml:"gravity"` // Downward acceleration per nominal frame
}

// Frame defines how host frame timestamps map to simulation time.
type Frame struct {
	NominalMS float64 `yaml:"nominal_ms"` // Duration of dt = 1
	MaxDelta  float64 `yaml:"max_delta"`  // Cap on dt, 0 = uncapped
}

// Stars defines the decorative background.
type Stars struct {
	Count    int     `yaml:"count"`
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// Audio defines sound output.
type Audio struct {
	Enabled    bool    `yaml:"enabled"`
	MasterGain float64 `yaml:"master_gain"`
	SampleRate int     `yaml:"sample_rate"`
	AssetsDir  string  `yaml:"assets_dir"` // Directory with jump.wav, coin.wav, hit.wav
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable world.
func (c RunnerConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, v))
		}
	}
	probability := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%w: %s must be within [0, 1], got %v", ErrInvalidConfig, name, v))
		}
	}

	positive("player.radius", c.Player.Radius)
	positive("obstacles.spacing", c.Obstacles.Spacing)
	positive("obstacles.width", c.Obstacles.Width)
	positive("obstacles.gap", c.Obstacles.Gap)
	positive("tokens.radius", c.Tokens.Radius)
	positive("frame.nominal_ms", c.Frame.NominalMS)
	probability("player.x_ratio", c.Player.XRatio)
	probability("obstacles.card_chance", c.Obstacles.CardChance)
	probability("tokens.chance", c.Tokens.Chance)

	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("%w: physics.jump_impulse must be negative, got %v", ErrInvalidConfig, c.Physics.JumpImpulse))
	}
	if c.Obstacles.MinHeight < 0 {
		errs = append(errs, fmt.Errorf("%w: obstacles.min_height must not be negative", ErrInvalidConfig))
	}
	if c.Particles.MaxSpeed < c.Particles.MinSpeed || c.Particles.MaxSize < c.Particles.MinSize {
		errs = append(errs, fmt.Errorf("%w: particle ranges must have max >= min", ErrInvalidConfig))
	}
	if c.Frame.MaxDelta < 0 {
		errs = append(errs, fmt.Errorf("%w: frame.max_delta must not be negative", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

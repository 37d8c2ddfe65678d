package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: Physics{
			Gravity:          0.4,
			GravityDampening: 0.6,
			JumpImpulse:      -5,
			Ceiling:          -100,
			ScrollSpeed:      3.5,
			RotationFactor:   0.1,
		},
		Player: Player{
			Radius: 18,
			XRatio: 0.2,
		},
		Obstacles: Obstacles{
			Spacing:    420,
			Width:      60,
			Gap:        170,
			MinHeight:  50,
			Initial:    3,
			CardChance: 0.2,
			Cutoff:     -100,
		},
		Tokens: Tokens{
			Chance:       0.6,
			Radius:       16,
			Bonus:        5,
			BobAmplitude: 5,
			BobRate:      0.1,
			Cutoff:       -50,
		},
		Particles: Particles{
			Count:    15,
			MinSpeed: 1,
			MaxSpeed: 5,
			MinSize:  1,
			MaxSize:  4,
			Decay:    0.02,
			Gravity:  0.1,
		},
		Frame: Frame{
			NominalMS: 16.666,
			MaxDelta:  0,
		},
		Stars: Stars{
			Count:    100,
			MinSize:  0.5,
			MaxSize:  2.5,
			MinSpeed: 0.1,
			MaxSpeed: 0.6,
		},
		Audio: Audio{
			Enabled:    true,
			MasterGain: 0.3,
			SampleRate: 44100,
		},
	}
}

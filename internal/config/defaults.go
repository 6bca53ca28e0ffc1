package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:        0.8,
			JumpForce:      -14,
			SpeedStart:     6,
			SpeedIncrement: 0.002,
			GroundRatio:    0.8,
		},
		Player: RunnerPlayer{
			Radius:       15,
			XRatio:       0.15,
			HitboxMargin: 5,
			DefaultSkin:  "ball",
		},
		Obstacles: RunnerObstacles{
			Width:            30,
			SpikeHeight:      40,
			BlockHeight:      60,
			CadenceNumerator: 1000,
			WarmupFrame:      50,
		},
		Shield: RunnerShield{
			UnlockScore:       200,
			MaxEnergy:         100,
			Drain:             0.8,
			Regen:             0.3,
			HitPenalty:        30,
			HoldThresholdMS:   150,
			AnnouncementTicks: 100,
		},
		Scoring: RunnerScoring{
			PerTick: 0.1,
		},
		Particles: RunnerParticles{
			Decay:    0.05,
			MaxSpeed: 5,
			MaxSize:  3,
		},
		Display: RunnerDisplay{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}

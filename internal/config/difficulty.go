package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only change the linear speed ramp.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset.
// The empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.SpeedStart *= 0.8
		cfg.Physics.SpeedIncrement *= 0.75
	case DifficultyHard:
		cfg.Physics.SpeedStart *= 1.3
		cfg.Physics.SpeedIncrement *= 1.5
	case DifficultyFixed:
		cfg.Physics.SpeedIncrement = 0
	}
}

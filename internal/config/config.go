// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

import (
	"errors"
	"fmt"
	"time"
)

// RunnerConfig contains all configuration for the runner.
type RunnerConfig struct {
	Physics   RunnerPhysics   `yaml:"physics"`
	Player    RunnerPlayer    `yaml:"player"`
	Obstacles RunnerObstacles `yaml:"obstacles"`
	Shield    RunnerShield    `yaml:"shield"`
	Scoring   RunnerScoring   `yaml:"scoring"`
	Particles RunnerParticles `yaml:"particles"`
	Display   RunnerDisplay   `yaml:"display"`
}

// RunnerPhysics defines physics parameters. Units are world units per tick.
type RunnerPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	JumpForce      float64 `yaml:"jump_force"` // Negative = upward
	SpeedStart     float64 `yaml:"speed_start"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	GroundRatio    float64 `yaml:"ground_ratio"` // Ground line as a fraction of viewport height
}

// RunnerPlayer defines the character's shape and placement.
type RunnerPlayer struct {
	Radius       float64 `yaml:"radius"`
	XRatio       float64 `yaml:"x_ratio"` // Horizontal position as a fraction of viewport width
	HitboxMargin float64 `yaml:"hitbox_margin"`
	DefaultSkin  string  `yaml:"default_skin"`
}

// RunnerObstacles defines obstacle shapes and spawn cadence.
type RunnerObstacles struct {
	Width            float64 `yaml:"width"`
	SpikeHeight      float64 `yaml:"spike_height"`
	BlockHeight      float64 `yaml:"block_height"`
	CadenceNumerator float64 `yaml:"cadence_numerator"` // Spawn every floor(n / speed) frames
	WarmupFrame      int     `yaml:"warmup_frame"`
}

// RunnerShield defines the shield resource.
type RunnerShield struct {
	UnlockScore       float64 `yaml:"unlock_score"`
	MaxEnergy         float64 `yaml:"max_energy"`
	Drain             float64 `yaml:"drain"`
	Regen             float64 `yaml:"regen"`
	HitPenalty        float64 `yaml:"hit_penalty"`
	HoldThresholdMS   int     `yaml:"hold_threshold_ms"`
	AnnouncementTicks int     `yaml:"announcement_ticks"`
}

// RunnerScoring defines how score accumulates.
type RunnerScoring struct {
	PerTick float64 `yaml:"per_tick"`
}

// RunnerParticles defines cosmetic particle behaviour.
type RunnerParticles struct {
	Decay    float64 `yaml:"decay"`
	MaxSpeed float64 `yaml:"max_speed"`
	MaxSize  float64 `yaml:"max_size"`
}

// RunnerDisplay defines how world units map onto terminal cells.
type RunnerDisplay struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// HoldThreshold returns the press duration separating a tap from a hold.
func (c RunnerConfig) HoldThreshold() time.Duration {
	return time.Duration(c.Shield.HoldThresholdMS) * time.Millisecond
}

// Validate checks that the configuration describes a playable game.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Player.Radius <= 0 {
		errs = append(errs, fmt.Errorf("player.radius must be positive, got %v", c.Player.Radius))
	}
	if c.Player.HitboxMargin*2 >= c.Player.Radius*2 {
		errs = append(errs, fmt.Errorf("player.hitbox_margin %v leaves no hitbox", c.Player.HitboxMargin))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.SpikeHeight <= 0 || c.Obstacles.BlockHeight <= 0 {
		errs = append(errs, errors.New("obstacle width and heights must be positive"))
	}
	if c.Obstacles.CadenceNumerator <= 0 {
		errs = append(errs, errors.New("obstacles.cadence_numerator must be positive"))
	}
	if c.Physics.SpeedStart <= 0 {
		errs = append(errs, fmt.Errorf("physics.speed_start must be positive, got %v", c.Physics.SpeedStart))
	}
	if c.Physics.SpeedIncrement < 0 {
		errs = append(errs, errors.New("physics.speed_increment must not be negative"))
	}
	if c.Physics.GroundRatio <= 0 || c.Physics.GroundRatio > 1 {
		errs = append(errs, fmt.Errorf("physics.ground_ratio must be in (0, 1], got %v", c.Physics.GroundRatio))
	}
	if c.Shield.HoldThresholdMS <= 0 {
		errs = append(errs, errors.New("shield.hold_threshold_ms must be positive"))
	}
	if c.Shield.MaxEnergy <= 0 {
		errs = append(errs, errors.New("shield.max_energy must be positive"))
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		errs = append(errs, errors.New("display cell size must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}

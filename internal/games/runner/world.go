// Package runner implements the shield runner: an endless runner whose
// character jumps over ground obstacles or shields against them.
//
// World is the pure simulation, stepped one tick at a time. Session wraps
// it with the menu/skins/playing/paused/gameover state machine and the
// persistence, audio and scheduling collaborators.
package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/shield-runner/internal/config"
	"github.com/vovakirdan/shield-runner/internal/core"
)

// Character is the player-controlled runner.
// X is fixed per viewport; Y is the centre of the body.
type Character struct {
	X, Y      float64
	VY        float64
	Radius    float64
	Grounded  bool
	Shielding bool
	Energy    float64 // Shield energy in [0, MaxEnergy]
	Skin      string
}

// Hitbox returns the square around the character inset by margin on every side.
func (c Character) Hitbox(margin float64) core.Box {
	return core.NewBox(c.X-c.Radius, c.Y-c.Radius, c.Radius*2, c.Radius*2).Inset(margin)
}

// World holds all state of a single run.
type World struct {
	cfg config.RunnerConfig
	rng *rand.Rand

	ViewW, ViewH float64
	GroundY      float64

	Hero           Character
	Frames         int
	Score          float64
	Speed          float64
	ShieldUnlocked bool
	Announcement   int // Ticks left on the unlock banner
	Over           bool

	obstacles *ObstacleField
	particles *ParticleSystem
	gesture   *Gesture
}

// NewWorld creates a world for the given viewport, reset and ready to run.
// Obstacle kinds and particles draw from a single RNG seeded with seed,
// so a seeded sequence of runs is reproducible.
func NewWorld(cfg config.RunnerConfig, seed int64, viewW, viewH float64) *World {
	rng := rand.New(rand.NewSource(seed))
	w := &World{
		cfg:       cfg,
		rng:       rng,
		obstacles: NewObstacleField(rng, cfg.Obstacles),
		particles: NewParticleSystem(rng, cfg.Particles),
		gesture:   NewGesture(cfg.HoldThreshold()),
	}
	w.Hero.Radius = cfg.Player.Radius
	w.Hero.Skin = cfg.Player.DefaultSkin
	w.Resize(viewW, viewH)
	w.Reset()
	return w
}

// Reset starts a new run: score, frame count, speed, shield, obstacles,
// particles and the character all return to their initial values.
// The skin and viewport are kept.
func (w *World) Reset() {
	w.Frames = 0
	w.Score = 0
	w.Speed = w.cfg.Physics.SpeedStart
	w.ShieldUnlocked = false
	w.Announcement = 0
	w.Over = false

	w.Hero.Y = w.GroundY - w.Hero.Radius
	w.Hero.VY = 0
	w.Hero.Grounded = true
	w.Hero.Shielding = false
	w.Hero.Energy = w.cfg.Shield.MaxEnergy

	w.obstacles.Reset()
	w.particles.Reset()
	w.gesture.Reset()
}

// Resize adapts the world to a new viewport. The ground line and the
// character's column are recomputed; a grounded character stays on the ground.
func (w *World) Resize(viewW, viewH float64) {
	w.ViewW = viewW
	w.ViewH = viewH
	w.GroundY = viewH * w.cfg.Physics.GroundRatio
	w.Hero.X = viewW * w.cfg.Player.XRatio

	if w.Hero.Grounded || w.Hero.Y+w.Hero.Radius > w.GroundY {
		w.Hero.Y = w.GroundY - w.Hero.Radius
		w.Hero.VY = 0
		w.Hero.Grounded = true
	}
}

// Config returns the configuration the world runs with.
func (w *World) Config() config.RunnerConfig {
	return w.cfg
}

// Obstacles returns the live obstacles, oldest first.
func (w *World) Obstacles() []Obstacle {
	return w.obstacles.Items()
}

// Particles returns the live particles.
func (w *World) Particles() []Particle {
	return w.particles.Items()
}

// Gesture exposes the press tracker for inspection.
func (w *World) Gesture() *Gesture {
	return w.gesture
}

// Press handles the start of a press. Before the shield is unlocked a
// grounded press jumps at once; afterwards the jump waits for a quick release.
func (w *World) Press(now time.Time) []Event {
	if w.Over {
		return nil
	}
	if w.ShieldUnlocked {
		w.gesture.Press(now, w.Hero.Grounded)
		return nil
	}
	w.gesture.Press(now, false)
	if w.Hero.Grounded {
		return []Event{w.jump()}
	}
	return nil
}

// Release handles the end of a press. A quick tap with a pending jump
// jumps if the character is still grounded. Shielding always stops.
func (w *World) Release(now time.Time) []Event {
	if w.Over {
		return nil
	}
	tap := w.gesture.Release(now)
	w.Hero.Shielding = false
	if w.ShieldUnlocked && tap && w.Hero.Grounded {
		return []Event{w.jump()}
	}
	return nil
}

// jump launches the character. The caller checks that it is grounded.
func (w *World) jump() Event {
	w.Hero.VY = w.cfg.Physics.JumpForce
	w.Hero.Grounded = false
	w.particles.Spawn(w.Hero.X, w.Hero.Y+w.Hero.Radius, 5, core.ColorWhite)
	return JumpedEvent{}
}

// Step advances the simulation by one tick.
func (w *World) Step(now time.Time) Outcome {
	if w.Over {
		return Outcome{Over: true}
	}

	var events []Event

	w.Frames++
	w.Score += w.cfg.Scoring.PerTick
	w.Speed += w.cfg.Physics.SpeedIncrement

	w.integrate()

	if w.Announcement > 0 {
		w.Announcement--
	}
	events = append(events, w.unlockShield()...)
	events = append(events, w.updateShield(now)...)

	if w.obstacles.Due(w.Frames, w.Speed) {
		w.obstacles.Spawn(w.ViewW)
	}
	w.obstacles.Advance(w.Speed)

	events = append(events, w.collide()...)

	w.particles.Update()

	return Outcome{Over: w.Over, Events: events}
}

// integrate applies gravity and clamps the character to the ground.
func (w *World) integrate() {
	h := &w.Hero
	h.VY += w.cfg.Physics.Gravity
	h.Y += h.VY
	if h.Y+h.Radius > w.GroundY {
		h.Y = w.GroundY - h.Radius
		h.VY = 0
		h.Grounded = true
	} else {
		h.Grounded = false
	}
}

// collide tests the character against every obstacle, oldest first.
// Shielded hits consume their obstacle; the first unshielded hit ends
// the run and stops evaluation.
func (w *World) collide() []Event {
	var events []Event
	hitbox := w.Hero.Hitbox(w.cfg.Player.HitboxMargin)

	for i := 0; i < w.obstacles.Len(); {
		o := w.obstacles.Items()[i]
		if !hitbox.Touches(o.Box(w.GroundY)) {
			i++
			continue
		}
		if w.Hero.Shielding {
			events = append(events, w.deflect(i))
			continue
		}

		w.Over = true
		w.particles.Spawn(w.Hero.X, w.Hero.Y, 20, core.ColorWhite)
		events = append(events, CrashedEvent{Obstacle: o, Score: w.Score})
		break
	}
	return events
}

package runner

import (
	"math/rand"

	"github.com/vovakirdan/shield-runner/internal/config"
	"github.com/vovakirdan/shield-runner/internal/core"
)

// Particle is a cosmetic spark. Gameplay never reads particles.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1.0 when spawned, removed at <= 0
	Size   float64
	Color  core.Color
}

// ParticleSystem owns the live particles.
type ParticleSystem struct {
	items []Particle
	rng   *rand.Rand
	cfg   config.RunnerParticles
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(rng *rand.Rand, cfg config.RunnerParticles) *ParticleSystem {
	return &ParticleSystem{
		items: make([]Particle, 0, 64),
		rng:   rng,
		cfg:   cfg,
	}
}

// Spawn emits count particles at (x, y).
// Velocity components are uniform in [-max/2, max/2], size in [0, maxSize).
func (ps *ParticleSystem) Spawn(x, y float64, count int, c core.Color) {
	for range count {
		ps.items = append(ps.items, Particle{
			X:     x,
			Y:     y,
			VX:    (ps.rng.Float64() - 0.5) * ps.cfg.MaxSpeed,
			VY:    (ps.rng.Float64() - 0.5) * ps.cfg.MaxSpeed,
			Life:  1.0,
			Size:  ps.rng.Float64() * ps.cfg.MaxSize,
			Color: c,
		})
	}
}

// Update advances every particle and removes the expired ones.
func (ps *ParticleSystem) Update() {
	alive := ps.items[:0]
	for _, p := range ps.items {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= ps.cfg.Decay
		if p.Life <= 0 {
			continue
		}
		alive = append(alive, p)
	}
	ps.items = alive
}

// Reset removes all particles.
func (ps *ParticleSystem) Reset() {
	ps.items = ps.items[:0]
}

// Items returns the live particles.
func (ps *ParticleSystem) Items() []Particle {
	return ps.items
}

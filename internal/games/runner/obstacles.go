package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/shield-runner/internal/config"
	"github.com/vovakirdan/shield-runner/internal/core"
)

// ObstacleKind selects the obstacle shape.
type ObstacleKind int

const (
	Spike ObstacleKind = iota
	Block
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	if k == Block {
		return "block"
	}
	return "spike"
}

// Obstacle is a ground hazard scrolling towards the character.
// It rests on the ground line; its box spans [X, X+Width] x [groundY-Height, groundY].
type Obstacle struct {
	X      float64 // Left edge
	Width  float64
	Height float64
	Kind   ObstacleKind
}

// Box returns the collision box for this obstacle.
func (o Obstacle) Box(groundY float64) core.Box {
	return core.NewBox(o.X, groundY-o.Height, o.Width, o.Height)
}

// Trailing returns the x-coordinate of the obstacle's right edge.
func (o Obstacle) Trailing() float64 {
	return o.X + o.Width
}

// ObstacleField handles spawning, movement and removal of obstacles.
// Obstacles are kept in insertion order, oldest first.
type ObstacleField struct {
	items []Obstacle
	rng   *rand.Rand
	cfg   config.RunnerObstacles
}

// NewObstacleField creates an empty field drawing kinds from rng.
func NewObstacleField(rng *rand.Rand, cfg config.RunnerObstacles) *ObstacleField {
	return &ObstacleField{
		items: make([]Obstacle, 0, 8),
		rng:   rng,
		cfg:   cfg,
	}
}

// Reset clears all obstacles.
func (f *ObstacleField) Reset() {
	f.items = f.items[:0]
}

// Cadence returns the spawn period in frames for the given speed.
// The period is floor(numerator / speed), never below 1.
func (f *ObstacleField) Cadence(speed float64) int {
	if speed <= 0 {
		return math.MaxInt32
	}
	period := int(math.Floor(f.cfg.CadenceNumerator / speed))
	if period < 1 {
		period = 1
	}
	return period
}

// Due reports whether an obstacle should spawn on this frame.
func (f *ObstacleField) Due(frames int, speed float64) bool {
	return frames%f.Cadence(speed) == 0 || frames == f.cfg.WarmupFrame
}

// Spawn appends a new obstacle of uniformly random kind at x.
func (f *ObstacleField) Spawn(x float64) Obstacle {
	o := Obstacle{X: x, Width: f.cfg.Width, Kind: Spike, Height: f.cfg.SpikeHeight}
	if f.rng.Intn(2) == 1 {
		o.Kind = Block
		o.Height = f.cfg.BlockHeight
	}
	f.items = append(f.items, o)
	return o
}

// Advance moves every obstacle left by speed and drops those whose
// trailing edge has passed x = 0. It returns the number removed.
func (f *ObstacleField) Advance(speed float64) int {
	kept := f.items[:0]
	for _, o := range f.items {
		o.X -= speed
		if o.Trailing() < 0 {
			continue
		}
		kept = append(kept, o)
	}
	removed := len(f.items) - len(kept)
	f.items = kept
	return removed
}

// Remove deletes the obstacle at index i, preserving order.
func (f *ObstacleField) Remove(i int) Obstacle {
	o := f.items[i]
	f.items = append(f.items[:i], f.items[i+1:]...)
	return o
}

// Items returns the current obstacles. The slice must not be retained across ticks.
func (f *ObstacleField) Items() []Obstacle {
	return f.items
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.items)
}

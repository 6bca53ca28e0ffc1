package runner

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shield-runner/internal/config"
	"github.com/vovakirdan/shield-runner/internal/core"
)

func TestParticleSpawnRanges(t *testing.T) {
	ps := NewParticleSystem(rand.New(rand.NewSource(3)), config.DefaultRunnerConfig().Particles)

	ps.Spawn(10, 20, 500, core.ColorWhite)
	require.Len(t, ps.Items(), 500)

	for _, p := range ps.Items() {
		assert.Equal(t, 10.0, p.X)
		assert.Equal(t, 20.0, p.Y)
		assert.Equal(t, 1.0, p.Life)
		assert.Equal(t, core.ColorWhite, p.Color)
		assert.GreaterOrEqual(t, p.VX, -2.5)
		assert.Less(t, p.VX, 2.5)
		assert.GreaterOrEqual(t, p.VY, -2.5)
		assert.Less(t, p.VY, 2.5)
		assert.GreaterOrEqual(t, p.Size, 0.0)
		assert.Less(t, p.Size, 3.0)
	}
}

func TestParticleLifetime(t *testing.T) {
	ps := NewParticleSystem(rand.New(rand.NewSource(3)), config.DefaultRunnerConfig().Particles)
	ps.Spawn(0, 0, 10, core.ColorBrightGreen)

	first := ps.Items()[0]
	ps.Update()
	moved := ps.Items()[0]
	assert.InDelta(t, first.X+first.VX, moved.X, 1e-9)
	assert.InDelta(t, first.Y+first.VY, moved.Y, 1e-9)
	assert.InDelta(t, 0.95, moved.Life, 1e-9)

	for range 18 {
		ps.Update()
	}
	assert.Len(t, ps.Items(), 10, "alive after 19 updates")

	ps.Update()
	ps.Update()
	assert.Empty(t, ps.Items(), "expired after 21 updates")
}

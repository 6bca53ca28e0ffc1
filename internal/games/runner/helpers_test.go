package runner

import (
	"time"

	"github.com/vovakirdan/shield-runner/internal/config"
	"github.com/vovakirdan/shield-runner/internal/core"
)

const (
	testViewW = 800
	testViewH = 600
	frame     = 16 * time.Millisecond
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type recordingAudio struct {
	enabled bool
	cues    []core.Cue
	stops   int
}

func (a *recordingAudio) Play(cue core.Cue)       { a.cues = append(a.cues, cue) }
func (a *recordingAudio) StopMusic()              { a.stops++ }
func (a *recordingAudio) SetEnabled(enabled bool) { a.enabled = enabled }
func (a *recordingAudio) Enabled() bool           { return a.enabled }

func (a *recordingAudio) count(cue core.Cue) int {
	n := 0
	for _, c := range a.cues {
		if c == cue {
			n++
		}
	}
	return n
}

func (a *recordingAudio) last() core.Cue {
	if len(a.cues) == 0 {
		return core.CueNone
	}
	return a.cues[len(a.cues)-1]
}

type mapPrefs struct {
	values map[string]string
	broken bool
}

func newMapPrefs(kv ...string) *mapPrefs {
	p := &mapPrefs{values: make(map[string]string)}
	for i := 0; i+1 < len(kv); i += 2 {
		p.values[kv[i]] = kv[i+1]
	}
	return p
}

func (p *mapPrefs) Get(key, fallback string) string {
	if p.broken {
		return fallback
	}
	if v, ok := p.values[key]; ok {
		return v
	}
	return fallback
}

func (p *mapPrefs) Set(key, value string) bool {
	if p.broken {
		return false
	}
	p.values[key] = value
	return true
}

func newTestWorld() *World {
	return NewWorld(config.DefaultRunnerConfig(), 42, testViewW, testViewH)
}

// stepFor steps the world n times, advancing the clock one frame per tick.
func stepFor(w *World, clock *fakeClock, n int) []Event {
	var events []Event
	for range n {
		clock.Advance(frame)
		events = append(events, w.Step(clock.Now()).Events...)
	}
	return events
}

// obstacleOnHero returns an obstacle that overlaps the grounded character
// after one tick of scrolling.
func obstacleOnHero(w *World, kind ObstacleKind) Obstacle {
	cfg := w.Config().Obstacles
	h := cfg.SpikeHeight
	if kind == Block {
		h = cfg.BlockHeight
	}
	return Obstacle{X: w.Hero.X + w.Speed, Width: cfg.Width, Height: h, Kind: kind}
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, ev := range events {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}

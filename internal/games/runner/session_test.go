package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shield-runner/internal/config"
	"github.com/vovakirdan/shield-runner/internal/core"
	"github.com/vovakirdan/shield-runner/internal/loop"
)

type sessionHarness struct {
	s     *Session
	sched *loop.Manual
	audio *recordingAudio
	prefs *mapPrefs
	clock *fakeClock
}

func newHarness(t *testing.T, prefs *mapPrefs) *sessionHarness {
	t.Helper()
	h := &sessionHarness{
		sched: loop.NewManual(),
		audio: &recordingAudio{},
		prefs: prefs,
		clock: newFakeClock(),
	}
	h.s = NewSession(Options{
		Config:    config.DefaultRunnerConfig(),
		Seed:      42,
		ViewW:     testViewW,
		ViewH:     testViewH,
		Scheduler: h.sched,
		Audio:     h.audio,
		Prefs:     prefs,
		Clock:     h.clock,
	})
	return h
}

// run drives up to n scheduled ticks, one frame apart.
func (h *sessionHarness) run(n int) int {
	return h.sched.Run(n, func() {
		h.clock.Advance(frame)
		h.s.Tick()
	})
}

// crash places an obstacle on the character and runs one tick.
func (h *sessionHarness) crash(t *testing.T) {
	t.Helper()
	w := h.s.World()
	w.obstacles.items = append(w.obstacles.items, obstacleOnHero(w, Spike))
	h.run(1)
	require.Equal(t, ModeGameOver, h.s.Mode())
}

func TestSessionStartsInMenu(t *testing.T) {
	h := newHarness(t, newMapPrefs(KeyBestScore, "321", KeySkin, "human"))

	assert.Equal(t, ModeMenu, h.s.Mode())
	assert.Equal(t, 321, h.s.Best())
	assert.Equal(t, "human", h.s.Skin())
	assert.True(t, h.s.SoundEnabled(), "sound defaults to on")
	assert.Equal(t, core.CueMenuMusic, h.audio.last())
	assert.False(t, h.sched.Running())
}

func TestSessionLoadsMutedSound(t *testing.T) {
	h := newHarness(t, newMapPrefs(KeySound, "0"))

	assert.False(t, h.s.SoundEnabled())
	assert.Zero(t, h.audio.count(core.CueMenuMusic), "no music while muted")
}

func TestSessionStartResetsRun(t *testing.T) {
	h := newHarness(t, newMapPrefs())

	h.s.Start()
	require.Equal(t, ModePlaying, h.s.Mode())
	assert.True(t, h.sched.Running())
	assert.Equal(t, core.CueRunMusic, h.audio.last())
	assert.Equal(t, 1, h.audio.count(core.CueButton))

	assert.Equal(t, 30, h.run(30))
	assert.InDelta(t, 3.0, h.s.World().Score, 1e-9)

	h.crash(t)
	h.s.Restart()
	assert.Equal(t, ModePlaying, h.s.Mode())
	assert.Zero(t, h.s.World().Score, "score resets on entering playing")
	assert.Zero(t, h.s.World().Frames)
	assert.Empty(t, h.s.World().Obstacles())
	assert.Empty(t, h.s.World().Particles())
	assert.Equal(t, 100.0, h.s.World().Hero.Energy)
}

func TestSessionScoreNonDecreasing(t *testing.T) {
	h := newHarness(t, newMapPrefs())
	h.s.Start()

	prev := 0.0
	h.sched.Run(5000, func() {
		h.clock.Advance(frame)
		h.s.Tick()
		require.GreaterOrEqual(t, h.s.World().Score, prev)
		prev = h.s.World().Score
	})
}

func TestSessionGameOverUpdatesBest(t *testing.T) {
	prefs := newMapPrefs(KeyBestScore, "100")
	h := newHarness(t, prefs)
	h.s.Start()

	h.s.World().Score = 123.7
	h.crash(t)

	assert.False(t, h.sched.Running(), "scheduler stopped on game over")
	assert.Equal(t, 123, h.s.LastScore())
	assert.Equal(t, 123, h.s.Best())
	assert.Equal(t, "123", prefs.values[KeyBestScore])
	assert.Equal(t, core.CueDeath, h.audio.last())

	// Stray ticks after game over are dropped.
	score := h.s.World().Score
	h.s.Tick()
	assert.Equal(t, score, h.s.World().Score)
}

func TestSessionGameOverKeepsHigherBest(t *testing.T) {
	prefs := newMapPrefs(KeyBestScore, "500")
	h := newHarness(t, prefs)
	h.s.Start()

	h.s.World().Score = 450.3
	h.crash(t)

	assert.Equal(t, 450, h.s.LastScore())
	assert.Equal(t, 500, h.s.Best())
	assert.Equal(t, "500", prefs.values[KeyBestScore])
}

func TestSessionGameOverEqualScoreDoesNotPersist(t *testing.T) {
	prefs := newMapPrefs(KeyBestScore, "40")
	h := newHarness(t, prefs)
	h.s.Start()

	h.s.World().Score = 40.5
	delete(prefs.values, KeyBestScore)
	h.crash(t)

	assert.Equal(t, 40, h.s.Best())
	_, written := prefs.values[KeyBestScore]
	assert.False(t, written, "best only persisted when exceeded")
}

func TestSessionPauseAndResume(t *testing.T) {
	h := newHarness(t, newMapPrefs())
	h.s.Start()
	h.run(10)

	h.s.TogglePause()
	assert.Equal(t, ModePaused, h.s.Mode())
	assert.False(t, h.sched.Running())
	assert.Equal(t, 0, h.run(10), "no ticks while paused")

	frames := h.s.World().Frames
	h.s.Tick() // A stray tick must not advance a paused run
	assert.Equal(t, frames, h.s.World().Frames)

	h.s.TogglePause()
	assert.Equal(t, ModePlaying, h.s.Mode())
	assert.True(t, h.sched.Running())
	assert.Equal(t, core.CueRunMusic, h.audio.last())
	h.run(5)
	assert.Equal(t, frames+5, h.s.World().Frames, "resume keeps the run")
}

func TestSessionBlurPauses(t *testing.T) {
	h := newHarness(t, newMapPrefs())

	h.s.Pause()
	assert.Equal(t, ModeMenu, h.s.Mode(), "pause only applies to a run")

	h.s.Start()
	clicks := h.audio.count(core.CueButton)
	h.s.Pause()
	assert.Equal(t, ModePaused, h.s.Mode())
	assert.Equal(t, clicks, h.audio.count(core.CueButton), "blur pause is silent")
}

func TestSessionTransitions(t *testing.T) {
	h := newHarness(t, newMapPrefs())

	h.s.OpenSkins()
	assert.Equal(t, ModeSkins, h.s.Mode())
	assert.Equal(t, core.CueMenuMusic, h.audio.last(), "menu music keeps playing on skins")

	h.s.Start()
	assert.Equal(t, ModeSkins, h.s.Mode(), "cannot start from skins")

	h.s.Home()
	assert.Equal(t, ModeMenu, h.s.Mode())

	h.s.Home()
	assert.Equal(t, ModeMenu, h.s.Mode())

	h.s.Start()
	h.s.OpenSkins()
	h.s.Home()
	assert.Equal(t, ModePlaying, h.s.Mode(), "skins and home are unavailable mid-run")

	h.s.TogglePause()
	h.s.Start()
	assert.Equal(t, ModePaused, h.s.Mode(), "start does not apply while paused")

	h.s.Home()
	assert.Equal(t, ModeMenu, h.s.Mode())
	assert.False(t, h.sched.Running())

	h.s.Start()
	h.crash(t)
	h.s.Home()
	assert.Equal(t, ModeMenu, h.s.Mode())
	assert.Equal(t, core.CueMenuMusic, h.audio.last())
}

func TestSessionSchedulerNeverDoubleStarts(t *testing.T) {
	h := newHarness(t, newMapPrefs())

	h.s.Start()
	h.s.TogglePause()
	h.s.TogglePause()
	h.s.TogglePause()
	h.s.Home()
	h.s.Start()
	h.crash(t)

	assert.Equal(t, h.sched.Starts, h.sched.Stops, "every start is matched by a stop")
}

func TestSessionSetSkin(t *testing.T) {
	prefs := newMapPrefs()
	h := newHarness(t, prefs)

	assert.Equal(t, "animal", h.s.SetSkin("animal"))
	assert.Equal(t, "animal", h.s.Skin())
	assert.Equal(t, "animal", prefs.values[KeySkin])

	assert.Equal(t, "ball", h.s.SetSkin("dragon"), "unknown skins resolve to ball")
	assert.Equal(t, "ball", prefs.values[KeySkin])
}

func TestSessionUnknownStoredSkin(t *testing.T) {
	h := newHarness(t, newMapPrefs(KeySkin, "dragon"))
	assert.Equal(t, "ball", h.s.Skin())
}

func TestSessionToggleMute(t *testing.T) {
	prefs := newMapPrefs()
	h := newHarness(t, prefs)

	h.s.ToggleMute()
	assert.False(t, h.s.SoundEnabled())
	assert.Equal(t, "0", prefs.values[KeySound])
	stops := h.audio.stops

	h.s.Start()
	assert.NotEqual(t, core.CueRunMusic, h.audio.last(), "no run music while muted")

	h.s.ToggleMute()
	assert.True(t, h.s.SoundEnabled())
	assert.Equal(t, "1", prefs.values[KeySound])
	assert.Equal(t, core.CueRunMusic, h.audio.last())
	assert.GreaterOrEqual(t, h.audio.stops, stops)
}

func TestSessionInputOnlyWhilePlaying(t *testing.T) {
	h := newHarness(t, newMapPrefs())

	h.s.StartInput()
	h.s.EndInput()
	assert.Zero(t, h.audio.count(core.CueJump))

	h.s.Start()
	h.s.StartInput()
	assert.Equal(t, 1, h.audio.count(core.CueJump))
	assert.Equal(t, -14.0, h.s.World().Hero.VY)
	h.s.EndInput()

	h.s.TogglePause()
	vy := h.s.World().Hero.VY
	h.s.StartInput()
	assert.Equal(t, vy, h.s.World().Hero.VY, "paused input ignored")
}

func TestSessionShieldCue(t *testing.T) {
	h := newHarness(t, newMapPrefs())
	h.s.Start()
	h.s.World().Score = 200
	h.run(1)
	require.True(t, h.s.World().ShieldUnlocked)

	h.s.StartInput()
	h.run(30) // ~480ms held
	h.s.EndInput()

	assert.Equal(t, 1, h.audio.count(core.CueShield))
	assert.Zero(t, h.audio.count(core.CueJump))
	assert.Less(t, h.s.World().Hero.Energy, 100.0)
}

func TestSessionWithoutStorage(t *testing.T) {
	s := NewSession(Options{
		Config: config.DefaultRunnerConfig(),
		ViewW:  testViewW,
		ViewH:  testViewH,
	})

	assert.Equal(t, 0, s.Best())
	assert.Equal(t, "ball", s.Skin())
	assert.True(t, s.SoundEnabled())

	assert.NotPanics(t, func() {
		s.SetSkin("human")
		s.ToggleMute()
		s.Start()
		s.World().Score = 50
		w := s.World()
		w.obstacles.items = append(w.obstacles.items, obstacleOnHero(w, Block))
		s.Tick()
	})
	assert.Equal(t, ModeGameOver, s.Mode())
	assert.Equal(t, 50, s.Best(), "best kept in memory when it cannot be saved")
}

func TestSessionBrokenStorage(t *testing.T) {
	prefs := newMapPrefs(KeyBestScore, "77", KeySkin, "human", KeySound, "0")
	prefs.broken = true
	h := newHarness(t, prefs)

	assert.Equal(t, 0, h.s.Best())
	assert.Equal(t, "ball", h.s.Skin())
	assert.True(t, h.s.SoundEnabled())
}

func TestSessionIgnoresGarbageBest(t *testing.T) {
	h := newHarness(t, newMapPrefs(KeyBestScore, "lots"))
	assert.Equal(t, 0, h.s.Best())
}

func TestSessionResize(t *testing.T) {
	h := newHarness(t, newMapPrefs())
	h.s.Resize(1000, 500)

	w := h.s.World()
	assert.InDelta(t, 400, w.GroundY, 1e-9)
	assert.InDelta(t, 150, w.Hero.X, 1e-9)
	assert.InDelta(t, 385, w.Hero.Y, 1e-9)
}

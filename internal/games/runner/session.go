package runner

import (
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shield-runner/internal/config"
	"github.com/vovakirdan/shield-runner/internal/core"
	"github.com/vovakirdan/shield-runner/internal/loop"
)

// Persisted preference keys.
const (
	KeyBestScore = "best_score"
	KeySkin      = "skin"
	KeySound     = "sound"
)

// Mode is the current screen of the session.
type Mode int

const (
	ModeMenu Mode = iota
	ModeSkins
	ModePlaying
	ModePaused
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeSkins:
		return "skins"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "gameover"
	default:
		return "menu"
	}
}

// Audio plays cues. Implementations never fail the caller.
type Audio interface {
	Play(cue core.Cue)
	StopMusic()
	SetEnabled(enabled bool)
	Enabled() bool
}

// Prefs is a string key/value store. Get returns fallback when the key is
// missing or the store is unavailable; Set reports whether the value was saved.
type Prefs interface {
	Get(key, fallback string) string
	Set(key, value string) bool
}

// Options configures a new Session. Nil collaborators are replaced with
// silent defaults.
type Options struct {
	Config    config.RunnerConfig
	Seed      int64
	ViewW     float64
	ViewH     float64
	Scheduler loop.Scheduler
	Audio     Audio
	Prefs     Prefs
	Clock     Clock
	Logger    *log.Logger
}

// Session is the screen state machine around a World.
// It is not safe for concurrent use; the tick driver and the input handlers
// must run on the same goroutine.
type Session struct {
	world *World
	mode  Mode
	best  int
	last  int // Floored score of the last finished run

	sched loop.Scheduler
	audio Audio
	prefs Prefs
	clock Clock
	log   *log.Logger
}

// NewSession creates a session on the menu screen. The best score, skin
// and sound flag are read from prefs.
func NewSession(opts Options) *Session {
	s := &Session{
		mode:  ModeMenu,
		sched: opts.Scheduler,
		audio: opts.Audio,
		prefs: opts.Prefs,
		clock: opts.Clock,
		log:   opts.Logger,
	}
	if s.sched == nil {
		s.sched = loop.NewManual()
	}
	if s.audio == nil {
		s.audio = &silentAudio{}
	}
	if s.prefs == nil {
		s.prefs = noPrefs{}
	}
	if s.clock == nil {
		s.clock = SystemClock{}
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}

	s.world = NewWorld(opts.Config, opts.Seed, opts.ViewW, opts.ViewH)
	s.world.Hero.Skin = ResolveSkin(s.prefs.Get(KeySkin, DefaultSkin)).ID()

	if best, err := strconv.Atoi(s.prefs.Get(KeyBestScore, "0")); err == nil && best > 0 {
		s.best = best
	}
	s.audio.SetEnabled(s.prefs.Get(KeySound, "1") != "0")
	s.updateMusic()

	return s
}

// Mode returns the current screen.
func (s *Session) Mode() Mode { return s.mode }

// World returns the simulation.
func (s *Session) World() *World { return s.world }

// Best returns the best floored score across sessions.
func (s *Session) Best() int { return s.best }

// LastScore returns the floored score of the last finished run.
func (s *Session) LastScore() int { return s.last }

// Skin returns the selected skin ID.
func (s *Session) Skin() string { return s.world.Hero.Skin }

// SoundEnabled reports whether audio is on.
func (s *Session) SoundEnabled() bool { return s.audio.Enabled() }

// Start begins a new run from the menu or the game over screen.
func (s *Session) Start() {
	if s.mode != ModeMenu && s.mode != ModeGameOver {
		return
	}
	s.click()
	s.sched.Stop()
	s.world.Reset()
	s.mode = ModePlaying
	s.updateMusic()
	s.sched.Start()
	s.log.Info("run started", "skin", s.world.Hero.Skin, "best", s.best)
}

// Restart is Start under its game over name.
func (s *Session) Restart() {
	s.Start()
}

// Home returns to the menu without touching the last run.
func (s *Session) Home() {
	switch s.mode {
	case ModeSkins, ModePaused, ModeGameOver:
	default:
		return
	}
	s.click()
	s.sched.Stop()
	s.mode = ModeMenu
	s.updateMusic()
}

// OpenSkins shows the skin picker.
func (s *Session) OpenSkins() {
	if s.mode != ModeMenu {
		return
	}
	s.click()
	s.mode = ModeSkins
	s.updateMusic()
}

// SetSkin selects and persists a skin. Unknown IDs resolve to the default.
// It returns the ID actually selected.
func (s *Session) SetSkin(id string) string {
	s.click()
	resolved := ResolveSkin(id).ID()
	if resolved != id {
		s.log.Warn("unknown skin, using default", "skin", id, "default", resolved)
	}
	s.world.Hero.Skin = resolved
	s.save(KeySkin, resolved)
	return resolved
}

// TogglePause pauses a run or resumes a paused one.
func (s *Session) TogglePause() {
	switch s.mode {
	case ModePlaying:
		s.click()
		s.pause()
	case ModePaused:
		s.click()
		s.mode = ModePlaying
		s.updateMusic()
		s.sched.Start()
	}
}

// Pause suspends a run when the window loses focus or is hidden.
func (s *Session) Pause() {
	if s.mode == ModePlaying {
		s.pause()
	}
}

func (s *Session) pause() {
	s.sched.Stop()
	s.mode = ModePaused
	s.audio.StopMusic()
}

// ToggleMute flips and persists the sound flag.
func (s *Session) ToggleMute() {
	s.click()
	enabled := !s.audio.Enabled()
	s.audio.SetEnabled(enabled)
	if enabled {
		s.updateMusic()
		s.save(KeySound, "1")
	} else {
		s.audio.StopMusic()
		s.save(KeySound, "0")
	}
}

// StartInput handles a press. Ignored outside a run.
func (s *Session) StartInput() {
	if s.mode != ModePlaying {
		return
	}
	s.handle(s.world.Press(s.clock.Now()))
}

// EndInput handles a release. Ignored outside a run.
func (s *Session) EndInput() {
	if s.mode != ModePlaying {
		return
	}
	s.handle(s.world.Release(s.clock.Now()))
}

// Tick advances the run by one step. A tick arriving outside a run is dropped.
func (s *Session) Tick() {
	if s.mode != ModePlaying {
		return
	}
	out := s.world.Step(s.clock.Now())
	s.handle(out.Events)
	if out.Over {
		s.gameOver()
	}
}

// gameOver ends the run and records the best score.
func (s *Session) gameOver() {
	s.sched.Stop()
	s.mode = ModeGameOver
	s.audio.StopMusic()
	s.audio.Play(core.CueDeath)

	s.last = int(math.Floor(s.world.Score))
	if s.last > s.best {
		s.best = s.last
		s.save(KeyBestScore, strconv.Itoa(s.best))
	}
	s.log.Info("run over", "score", s.last, "best", s.best, "frames", s.world.Frames)
}

// Resize forwards a viewport change to the world.
func (s *Session) Resize(viewW, viewH float64) {
	s.world.Resize(viewW, viewH)
}

// Render draws the world.
func (s *Session) Render(dst core.Surface) {
	s.world.Render(dst)
}

func (s *Session) handle(events []Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case JumpedEvent:
			s.audio.Play(core.CueJump)
		case ShieldRaisedEvent:
			s.audio.Play(core.CueShield)
		case ShieldUnlockedEvent:
			s.log.Info("shield unlocked", "score", int(e.Score))
		case DeflectedEvent:
			s.log.Debug("obstacle deflected", "kind", e.Obstacle.Kind, "energy", e.Energy)
		case CrashedEvent:
			s.log.Debug("crashed", "kind", e.Obstacle.Kind, "x", e.Obstacle.X)
		}
	}
}

// updateMusic plays the track that belongs to the current screen.
func (s *Session) updateMusic() {
	if !s.audio.Enabled() {
		return
	}
	switch s.mode {
	case ModePlaying:
		s.audio.Play(core.CueRunMusic)
	case ModeMenu, ModeSkins:
		s.audio.Play(core.CueMenuMusic)
	default:
		s.audio.StopMusic()
	}
}

func (s *Session) click() {
	s.audio.Play(core.CueButton)
}

func (s *Session) save(key, value string) {
	if !s.prefs.Set(key, value) {
		s.log.Warn("preference not saved", "key", key)
	}
}

// silentAudio stands in when no audio service is configured.
type silentAudio struct {
	enabled bool
}

func (a *silentAudio) Play(core.Cue)      {}
func (a *silentAudio) StopMusic()         {}
func (a *silentAudio) SetEnabled(on bool) { a.enabled = on }
func (a *silentAudio) Enabled() bool      { return a.enabled }

// noPrefs stands in when no persistence is configured.
type noPrefs struct{}

func (noPrefs) Get(_, fallback string) string { return fallback }
func (noPrefs) Set(string, string) bool       { return false }

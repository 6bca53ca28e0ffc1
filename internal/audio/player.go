// Package audio plays the runner's sound cues.
//
// Every cue is synthesized with beep, so there are no asset files. The
// speaker is opened lazily on the first cue; if that fails the player stays
// silent for the rest of the process instead of reporting errors.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/shield-runner/internal/core"
)

// output is the device the mixer is played on.
type output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Close()
}

// speakerOutput plays through the system speaker.
type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error { return speaker.Init(sr, bufferSize) }
func (speakerOutput) Play(s beep.Streamer)                          { speaker.Play(s) }
func (speakerOutput) Lock()                                         { speaker.Lock() }
func (speakerOutput) Unlock()                                       { speaker.Unlock() }
func (speakerOutput) Close()                                        { speaker.Close() }

// Player plays cues on the speaker. It is safe for concurrent use.
type Player struct {
	mu          sync.Mutex
	out         output
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicCue    core.Cue
	enabled     bool
	initialized bool
	failed      bool
	log         *log.Logger
}

// NewPlayer creates an enabled player. The speaker is not touched until
// the first cue is played.
func NewPlayer(logger *log.Logger) *Player {
	return newPlayer(speakerOutput{}, logger)
}

func newPlayer(out output, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		out:     out,
		mixer:   &beep.Mixer{},
		enabled: true,
		log:     logger,
	}
}

// ensureInit opens the speaker once. Caller holds p.mu.
func (p *Player) ensureInit() bool {
	if p.initialized {
		return true
	}
	if p.failed {
		return false
	}

	// Initialize speaker with sample rate and buffer size
	if err := p.out.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.failed = true
		p.log.Warn("audio unavailable, continuing silently", "error", err)
		return false
	}
	p.out.Play(p.mixer)
	p.initialized = true
	return true
}

// Play starts a cue. Music cues replace the current track; replaying the
// track that is already running leaves it alone.
func (p *Player) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || cue == core.CueNone || !p.ensureInit() {
		return
	}

	if cue.IsMusic() {
		if p.music != nil && p.musicCue == cue {
			return
		}
		p.out.Lock()
		p.stopMusicLocked()
		p.music = &beep.Ctrl{Streamer: cueStreamer(cue, sampleRate), Paused: false}
		p.musicCue = cue
		p.mixer.Add(p.music)
		p.out.Unlock()
		return
	}

	s := cueStreamer(cue, sampleRate)
	if s == nil {
		return
	}
	p.out.Lock()
	p.mixer.Add(s)
	p.out.Unlock()
}

// StopMusic silences the current track.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.out.Lock()
	p.stopMusicLocked()
	p.out.Unlock()
}

// stopMusicLocked detaches the track. A Ctrl without a streamer reports
// that it is drained, so the mixer drops it. Caller holds the output lock.
func (p *Player) stopMusicLocked() {
	if p.music == nil {
		return
	}
	p.music.Streamer = nil
	p.music = nil
	p.musicCue = core.CueNone
}

// SetEnabled turns sound on or off. Turning it off stops everything.
func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enabled = enabled
	if enabled || !p.initialized {
		return
	}
	p.out.Lock()
	p.stopMusicLocked()
	p.mixer.Clear()
	p.out.Unlock()
}

// Enabled reports whether sound is on.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil
	}
	p.out.Lock()
	p.stopMusicLocked()
	p.mixer.Clear()
	p.out.Unlock()
	p.out.Close()
	p.initialized = false
	return nil
}

// Nop is a silent player that only remembers the enabled flag.
// Used where there is no local speaker, such as SSH sessions.
type Nop struct {
	mu      sync.Mutex
	enabled bool
}

// NewNop creates an enabled silent player.
func NewNop() *Nop {
	return &Nop{enabled: true}
}

func (n *Nop) Play(core.Cue) {}
func (n *Nop) StopMusic()    {}

func (n *Nop) SetEnabled(enabled bool) {
	n.mu.Lock()
	n.enabled = enabled
	n.mu.Unlock()
}

func (n *Nop) Enabled() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.enabled
}

func (n *Nop) Close() error { return nil }

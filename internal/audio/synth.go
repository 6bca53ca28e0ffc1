package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/shield-runner/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Relative cue volumes.
const (
	musicVolume  = 0.4
	buttonVolume = 0.7
	shieldVolume = 0.45
	effectVolume = 1.0
)

// newVolume scales s linearly by vol.
// math.Log2(0) is -Inf, so zero volume is silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// cueStreamer builds the sound for a cue. Music cues never end.
func cueStreamer(cue core.Cue, sr beep.SampleRate) beep.Streamer {
	switch cue {
	case core.CueButton:
		return newVolume(blip(sr, 880, 60*time.Millisecond), buttonVolume)
	case core.CueJump:
		return newVolume(newSweep(sr, 300, 720, 160*time.Millisecond), effectVolume*0.5)
	case core.CueShield:
		return newVolume(beep.Seq(
			blip(sr, 660, 70*time.Millisecond),
			blip(sr, 990, 70*time.Millisecond),
		), shieldVolume)
	case core.CueDeath:
		return newVolume(newSweep(sr, 420, 70, 600*time.Millisecond), effectVolume*0.6)
	case core.CueMenuMusic:
		return newVolume(newArpeggio(sr, menuMelody, 220*time.Millisecond), musicVolume)
	case core.CueRunMusic:
		return newVolume(newPulse(sr, 150*time.Millisecond), musicVolume)
	default:
		return nil
	}
}

// blip is a short sine tone with a linear fade out.
func blip(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(sr.N(d))
	}
	return newFade(beep.Take(sr.N(d), sine), sr.N(d))
}

// fade multiplies a finite stream by a linear ramp from 1 to 0.
type fade struct {
	s     beep.Streamer
	pos   int
	total int
}

func newFade(s beep.Streamer, total int) *fade {
	return &fade{s: s, total: total}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := range n {
		vol := 1 - float64(f.pos)/float64(f.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

// sweep glides exponentially from one frequency to another and fades out.
type sweep struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

func newSweep(sr beep.SampleRate, from, to float64, d time.Duration) *sweep {
	return &sweep{sr: sr, from: from, to: to, total: sr.N(d)}
}

func (g *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.from * math.Pow(g.to/g.from, progress)
		sample := 0.5 * (1 - progress) * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *sweep) Err() error { return nil }

// menuMelody is a slow A minor arpeggio.
var menuMelody = []float64{220.00, 261.63, 329.63, 440.00, 329.63, 261.63}

// arpeggio loops a melody forever, one note per step with a soft attack.
type arpeggio struct {
	sr    beep.SampleRate
	notes []float64
	step  int
	pos   int
	phase float64
}

func newArpeggio(sr beep.SampleRate, notes []float64, step time.Duration) *arpeggio {
	return &arpeggio{sr: sr, notes: notes, step: sr.N(step)}
}

func (g *arpeggio) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := g.notes[(g.pos/g.step)%len(g.notes)]
		inNote := float64(g.pos%g.step) / float64(g.step)
		env := math.Min(inNote*10, 1) * (1 - inNote*0.6)

		sample := 0.25 * env * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += note / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *arpeggio) Err() error { return nil }

// pulse is a driving kick and bass loop for the run.
type pulse struct {
	sr    beep.SampleRate
	beat  int
	pos   int
	phase float64
}

func newPulse(sr beep.SampleRate, beat time.Duration) *pulse {
	return &pulse{sr: sr, beat: sr.N(beat)}
}

func (g *pulse) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := g.beat / 2
	for i := range samples {
		beatPos := g.pos % g.beat
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if (g.pos/g.beat)%2 == 0 && beatPos < kickLen {
			env := 1 - float64(beatPos)/float64(kickLen)
			kick = 0.4 * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}

		// Bass alternates between root and fifth every four beats
		bassFreq := 110.0
		if (g.pos/(g.beat*4))%2 == 1 {
			bassFreq = 164.81
		}
		bass := 0.12 * math.Sin(2*math.Pi*g.phase)
		g.phase += bassFreq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *pulse) Err() error { return nil }

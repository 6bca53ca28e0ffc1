package core

// Cue identifies a sound the runner asks the audio service to play.
type Cue int

const (
	CueNone Cue = iota
	CueMenuMusic
	CueRunMusic
	CueButton
	CueJump
	CueShield
	CueDeath
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueMenuMusic:
		return "menu-music"
	case CueRunMusic:
		return "run-music"
	case CueButton:
		return "button"
	case CueJump:
		return "jump"
	case CueShield:
		return "shield"
	case CueDeath:
		return "death"
	default:
		return "none"
	}
}

// IsMusic reports whether the cue is a looping music track.
func (c Cue) IsMusic() bool {
	return c == CueMenuMusic || c == CueRunMusic
}

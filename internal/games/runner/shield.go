package runner

import (
	"time"

	"github.com/vovakirdan/shield-runner/internal/core"
)

// ShieldState is the phase of the shield mechanic.
type ShieldState int

const (
	ShieldLocked ShieldState = iota
	ShieldIdle
	ShieldActive
)

// String returns a human-readable name for the state.
func (s ShieldState) String() string {
	switch s {
	case ShieldIdle:
		return "unlocked-idle"
	case ShieldActive:
		return "unlocked-shielding"
	default:
		return "locked"
	}
}

// ShieldState returns the current phase of the shield.
func (w *World) ShieldState() ShieldState {
	switch {
	case !w.ShieldUnlocked:
		return ShieldLocked
	case w.Hero.Shielding:
		return ShieldActive
	default:
		return ShieldIdle
	}
}

// unlockShield fires the one-time unlock once the score reaches the threshold.
func (w *World) unlockShield() []Event {
	if w.ShieldUnlocked || w.Score < w.cfg.Shield.UnlockScore {
		return nil
	}
	w.ShieldUnlocked = true
	w.Announcement = w.cfg.Shield.AnnouncementTicks
	w.particles.Spawn(w.Hero.X, w.Hero.Y, 30, core.ColorBrightGreen)
	return []Event{ShieldUnlockedEvent{Score: w.Score}}
}

// updateShield drains energy while a hold is active and regenerates it otherwise.
func (w *World) updateShield(now time.Time) []Event {
	if !w.ShieldUnlocked {
		return nil
	}

	s := w.cfg.Shield
	var events []Event

	holding := w.gesture.Holding(now)
	if holding && !w.gesture.Exhausted() && w.Hero.Energy > 0 {
		if !w.Hero.Shielding {
			events = append(events, ShieldRaisedEvent{Energy: w.Hero.Energy})
		}
		w.Hero.Shielding = true
		w.gesture.CancelJump()
		w.Hero.Energy = core.ClampF(w.Hero.Energy-s.Drain, 0, s.MaxEnergy)
		if w.Hero.Energy == 0 {
			// Ran dry: no shielding until the press is released.
			w.gesture.Exhaust()
			w.Hero.Shielding = false
		}
		return events
	}

	if holding {
		w.gesture.Exhaust()
	}
	w.Hero.Shielding = false
	w.Hero.Energy = core.ClampF(w.Hero.Energy+s.Regen, 0, s.MaxEnergy)
	return events
}

// deflect consumes the obstacle at index i with the shield.
func (w *World) deflect(i int) Event {
	o := w.obstacles.Remove(i)
	w.particles.Spawn(o.X, w.GroundY-o.Height/2, 10, core.ColorBrightGreen)
	w.Hero.Energy = core.ClampF(w.Hero.Energy-w.cfg.Shield.HitPenalty, 0, w.cfg.Shield.MaxEnergy)
	return DeflectedEvent{Obstacle: o, Energy: w.Hero.Energy}
}

package runner

import "time"

// Clock supplies the current time for gesture timing.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Gesture tracks the single active press and classifies it as a tap or a hold.
//
// A tap (released before the hold threshold) fires a pending jump. A press
// held past the threshold becomes a shield hold; once the shield runs dry
// during a hold the hold stays exhausted until release.
type Gesture struct {
	threshold   time.Duration
	pressing    bool
	pressedAt   time.Time
	pendingJump bool
	exhausted   bool
}

// NewGesture creates a gesture tracker with the given hold threshold.
func NewGesture(threshold time.Duration) *Gesture {
	return &Gesture{threshold: threshold}
}

// Press records the start of a press. armJump arms a pending jump that
// fires on a quick release.
func (g *Gesture) Press(now time.Time, armJump bool) {
	g.pressing = true
	g.pressedAt = now
	g.pendingJump = armJump
	g.exhausted = false
}

// Release ends the press. It reports whether the press was a tap that
// should fire its pending jump. Pending state is cleared regardless.
func (g *Gesture) Release(now time.Time) bool {
	tap := g.pressing && g.pendingJump && now.Sub(g.pressedAt) < g.threshold
	g.pressing = false
	g.pendingJump = false
	g.exhausted = false
	return tap
}

// Holding reports whether the press has been held longer than the threshold.
func (g *Gesture) Holding(now time.Time) bool {
	return g.pressing && now.Sub(g.pressedAt) > g.threshold
}

// Pressing reports whether a press is in progress.
func (g *Gesture) Pressing() bool {
	return g.pressing
}

// PendingJump reports whether a quick release would jump.
func (g *Gesture) PendingJump() bool {
	return g.pendingJump
}

// CancelJump disarms the pending jump; the press is now a shield hold.
func (g *Gesture) CancelJump() {
	g.pendingJump = false
}

// Exhaust marks the current hold as having run the shield dry.
func (g *Gesture) Exhaust() {
	if g.pressing {
		g.exhausted = true
	}
}

// Exhausted reports whether the current hold ran the shield dry.
func (g *Gesture) Exhausted() bool {
	return g.exhausted
}

// Reset forgets any press in progress.
func (g *Gesture) Reset() {
	*g = Gesture{threshold: g.threshold}
}

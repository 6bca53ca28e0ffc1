package runner

// Event is something the simulation reports to its session.
// Events carry no behaviour; the session turns them into cues and log lines.
type Event interface {
	runnerEvent()
}

// JumpedEvent is emitted when the character leaves the ground.
type JumpedEvent struct{}

func (JumpedEvent) runnerEvent() {}

// ShieldUnlockedEvent is emitted once per run when the score reaches the unlock threshold.
type ShieldUnlockedEvent struct {
	Score float64
}

func (ShieldUnlockedEvent) runnerEvent() {}

// ShieldRaisedEvent is emitted on the transition into shielding.
type ShieldRaisedEvent struct {
	Energy float64
}

func (ShieldRaisedEvent) runnerEvent() {}

// DeflectedEvent is emitted when the shield consumes an obstacle.
type DeflectedEvent struct {
	Obstacle Obstacle
	Energy   float64 // Energy left after the hit penalty
}

func (DeflectedEvent) runnerEvent() {}

// CrashedEvent is emitted on a lethal collision. The run is over.
type CrashedEvent struct {
	Obstacle Obstacle
	Score    float64
}

func (CrashedEvent) runnerEvent() {}

// Outcome is the result of one simulation tick.
type Outcome struct {
	Over   bool
	Events []Event
}

// Package tui provides the Bubble Tea shell for the runner.
// It maps terminal input onto the session, drives ticks and draws frames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shield-runner/internal/loop"
)

// DefaultFPS is the tick rate used when none is configured.
const DefaultFPS = 60

// TickMsg is sent to trigger a simulation tick. Gen stamps the scheduler
// generation that issued it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// Ticker implements loop.Scheduler with Bubble Tea tick messages.
// Only one tick is in flight at a time: the next one is armed after the
// current tick has been accepted, and only while the ticker is running.
type Ticker struct {
	gate     loop.Gate
	interval time.Duration
	armed    bool
}

// NewTicker creates a stopped ticker firing fps times per second.
func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Ticker{interval: time.Second / time.Duration(fps)}
}

func (t *Ticker) Start() {
	t.gate.Start()
	t.armed = true
}

func (t *Ticker) Stop() {
	t.gate.Stop()
	t.armed = false
}

func (t *Ticker) Running() bool {
	return t.gate.Running()
}

// Interval returns the time between ticks.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Accept reports whether msg belongs to the running generation.
// Stale ticks are dropped; an accepted tick arms the next one.
func (t *Ticker) Accept(msg TickMsg) bool {
	if !t.gate.Current(msg.Gen) {
		return false
	}
	t.armed = true
	return true
}

// Cmd returns the command for the armed tick, or nil if nothing is armed.
func (t *Ticker) Cmd() tea.Cmd {
	if !t.armed || !t.gate.Running() {
		return nil
	}
	t.armed = false
	gen := t.gate.Generation()
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: now}
	})
}

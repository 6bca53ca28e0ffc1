// Package loop abstracts the fixed-cadence tick driver.
//
// The simulation only ever sees a Scheduler. The terminal shell implements
// it with Bubble Tea tick messages; tests use Manual to step synchronously.
package loop

// Scheduler starts and stops the periodic tick callback.
// Stop must cancel any tick that is already scheduled.
type Scheduler interface {
	Start()
	Stop()
	Running() bool
}

// Gate tracks the active tick generation.
// Every Start and Stop bumps the generation, so a tick issued before the
// last transition can be recognized as stale and dropped.
type Gate struct {
	gen     uint64
	running bool
}

// Start opens a new generation and returns it.
func (g *Gate) Start() uint64 {
	g.gen++
	g.running = true
	return g.gen
}

// Stop closes the current generation.
func (g *Gate) Stop() {
	if !g.running {
		return
	}
	g.gen++
	g.running = false
}

// Running reports whether a generation is open.
func (g *Gate) Running() bool {
	return g.running
}

// Generation returns the current generation number.
func (g *Gate) Generation() uint64 {
	return g.gen
}

// Current reports whether a tick stamped with gen may run.
func (g *Gate) Current(gen uint64) bool {
	return g.running && gen == g.gen
}

// Manual is a Scheduler driven explicitly by the caller.
type Manual struct {
	gate   Gate
	Starts int
	Stops  int
}

// NewManual creates a stopped manual scheduler.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Start() {
	m.Starts++
	m.gate.Start()
}

func (m *Manual) Stop() {
	if m.gate.Running() {
		m.Stops++
	}
	m.gate.Stop()
}

func (m *Manual) Running() bool {
	return m.gate.Running()
}

// Run invokes tick up to n times, stopping early once the scheduler is
// stopped (for example by the tick itself). It returns the number of
// ticks executed.
func (m *Manual) Run(n int, tick func()) int {
	done := 0
	for done < n && m.gate.Running() {
		gen := m.gate.Generation()
		tick()
		done++
		if !m.gate.Current(gen) {
			break
		}
	}
	return done
}

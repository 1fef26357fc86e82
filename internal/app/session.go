package app

import (
	"errors"
	"time"

	"chain-ca/internal/core"
)

// ErrNoTrigger is returned when the sim does not accept pointer triggers.
var ErrNoTrigger = errors.New("app: sim does not support triggering")

// ReactionCounter is implemented by sims that count reactions.
type ReactionCounter interface {
	Reactions() int
}

// Session holds the pause/step/reset state of an interactive run. It is
// driver-agnostic; the GUI and terminal front ends feed it input and poll it
// once per frame.
type Session struct {
	sim      core.Sim
	seed     int64
	paused   bool
	tickOnce bool

	lastReactions int
	// OnReactions receives the number of reactions since the previous call.
	OnReactions func(n int)
}

// NewSession wraps a sim that has already been reset with seed.
func NewSession(sim core.Sim, seed int64) *Session {
	s := &Session{sim: sim, seed: seed}
	s.lastReactions = s.reactions()
	return s
}

// Sim returns the wrapped simulation.
func (s *Session) Sim() core.Sim { return s.sim }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// Seed reports the seed used by the last reset.
func (s *Session) Seed() int64 { return s.seed }

// TogglePause flips automatic stepping.
func (s *Session) TogglePause() { s.paused = !s.paused }

// Resume clears the pause.
func (s *Session) Resume() { s.paused = false }

// StepOnce requests a single tick while paused.
func (s *Session) StepOnce() { s.tickOnce = true }

// Reset rebuilds the board with seed.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.sim.Reset(seed)
	s.tickOnce = false
	s.lastReactions = s.reactions()
}

// Reseed resets with a time-derived seed.
func (s *Session) Reseed() {
	s.Reset(time.Now().UnixNano())
}

// Advance steps the sim if due. due is true when the driver's cadence says a
// tick should happen. It reports whether a step was taken.
func (s *Session) Advance(due bool) bool {
	if !due {
		return false
	}
	if s.paused && !s.tickOnce {
		return false
	}
	s.sim.Step()
	s.tickOnce = false
	s.report()
	return true
}

// Trigger fires the cell at zero-based (x, y).
func (s *Session) Trigger(x, y int) error {
	t, ok := s.sim.(core.Triggerer)
	if !ok {
		return ErrNoTrigger
	}
	if err := t.TriggerAt(x, y); err != nil {
		return err
	}
	s.report()
	return nil
}

func (s *Session) report() {
	n := s.reactions()
	delta := n - s.lastReactions
	s.lastReactions = n
	if delta > 0 && s.OnReactions != nil {
		s.OnReactions(delta)
	}
}

func (s *Session) reactions() int {
	if rc, ok := s.sim.(ReactionCounter); ok {
		return rc.Reactions()
	}
	return 0
}

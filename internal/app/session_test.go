package app

import (
	"testing"

	"chain-ca/internal/core"
	"chain-ca/internal/sims/chain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*Session, *chain.Reactor) {
	t.Helper()
	cfg := chain.DefaultConfig()
	cfg.Size = 24
	cfg.AtomChance = 0.6
	cfg.SeedStrikes = 0
	r := chain.NewReactor(cfg)
	return NewSession(r, cfg.Seed), r
}

func TestSessionPauseHoldsTicks(t *testing.T) {
	s, r := newTestSession(t)

	s.TogglePause()
	assert.False(t, s.Advance(true))
	assert.Equal(t, 0, r.Stats().Ticks)

	s.StepOnce()
	assert.True(t, s.Advance(true))
	assert.False(t, s.Advance(true), "single step is consumed")
	assert.Equal(t, 1, r.Stats().Ticks)

	s.Resume()
	assert.False(t, s.Advance(false), "not due")
	assert.True(t, s.Advance(true))
	assert.Equal(t, 2, r.Stats().Ticks)
}

func TestSessionTriggerReportsReactions(t *testing.T) {
	s, r := newTestSession(t)
	var clicks int
	s.OnReactions = func(n int) { clicks += n }

	var ax, ay int
	found := false
	r.Grid().Each(func(_ chain.CellID, c *chain.Cell) {
		if !found && c.State() == chain.Atom {
			ax, ay = c.Pos().X-1, c.Pos().Y-1
			found = true
		}
	})
	require.True(t, found)

	require.NoError(t, s.Trigger(ax, ay))
	for i := 0; i < 50; i++ {
		s.Advance(true)
	}
	assert.Equal(t, r.Stats().Reactions, clicks)
}

func TestSessionTriggerRejectsEmptyCell(t *testing.T) {
	cfg := chain.DefaultConfig()
	cfg.Size = 8
	cfg.AtomChance = 0
	cfg.SeedStrikes = 0
	s := NewSession(chain.NewReactor(cfg), cfg.Seed)

	err := s.Trigger(0, 0)
	assert.ErrorIs(t, err, chain.ErrNotAtom)
	assert.ErrorIs(t, s.Trigger(100, 0), chain.ErrOutOfBounds)
}

func TestSessionResetRestoresBoard(t *testing.T) {
	s, r := newTestSession(t)
	before := append([]uint8(nil), r.Cells()...)

	s.Reset(s.Seed())
	assert.Equal(t, before, r.Cells())
	assert.Equal(t, 0, r.Stats().Ticks)
}

type inertSim struct{}

func (inertSim) Name() string { return "inert" }
func (inertSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (inertSim) Reset(int64) {}
func (inertSim) Step() {}
func (inertSim) Cells() []uint8 { return []uint8{0} }

func TestSessionTriggerUnsupported(t *testing.T) {
	s := NewSession(inertSim{}, 1)
	assert.ErrorIs(t, s.Trigger(0, 0), ErrNoTrigger)
}

package chain

import (
	"errors"
	"fmt"

	"chain-ca/internal/core"
)

var (
	// ErrOutOfBounds is returned by TriggerAt for coordinates off the board.
	ErrOutOfBounds = errors.New("chain: position out of bounds")
	// ErrNotAtom is returned by TriggerAt when AtomsOnly is set and the
	// target cell holds no atom.
	ErrNotAtom = errors.New("chain: cell holds no atom")
)

// Reactor adapts a Grid to the core.Sim contract used by the drivers.
// Display coordinates are zero-based; grid coordinates are 1-based.
type Reactor struct {
	cfg     Config
	grid    *Grid
	rng     *core.RNG
	display *core.ByteGrid
	seed    int64
}

// NewReactor builds a reactor and its initial board from cfg.
func NewReactor(cfg Config) *Reactor {
	r := &Reactor{cfg: cfg}
	r.Reset(0)
	return r
}

// Name returns the simulation identifier.
func (r *Reactor) Name() string { return "chain" }

// Size reports the board dimensions.
func (r *Reactor) Size() core.Size {
	return core.Size{W: r.grid.Width(), H: r.grid.Height()}
}

// Cells exposes the display buffer in row-major order.
func (r *Reactor) Cells() []uint8 { return r.display.Cells() }

// Grid exposes the underlying board.
func (r *Reactor) Grid() *Grid { return r.grid }

// Seed reports the seed used by the last Reset.
func (r *Reactor) Seed() int64 { return r.seed }

// Reset rebuilds the board and fires the seed strikes. A zero seed falls back
// to the configured one.
func (r *Reactor) Reset(seed int64) {
	if seed == 0 {
		seed = r.cfg.Seed
	}
	r.seed = seed
	r.rng = core.NewRNG(seed)
	r.grid = Build(r.cfg.Size, r.rng, r.cfg.AtomChance)
	r.display = core.NewByteGrid(r.grid.Width(), r.grid.Height())
	if n := r.grid.Len(); n > 0 {
		for i := 0; i < r.cfg.SeedStrikes; i++ {
			r.grid.Trigger(CellID(r.rng.IntN(n)))
		}
	}
	r.rebuildDisplay()
}

// Step advances the board by one tick.
func (r *Reactor) Step() {
	r.grid.Step()
	r.rebuildDisplay()
}

// TriggerAt fires the cell at zero-based display coordinates (x, y).
func (r *Reactor) TriggerAt(x, y int) error {
	id, ok := r.grid.At(x+1, y+1)
	if !ok {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, x, y, r.grid.Width(), r.grid.Height())
	}
	if r.cfg.AtomsOnly && r.grid.Cell(id).State() != Atom {
		return fmt.Errorf("%w: (%d,%d)", ErrNotAtom, x, y)
	}
	r.grid.Trigger(id)
	r.rebuildDisplay()
	return nil
}

// Census counts the cells in each state.
func (r *Reactor) Census() Census { return r.grid.Census() }

// Stats returns the board's cumulative counters.
func (r *Reactor) Stats() Stats { return r.grid.Stats() }

// Reactions reports the cumulative reaction count since the last Reset.
func (r *Reactor) Reactions() int { return r.grid.Stats().Reactions }

// Neutrons calls fn with the zero-based position and travel offset of every
// neutron on the board.
func (r *Reactor) Neutrons(fn func(x, y, dx, dy int)) {
	r.grid.Each(func(_ CellID, c *Cell) {
		if c.State() != Neutron {
			return
		}
		dx, dy := c.Dir().Offset()
		p := c.Pos()
		fn(p.X-1, p.Y-1, dx, dy)
	})
}

func init() {
	core.Register("chain", func(cfg map[string]string) core.Sim {
		return NewReactor(FromMap(cfg))
	})
}

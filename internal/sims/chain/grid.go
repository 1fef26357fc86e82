package chain

import "fmt"

// Source supplies the randomness for seeding and emission. *core.RNG and
// *rand.Rand both satisfy it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// Grid owns every Cell of a fixed-size board. Cells live in a single slice in
// creation order (x outer, y inner) and refer to each other by CellID.
type Grid struct {
	w, h  int
	cells []Cell
	rng   Source
	stats Stats
}

// Stats are cumulative counters since the grid was built.
type Stats struct {
	Ticks     int
	Triggers  int
	Reactions int
	Emissions int
	// Lost counts emissions aimed off the grid.
	Lost int
	// Escaped counts neutrons relayed off the grid by the stepper.
	Escaped int
}

// Census counts cells per state.
type Census struct {
	Atoms    int
	Neutrons int
	Empty    int
}

// New returns an all-empty w×h grid with cells at 1-based coordinates
// [1, w] × [1, h].
func New(w, h int, rng Source) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Grid{w: w, h: h, cells: make([]Cell, w*h), rng: rng}
	for x := 1; x <= w; x++ {
		for y := 1; y <= h; y++ {
			g.cells[g.index(x, y)] = Cell{pos: Pos{X: x, Y: y}}
		}
	}
	g.link()
	return g
}

// Build returns the board covering coordinates [1, size) × [1, size). Each
// cell independently starts as an Atom with probability atomChance and is
// Empty otherwise.
func Build(size int, rng Source, atomChance float64) *Grid {
	side := size - 1
	if side < 0 {
		side = 0
	}
	g := New(side, side, rng)
	if atomChance <= 0 {
		return g
	}
	for i := range g.cells {
		if rng.Float64() < atomChance {
			g.cells[i].state = Atom
		}
	}
	return g
}

// link wires the four neighbor handles of every cell by coordinate lookup.
func (g *Grid) link() {
	for i := range g.cells {
		c := &g.cells[i]
		for _, d := range emitOrder {
			dx, dy := d.Offset()
			nb, ok := g.At(c.pos.X+dx, c.pos.Y+dy)
			if !ok {
				nb = NoCell
			}
			c.neighbors[d-1] = nb
		}
	}
}

func (g *Grid) index(x, y int) int { return (x-1)*g.h + (y - 1) }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// At returns the cell at 1-based (x, y).
func (g *Grid) At(x, y int) (CellID, bool) {
	if x < 1 || y < 1 || x > g.w || y > g.h {
		return NoCell, false
	}
	return CellID(g.index(x, y)), true
}

// Cell returns a read-only view of the cell. It panics if id does not belong
// to the grid.
func (g *Grid) Cell(id CellID) *Cell {
	return g.cell(id)
}

func (g *Grid) cell(id CellID) *Cell {
	if id < 0 || int(id) >= len(g.cells) {
		panic(fmt.Sprintf("chain: cell %d not in %dx%d grid", id, g.w, g.h))
	}
	return &g.cells[id]
}

// Place overwrites a cell's state without triggering a reaction. It is meant
// for setting up boards and panics on an inconsistent state/direction pair.
func (g *Grid) Place(id CellID, s State, d Direction) {
	if !validPair(s, d) {
		panic(fmt.Sprintf("chain: invalid state %v with direction %v", s, d))
	}
	g.cell(id).set(s, d)
}

// Stats returns the cumulative counters.
func (g *Grid) Stats() Stats { return g.stats }

// Census counts the cells in each state.
func (g *Grid) Census() Census {
	var c Census
	for i := range g.cells {
		switch g.cells[i].state {
		case Atom:
			c.Atoms++
		case Neutron:
			c.Neutrons++
		default:
			c.Empty++
		}
	}
	return c
}

// Each calls fn for every cell in traversal order.
func (g *Grid) Each(fn func(id CellID, c *Cell)) {
	for i := range g.cells {
		fn(CellID(i), &g.cells[i])
	}
}

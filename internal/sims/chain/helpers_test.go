package chain

import "testing"

// scripted replays a fixed list of direction draws: 0 left, 1 right, 2 up,
// 3 down.
type scripted struct {
	t     *testing.T
	draws []int
}

func script(t *testing.T, draws ...int) *scripted {
	return &scripted{t: t, draws: draws}
}

func (s *scripted) IntN(n int) int {
	if len(s.draws) == 0 {
		s.t.Fatal("scripted source exhausted")
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v % n
}

func (s *scripted) Float64() float64 { return 0.99 }

func (s *scripted) done() {
	if len(s.draws) != 0 {
		s.t.Fatalf("%d scripted draws left unused", len(s.draws))
	}
}

func mustAt(t *testing.T, g *Grid, x, y int) CellID {
	t.Helper()
	id, ok := g.At(x, y)
	if !ok {
		t.Fatalf("no cell at (%d,%d)", x, y)
	}
	return id
}

func expectCell(t *testing.T, g *Grid, x, y int, s State, d Direction) {
	t.Helper()
	c := g.Cell(mustAt(t, g, x, y))
	if c.State() != s || c.Dir() != d {
		t.Fatalf("cell (%d,%d) = %v/%v, expected %v/%v", x, y, c.State(), c.Dir(), s, d)
	}
}

type cellSnapshot struct {
	state State
	dir   Direction
}

func snapshot(g *Grid) []cellSnapshot {
	out := make([]cellSnapshot, 0, g.Len())
	g.Each(func(_ CellID, c *Cell) {
		out = append(out, cellSnapshot{state: c.State(), dir: c.Dir()})
	})
	return out
}

func checkInvariants(t *testing.T, g *Grid) {
	t.Helper()
	g.Each(func(id CellID, c *Cell) {
		if (c.Dir() != None) != (c.State() == Neutron) {
			p := c.Pos()
			t.Fatalf("cell (%d,%d) has state %v with direction %v", p.X, p.Y, c.State(), c.Dir())
		}
		if c.Moved() {
			p := c.Pos()
			t.Fatalf("cell (%d,%d) still flagged as moved between ticks", p.X, p.Y)
		}
	})
}

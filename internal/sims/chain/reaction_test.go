package chain

import (
	"testing"

	"chain-ca/internal/core"
)

func TestTriggerCenterReachesOnlyOrthogonalNeighbors(t *testing.T) {
	src := script(t, 0, 1, 2, 3)
	g := New(3, 3, src)
	center := mustAt(t, g, 2, 2)
	g.Place(center, Atom, None)

	g.Trigger(center)
	g.Trigger(center)
	src.done()

	expectCell(t, g, 1, 2, Neutron, Left)
	expectCell(t, g, 3, 2, Neutron, Right)
	expectCell(t, g, 2, 1, Neutron, Up)
	expectCell(t, g, 2, 3, Neutron, Down)
	expectCell(t, g, 2, 2, Atom, None)
	for _, p := range [][2]int{{1, 1}, {3, 1}, {1, 3}, {3, 3}} {
		expectCell(t, g, p[0], p[1], Empty, None)
	}
	if st := g.Stats(); st.Emissions != 4 || st.Triggers != 2 || st.Reactions != 0 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestTriggerCenterRandomDraws(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := New(3, 3, core.NewRNG(seed))
		center := mustAt(t, g, 2, 2)
		g.Place(center, Atom, None)
		g.Trigger(center)
		g.Trigger(center)

		hit := 0
		g.Each(func(id CellID, c *Cell) {
			if id == center || c.State() == Empty {
				return
			}
			p := c.Pos()
			if p.X != 2 && p.Y != 2 {
				t.Fatalf("seed %d: corner (%d,%d) reached in one hop", seed, p.X, p.Y)
			}
			hit++
		})
		if hit < 1 || hit > 4 {
			t.Fatalf("seed %d: %d neighbors hit, expected 1..4", seed, hit)
		}
		checkInvariants(t, g)
	}
}

func TestTriggerForcedRight(t *testing.T) {
	src := script(t, 1, 1)
	g := New(3, 1, src)
	g.Place(mustAt(t, g, 2, 1), Atom, None)

	g.Trigger(mustAt(t, g, 2, 1))
	src.done()

	expectCell(t, g, 3, 1, Neutron, Right)
	expectCell(t, g, 1, 1, Empty, None)
	expectCell(t, g, 2, 1, Atom, None)
}

func TestTriggerIgnoresOwnState(t *testing.T) {
	src := script(t, 1, 1, 0, 0)
	g := New(3, 1, src)
	mid := mustAt(t, g, 2, 1)

	g.Trigger(mid)
	expectCell(t, g, 3, 1, Neutron, Right)

	g.Place(mid, Neutron, Up)
	g.Trigger(mid)
	src.done()
	expectCell(t, g, 1, 1, Neutron, Left)
	expectCell(t, g, 2, 1, Neutron, Up)
}

func TestStrikeAtomReactsBeforeOverwrite(t *testing.T) {
	src := script(t, 0, 1)
	g := New(3, 1, src)
	mid := mustAt(t, g, 2, 1)
	g.Place(mid, Atom, None)

	g.Strike(mid, Neutron, Right)
	src.done()

	expectCell(t, g, 1, 1, Neutron, Left)
	expectCell(t, g, 3, 1, Neutron, Right)
	expectCell(t, g, 2, 1, Neutron, Right)
	if st := g.Stats(); st.Reactions != 1 || st.Emissions != 2 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestStrikeNonAtomDoesNotReact(t *testing.T) {
	g := New(2, 1, script(t))
	id := mustAt(t, g, 1, 1)

	g.Strike(id, Neutron, Right)
	expectCell(t, g, 1, 1, Neutron, Right)
	g.Strike(id, Neutron, Left)
	expectCell(t, g, 1, 1, Neutron, Left)
	g.Strike(id, Empty, None)
	expectCell(t, g, 1, 1, Empty, None)
	if st := g.Stats(); st.Reactions != 0 || st.Emissions != 0 {
		t.Fatalf("non-atom strikes should not emit, stats %+v", st)
	}
}

func TestEmissionOffGridIsLost(t *testing.T) {
	src := script(t, 0, 3)
	g := New(1, 1, src)
	id := mustAt(t, g, 1, 1)
	g.Place(id, Atom, None)

	g.Trigger(id)
	src.done()

	expectCell(t, g, 1, 1, Atom, None)
	if st := g.Stats(); st.Lost != 2 || st.Emissions != 2 {
		t.Fatalf("expected two lost emissions, stats %+v", st)
	}
}

func TestReactionFanOutAtCorner(t *testing.T) {
	src := script(t, 0, 1)
	g := New(2, 2, src)
	corner := mustAt(t, g, 1, 1)
	g.Place(corner, Atom, None)

	g.Strike(corner, Neutron, Up)
	src.done()

	expectCell(t, g, 2, 1, Neutron, Right)
	expectCell(t, g, 1, 2, Empty, None)
	expectCell(t, g, 2, 2, Empty, None)
	expectCell(t, g, 1, 1, Neutron, Up)
	if st := g.Stats(); st.Lost != 1 || st.Emissions != 2 {
		t.Fatalf("expected one hit and one lost emission, stats %+v", st)
	}
}

func TestCascadeThroughAtomRow(t *testing.T) {
	// Trigger (1,1): right into (2,1) which reacts right into (3,1) which
	// reacts right into (4,1). (4,1) loses both emissions off the edge, (3,1)
	// hits the already converted (4,1), (2,1) swings back into (1,1).
	src := script(t, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0)
	g := New(4, 1, src)
	for x := 1; x <= 4; x++ {
		g.Place(mustAt(t, g, x, 1), Atom, None)
	}

	g.Trigger(mustAt(t, g, 1, 1))
	src.done()

	expectCell(t, g, 1, 1, Neutron, Left)
	expectCell(t, g, 2, 1, Neutron, Right)
	expectCell(t, g, 3, 1, Neutron, Right)
	expectCell(t, g, 4, 1, Neutron, Right)
	st := g.Stats()
	if st.Reactions != 4 || st.Emissions != 10 || st.Lost != 5 {
		t.Fatalf("unexpected cascade stats %+v", st)
	}
}

func TestReactingAtomDoesNotReactTwice(t *testing.T) {
	// (1,1) reacts right into (2,1); both of (2,1)'s emissions come back left
	// while (1,1) is still mid-reaction.
	src := script(t, 1, 0, 0, 1)
	g := New(2, 1, src)
	a := mustAt(t, g, 1, 1)
	b := mustAt(t, g, 2, 1)
	g.Place(a, Atom, None)
	g.Place(b, Atom, None)

	g.Strike(a, Neutron, Left)
	src.done()

	expectCell(t, g, 1, 1, Neutron, Left)
	expectCell(t, g, 2, 1, Neutron, Right)
	if st := g.Stats(); st.Reactions != 2 {
		t.Fatalf("each atom should react exactly once, got %d reactions", st.Reactions)
	}
}

package chain

import "fmt"

// Strike lands state s with direction d on a cell. If the cell currently holds
// an Atom it first reacts, emitting two neutrons to its neighbors, and only
// then is overwritten. Emitted neutrons strike their targets in turn, so one
// call can cascade across the board.
//
// A cell whose reaction is already on the stack does not react a second time
// when its own cascade comes back to it; it is simply overwritten.
func (g *Grid) Strike(id CellID, s State, d Direction) {
	if !validPair(s, d) {
		panic(fmt.Sprintf("chain: invalid state %v with direction %v", s, d))
	}
	c := g.cell(id)
	if c.state == Atom && !c.reacting {
		c.reacting = true
		g.stats.Reactions++
		g.react(id)
		c.reacting = false
	}
	c.set(s, d)
}

// Trigger makes a cell emit two neutrons at random neighbors whatever its
// current state. The cell itself is left unchanged.
func (g *Grid) Trigger(id CellID) {
	g.cell(id)
	g.stats.Triggers++
	g.react(id)
}

func (g *Grid) react(id CellID) {
	g.emit(id)
	g.emit(id)
}

// emit sends one neutron from id in a uniformly drawn direction. Neutrons
// aimed off the grid are lost.
func (g *Grid) emit(id CellID) {
	d := emitOrder[g.rng.IntN(len(emitOrder))]
	g.stats.Emissions++
	target := g.cells[id].neighbors[d-1]
	if target == NoCell {
		g.stats.Lost++
		return
	}
	g.Strike(target, Neutron, d)
}

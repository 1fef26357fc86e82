package chain

// Step advances the board by one tick.
//
// Cells are visited once, in creation order, and mutated in place. A neutron
// relayed into a cell that is visited later in the same pass is skipped via
// the moved flag, but emissions from reactions are not flagged and may travel
// again before the tick ends. Propagation speed therefore depends on
// traversal order.
func (g *Grid) Step() {
	for i := range g.cells {
		g.iterate(CellID(i))
	}
	for i := range g.cells {
		g.cells[i].moved = false
	}
	g.stats.Ticks++
}

// iterate relays the neutron held by id one cell along its direction. The
// source cell always empties; a neutron with no neighbor ahead is destroyed.
func (g *Grid) iterate(id CellID) {
	c := &g.cells[id]
	if c.state != Neutron || c.moved {
		return
	}
	d := c.dir
	if target := c.neighbors[d-1]; target != NoCell {
		g.Strike(target, Neutron, d)
		g.cells[target].moved = true
	} else {
		g.stats.Escaped++
	}
	g.Strike(id, Empty, None)
}

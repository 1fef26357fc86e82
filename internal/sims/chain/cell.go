package chain

import "fmt"

// State is the occupancy of a single cell.
type State uint8

const (
	Empty State = iota
	Atom
	Neutron
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Atom:
		return "atom"
	case Neutron:
		return "neutron"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Direction is the travel direction of a neutron. None is used for every
// other state.
type Direction uint8

const (
	None Direction = iota
	Left
	Right
	Up
	Down
)

// emitOrder maps a uniform draw in [0, 4) to a direction.
var emitOrder = [4]Direction{Left, Right, Up, Down}

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Offset returns the coordinate delta of one step in direction d. Up is -y.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		return None
	}
}

// CellID is a handle into a Grid's cell arena.
type CellID int32

// NoCell marks an absent neighbor.
const NoCell CellID = -1

// Pos is a 1-based grid coordinate.
type Pos struct {
	X, Y int
}

// Cell is a single grid position. Only the owning Grid mutates it.
type Cell struct {
	pos   Pos
	state State
	dir   Direction
	moved bool

	// reacting is set while the cell's own reaction is on the stack.
	reacting bool

	neighbors [4]CellID
}

// Pos returns the cell's coordinates.
func (c *Cell) Pos() Pos { return c.pos }

// State returns the current state.
func (c *Cell) State() State { return c.state }

// Dir returns the travel direction, None unless the cell holds a neutron.
func (c *Cell) Dir() Direction { return c.dir }

// Moved reports whether a neutron was relayed into this cell during the
// current tick.
func (c *Cell) Moved() bool { return c.moved }

// Neighbor returns the adjacent cell in direction d, or NoCell.
func (c *Cell) Neighbor(d Direction) CellID {
	if d == None || d > Down {
		return NoCell
	}
	return c.neighbors[d-1]
}

func (c *Cell) set(s State, d Direction) {
	c.state = s
	c.dir = d
}

func validPair(s State, d Direction) bool {
	if s == Neutron {
		return d >= Left && d <= Down
	}
	return d == None && s <= Neutron
}

package game

// Side identifies which player owns a token.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}

func (s Side) String() string {
	if s == Left {
		return "Left"
	}
	return "Right"
}

// Cell is the state of a single grid square. The only valid values are the
// constants below; Occupied builds the occupied variants.
type Cell uint8

const (
	Open Cell = iota
	Destroyed
	occupiedLeft
	occupiedRight
)

// Occupied returns the cell held by a token of the given side.
func Occupied(side Side) Cell {
	if side == Left {
		return occupiedLeft
	}
	return occupiedRight
}

// Owner reports the side occupying the cell, if any.
func (c Cell) Owner() (Side, bool) {
	switch c {
	case occupiedLeft:
		return Left, true
	case occupiedRight:
		return Right, true
	default:
		return Left, false
	}
}

func (c Cell) String() string {
	switch c {
	case Open:
		return "open"
	case Destroyed:
		return "destroyed"
	case occupiedLeft:
		return "left"
	case occupiedRight:
		return "right"
	default:
		return "invalid"
	}
}

package game

// Outcome is the combinatorial-game outcome class of a position.
type Outcome int

const (
	Unknown Outcome = iota
	LeftWins
	RightWins
	Previous
	Next
)

// GoodFor reports whether a child position with this outcome is a winning
// reply for the side that moved into it.
func (o Outcome) GoodFor(side Side) bool {
	switch o {
	case Previous:
		return true
	case LeftWins:
		return side == Left
	case RightWins:
		return side == Right
	default:
		return false
	}
}

// Winner returns the side that wins a position of this class when first
// moves first. Unknown has no winner.
func (o Outcome) Winner(first Side) (Side, bool) {
	switch o {
	case LeftWins:
		return Left, true
	case RightWins:
		return Right, true
	case Previous:
		return first.Opponent(), true
	case Next:
		return first, true
	default:
		return Left, false
	}
}

func (o Outcome) String() string {
	switch o {
	case LeftWins:
		return "L"
	case RightWins:
		return "R"
	case Previous:
		return "P"
	case Next:
		return "N"
	default:
		return "?"
	}
}

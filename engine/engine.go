package engine

import "tron/game"

// Result describes a game played out with both sides choosing winning replies
// whenever one exists.
type Result struct {
	First  game.Side
	Winner game.Side
	Line   []*game.Board // Positions after each ply, root excluded
}

func (r Result) Plies() int {
	return len(r.Line)
}

type Classifier interface {
	Classify(b *game.Board) game.Outcome
}

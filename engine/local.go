package engine

import (
	"tron/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Engine struct {
	State      *game.Board
	classifier Classifier
}

func LocalEngine(state *game.Board, classifier Classifier) *Engine {
	if state == nil {
		panic("engine needs a starting position")
	}
	if classifier == nil {
		panic("engine needs a classifier")
	}

	return &Engine{
		State:      state,
		classifier: classifier,
	}
}

// Run alternates moves starting with first until the side to move is stuck,
// which loses. A side picks its first child that is good for it, or its
// first child when it has none.
func (e *Engine) Run(first game.Side) Result {
	log.Debug().Msgf("%s is starting", first)

	result := Result{First: first}
	player := first
	for {
		move, ok := e.pick(player)
		if !ok {
			result.Winner = player.Opponent()
			break
		}

		log.Debug().
			Int("ply", len(result.Line)+1).
			Stringer("player", player).
			Stringer("outcome", move.Outcome()).
			Msg("played move")

		result.Line = append(result.Line, move)
		e.State = move
		player = player.Opponent()
	}

	log.Debug().Msgf("%s wins after %d plies", result.Winner, result.Plies())
	return result
}

func (e *Engine) pick(player game.Side) (*game.Board, bool) {
	left, right := game.Children(e.State)
	children := left
	if player == game.Right {
		children = right
	}
	if len(children) == 0 {
		return nil, false
	}

	i := slices.IndexFunc(children, func(child *game.Board) bool {
		return e.classifier.Classify(child).GoodFor(player)
	})
	if i < 0 {
		i = 0
	}
	return children[i], true
}

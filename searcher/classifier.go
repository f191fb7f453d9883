package searcher

import (
	"tron/experiments/metrics"
	"tron/game"

	"github.com/rs/zerolog/log"
)

type Option func(c *Classifier)

// Generator returns the positions reachable by one Left move and by one
// Right move.
type Generator func(b *game.Board) (left, right []*game.Board)

// Classifier determines outcome classes by exhaustive backward induction.
// It is not safe for concurrent use.
type Classifier struct {
	generate Generator
	metrics  metrics.Collector
}

func WithMetrics() Option {
	return func(c *Classifier) {
		c.metrics = metrics.NewCollector()
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(c *Classifier) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

func WithGenerator(generate Generator) Option {
	return func(c *Classifier) {
		if generate != nil {
			c.generate = generate
		}
	}
}

func NewClassifier(options ...Option) *Classifier {
	c := &Classifier{ // Default values
		generate: game.Children,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Classify is shorthand for a default classifier's Classify.
func Classify(b *game.Board) game.Outcome {
	return NewClassifier().Classify(b)
}

// Classify returns the outcome class of b and records it on b. A board that
// is already classified is returned as is.
func (c *Classifier) Classify(b *game.Board) game.Outcome {
	outcome, _ := c.Search(b)
	return outcome
}

// Search classifies b and reports the work done. The metric is empty unless
// the classifier collects metrics.
func (c *Classifier) Search(b *game.Board) (game.Outcome, metrics.SearchMetric) {
	if outcome := b.Outcome(); outcome != game.Unknown {
		return outcome, metrics.SearchMetric{}
	}

	c.metrics.Start()
	outcome := c.classify(b, 0)
	metric := c.metrics.Complete()

	log.Debug().
		Stringer("outcome", outcome).
		Int("nodes", metric.Nodes).
		Int("pruned", metric.Pruned).
		Dur("duration", metric.Duration).
		Msg("classified position")

	return outcome, metric
}

func (c *Classifier) classify(b *game.Board, depth int) game.Outcome {
	c.metrics.AddNode(depth)
	left, right := c.generate(b)
	c.metrics.AddChildren(len(left) + len(right))

	var outcome game.Outcome
	switch {
	case len(left) == 0 && len(right) == 0:
		// Whoever must move loses under normal play.
		outcome = game.Previous
	case len(left) == 0:
		outcome = game.RightWins
	case len(right) == 0:
		outcome = game.LeftWins
	default:
		someLP := c.hasGoodReply(game.Left, left, depth+1)
		someRP := c.hasGoodReply(game.Right, right, depth+1)
		outcome = combine(someLP, someRP)
	}

	if err := b.SetOutcome(outcome); err != nil {
		panic(err)
	}
	return outcome
}

// hasGoodReply scans children in order and stops at the first one that is
// good for side. Children after the match stay unclassified.
func (c *Classifier) hasGoodReply(side game.Side, children []*game.Board, depth int) bool {
	for i, child := range children {
		if child.Outcome() == game.Unknown {
			c.classify(child, depth)
		}
		if child.Outcome().GoodFor(side) {
			c.metrics.AddPruned(len(children) - i - 1)
			return true
		}
	}
	return false
}

func combine(someLP, someRP bool) game.Outcome {
	switch {
	case someLP && someRP:
		return game.Next
	case someLP:
		return game.LeftWins
	case someRP:
		return game.RightWins
	default:
		return game.Previous
	}
}

package experiments

import (
	"fmt"

	"tron/config"
	"tron/experiments/metrics"
	"tron/game"
	"tron/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Run classifies cfg.Samples random boards of every configured size and
// writes one record per board through w.
func Run(cfg config.Experiment, w *metrics.Writer) ([]metrics.Record, error) {
	records, err := Classify(cfg)
	if err != nil {
		return nil, err
	}

	err = w.WriteRecords(records)
	if err != nil {
		return nil, fmt.Errorf("failed to write records: %w", err)
	}
	log.Info().Str("dir", w.Dir()).Msg("stored records")

	return records, nil
}

// Classify samples and classifies the experiment boards without writing
// anything.
func Classify(cfg config.Experiment) ([]metrics.Record, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	records := []metrics.Record{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for si, size := range cfg.Sizes {
		log.Info().Msgf("starting size %d of %d: %dx%d with %d Left and %d Right tokens...",
			si+1, len(cfg.Sizes), size.Rows, size.Cols, size.Left, size.Right)

		for i := 0; i < cfg.Samples; i++ {
			b, err := game.RandomBoard(rng, size.Rows, size.Cols, size.Left, size.Right)
			if err != nil {
				return nil, fmt.Errorf("size %dx%d: %w", size.Rows, size.Cols, err)
			}

			classifier := searcher.NewClassifier(searcher.WithMetrics())
			outcome, metric := classifier.Search(b)
			records = append(records, metrics.Record{
				ID:           len(records) + 1,
				Rows:         size.Rows,
				Cols:         size.Cols,
				Left:         size.Left,
				Right:        size.Right,
				Outcome:      outcome.String(),
				SearchMetric: metric,
			})

			log.Debug().Msgf("sample %d of %d is %s after %d nodes", i+1, cfg.Samples, outcome, metric.Nodes)
		}
		log.Info().Msgf("completed size %d of %d", si+1, len(cfg.Sizes))
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)
	return records, nil
}

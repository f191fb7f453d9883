package main

import (
	"fmt"

	"tron/experiments"
	"tron/experiments/metrics"

	"github.com/spf13/cobra"
)

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Classify batches of random positions and record search statistics",
	Long:  `Samples random boards for every size in the configuration, classifies each and writes records.csv under the configured output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exp := cfg.Experiment
		if cmd.Flags().Changed("samples") {
			exp.Samples, _ = cmd.Flags().GetInt("samples")
		}
		if cmd.Flags().Changed("seed") {
			exp.Seed, _ = cmd.Flags().GetUint64("seed")
		}

		writer, err := metrics.NewWriter(exp.OutputDir, exp.Name)
		if err != nil {
			return fmt.Errorf("failed to create experiment writer: %w", err)
		}

		records, err := experiments.Run(exp, writer)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d records to %s\n", len(records), writer.Dir())
		return nil
	},
}

func init() {
	experimentCmd.Flags().Int("samples", 0, "Boards per size (overrides config)")
	experimentCmd.Flags().Uint64("seed", 0, "Random seed (overrides config)")
	rootCmd.AddCommand(experimentCmd)
}

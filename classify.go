package main

import (
	"fmt"
	"time"

	"tron/searcher"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Print the outcome class of a position",
	Long:  `Reads a position from --file or interactively, then searches the full game tree and prints its outcome class and the time taken.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := readPosition(cmd)
		if err != nil {
			return err
		}
		markers := cfg.Markers.Game()
		fmt.Fprint(cmd.OutOrStdout(), board.Render(markers))

		options := []searcher.Option{}
		if verbose, _ := cmd.Flags().GetBool("metrics"); verbose {
			options = append(options, searcher.WithMetrics())
		}
		classifier := searcher.NewClassifier(options...)

		start := time.Now()
		outcome, metric := classifier.Search(board)
		elapsed := time.Since(start)

		fmt.Fprintln(cmd.OutOrStdout(), outcome)
		fmt.Fprintln(cmd.OutOrStdout(), "Runtime:", elapsed)
		if metric.Nodes > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Nodes: %d, children: %d, pruned: %d, max depth: %d\n",
				metric.Nodes, metric.Children, metric.Pruned, metric.MaxDepth)
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().StringP("file", "f", "", "YAML position file (1-based coordinates)")
	classifyCmd.Flags().Bool("metrics", false, "Print search statistics")
	rootCmd.AddCommand(classifyCmd)
}

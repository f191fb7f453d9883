package main

import (
	"fmt"
	"strings"

	"tron/engine"
	"tron/game"
	"tron/searcher"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a position out with both sides playing perfectly",
	RunE: func(cmd *cobra.Command, args []string) error {
		first, err := parseSide(cmd)
		if err != nil {
			return err
		}
		board, err := readPosition(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		markers := cfg.Markers.Game()
		classifier := searcher.NewClassifier()
		outcome := classifier.Classify(board)
		fmt.Fprintf(out, "%s\nOutcome: %s\n", board.Render(markers), outcome)

		result := engine.LocalEngine(board, classifier).Run(first)
		player := first
		for i, position := range result.Line {
			fmt.Fprintf(out, "\n%d. %s\n%s", i+1, player, position.Render(markers))
			player = player.Opponent()
		}
		fmt.Fprintf(out, "\n%s cannot move. %s wins.\n", player, result.Winner)
		return nil
	},
}

func parseSide(cmd *cobra.Command) (game.Side, error) {
	first, _ := cmd.Flags().GetString("first")
	switch strings.ToLower(first) {
	case "left", "l":
		return game.Left, nil
	case "right", "r":
		return game.Right, nil
	default:
		return game.Left, fmt.Errorf("unknown side %q, want left or right", first)
	}
}

func init() {
	playCmd.Flags().StringP("file", "f", "", "YAML position file (1-based coordinates)")
	playCmd.Flags().String("first", "left", "Side that moves first (left or right)")
	rootCmd.AddCommand(playCmd)
}

package main

import (
	"fmt"
	"os"

	"tron/config"
	"tron/game"
	"tron/setup"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "tron",
	Short: "Tron solves trail-leaving light cycle positions",
	Long: `Tron determines the outcome class (L, R, P or N) of a light cycle position
by searching the whole game tree.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level, _ = cmd.Flags().GetString("log-level")
		}
		lvl, err := zerolog.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		zerolog.SetGlobalLevel(lvl)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// readPosition loads the position from --file, or asks for it on stdin.
func readPosition(cmd *cobra.Command) (*game.Board, error) {
	path, _ := cmd.Flags().GetString("file")
	if path != "" {
		return setup.LoadFile(path)
	}
	return setup.Prompt(cmd.InOrStdin(), cmd.OutOrStdout())
}

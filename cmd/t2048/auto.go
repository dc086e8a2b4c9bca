package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/autoplay"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/platform/tui"
)

var (
	flagStrategy string
	flagMaxMoves int
	flagShow     bool
)

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Let the computer play one game",
	Long: `Play one game without the interactive screen and print the final board.

Strategies:
  greedy - Try every direction and keep the one leaving the most empty cells
  random - Pick a direction at random

Examples:
  t2048 auto
  t2048 auto --seed 7 --show
  t2048 auto --strategy random --max-moves 500`,
	Args: cobra.NoArgs,
	RunE: runAuto,
}

func init() {
	autoCmd.Flags().StringVar(&flagStrategy, "strategy", "greedy", "Move strategy: greedy, random")
	autoCmd.Flags().IntVar(&flagMaxMoves, "max-moves", 0, "Stop after this many moves (0 = no limit)")
	autoCmd.Flags().BoolVar(&flagShow, "show", false, "Print every move")
}

func runAuto(cmd *cobra.Command, _ []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}
	strategy, maxMoves := strategyFlags(cmd, s)

	out := cmd.OutOrStdout()
	opts := autoplay.Options{
		Seed:     seed(),
		Strategy: strategy,
		MaxMoves: maxMoves,
		Probe:    s.probe,
		Logger:   s.logger,
	}
	if flagShow {
		opts.OnMove = func(move t2048.MoveResult, e *t2048.Engine) {
			fmt.Fprintf(out, "%5d  %-5s  +%-5d score %d\n", e.HistoryLen(), move.Direction, move.Gained, e.Score())
		}
	}

	res, err := autoplay.Run(cmd.Context(), opts)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Fprintln(out, tui.RenderBoard(res.Board))
	fmt.Fprintf(out, "\nOutcome: %s\nMoves:   %d\nScore:   %d\nMax:     %d\nSeed:    %d\n",
		res.Outcome, res.Moves, res.Score, res.MaxTile, res.Seed)

	return err
}

// strategyFlags returns the strategy and move limit, preferring flags that
// were set explicitly over the config.
func strategyFlags(cmd *cobra.Command, s *settings) (autoplay.Strategy, int) {
	strategy := s.cfg.Autoplay.Strategy
	if cmd.Flags().Changed("strategy") {
		strategy = flagStrategy
	}
	maxMoves := s.cfg.Autoplay.MaxMoves
	if cmd.Flags().Changed("max-moves") {
		maxMoves = flagMaxMoves
	}
	return autoplay.Strategy(strategy), maxMoves
}

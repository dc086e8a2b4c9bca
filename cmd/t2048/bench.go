package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/autoplay"
	"github.com/vovakirdan/t2048/internal/platform/tui"
)

var (
	flagGames    int
	flagParallel int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Let the computer play many games and summarize them",
	Long: `Play a batch of headless games and report wins, scores and the
distribution of the highest tile reached.

Game i is seeded with seed+i, so a run with a fixed --seed is reproducible
and any single game can be replayed with 't2048 auto --seed'.

Examples:
  t2048 bench
  t2048 bench --games 1000 --parallel 8 --seed 1
  t2048 bench --strategy random`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagGames, "games", 100, "Number of games to play")
	benchCmd.Flags().IntVar(&flagParallel, "parallel", 0, "Games played at once (0 = one per CPU)")
	benchCmd.Flags().StringVar(&flagStrategy, "strategy", "greedy", "Move strategy: greedy, random")
	benchCmd.Flags().IntVar(&flagMaxMoves, "max-moves", 0, "Stop each game after this many moves (0 = no limit)")
}

func runBench(cmd *cobra.Command, _ []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}
	strategy, maxMoves := strategyFlags(cmd, s)

	base := seed()
	s.logger.Info("benchmark started", "games", flagGames, "parallel", flagParallel, "strategy", strategy, "seed", base)

	report, err := autoplay.Bench(cmd.Context(), autoplay.BenchOptions{
		Games:    flagGames,
		Parallel: flagParallel,
		Seed:     base,
		Strategy: strategy,
		MaxMoves: maxMoves,
		Probe:    s.probe,
		Logger:   s.logger,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderReport(report))
	return nil
}

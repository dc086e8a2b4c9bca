package autoplay

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, StrategyGreedy, s)

	s, err = ParseStrategy("random")
	require.NoError(t, err)
	assert.Equal(t, StrategyRandom, s)

	_, err = ParseStrategy("minimax")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestRunGreedyFinishes(t *testing.T) {
	res, err := Run(context.Background(), Options{Seed: 42})
	require.NoError(t, err)

	assert.Contains(t, []Outcome{OutcomeWon, OutcomeLost}, res.Outcome)
	assert.Positive(t, res.Moves)
	assert.Positive(t, res.Score)
	assert.Equal(t, res.Board.Max(), res.MaxTile)
	assert.Equal(t, int64(42), res.Seed)
}

func TestRunDeterministic(t *testing.T) {
	for _, strategy := range []Strategy{StrategyGreedy, StrategyRandom} {
		t.Run(string(strategy), func(t *testing.T) {
			a, err := Run(context.Background(), Options{Seed: 7, Strategy: strategy})
			require.NoError(t, err)
			b, err := Run(context.Background(), Options{Seed: 7, Strategy: strategy})
			require.NoError(t, err)

			assert.Equal(t, a, b)
		})
	}
}

func TestRunMoveLimit(t *testing.T) {
	calls := 0
	res, err := Run(context.Background(), Options{
		Seed:     1,
		MaxMoves: 5,
		OnMove: func(move t2048.MoveResult, e *t2048.Engine) {
			calls++
			assert.Equal(t, calls, e.HistoryLen())
		},
	})
	require.NoError(t, err)

	assert.Equal(t, OutcomeLimit, res.Outcome)
	assert.Equal(t, 5, res.Moves)
	assert.Equal(t, 5, calls)
}

func TestRunStalls(t *testing.T) {
	// A stall limit of one stops the random player at its first wasted move.
	res, err := Run(context.Background(), Options{Seed: 3, Strategy: StrategyRandom, StallLimit: 1})
	require.NoError(t, err)

	if res.Outcome != OutcomeStalled {
		assert.Contains(t, []Outcome{OutcomeWon, OutcomeLost}, res.Outcome)
	}
}

func TestRunUnknownStrategy(t *testing.T) {
	_, err := Run(context.Background(), Options{Strategy: "minimax"})
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, Options{Seed: 1})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Moves)
	assert.Empty(t, res.Outcome)
}

func TestRunLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	_, err := Run(context.Background(), Options{Seed: 1, MaxMoves: 3, Logger: logger})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "game finished")
	assert.Contains(t, buf.String(), "outcome=limit")
	assert.NotContains(t, buf.String(), "gained=", "per-move lines are debug only")
}

func TestBench(t *testing.T) {
	report, err := Bench(context.Background(), BenchOptions{
		Games:    8,
		Parallel: 3,
		Seed:     100,
	})
	require.NoError(t, err)

	assert.Equal(t, 8, report.Games)

	total := 0
	for i, b := range report.Histogram {
		total += b.Games
		if i > 0 {
			assert.Less(t, report.Histogram[i-1].MaxTile, b.MaxTile)
		}
	}
	assert.Equal(t, 8, total)

	// Every game in the benchmark is reproducible on its own.
	best := 0
	wins := 0
	for i := range 8 {
		res, err := Run(context.Background(), Options{Seed: 100 + int64(i)})
		require.NoError(t, err)
		best = max(best, res.Score)
		if res.Outcome == OutcomeWon {
			wins++
		}
	}
	assert.Equal(t, best, report.BestScore)
	assert.Equal(t, wins, report.Wins)
	assert.GreaterOrEqual(t, float64(report.BestScore), report.MeanScore)
	assert.InDelta(t, float64(wins)/8, report.WinRate(), 1e-9)
}

func TestBenchErrors(t *testing.T) {
	_, err := Bench(context.Background(), BenchOptions{Games: 0})
	assert.ErrorIs(t, err, ErrNoGames)

	_, err = Bench(context.Background(), BenchOptions{Games: 2, Strategy: "minimax"})
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Bench(ctx, BenchOptions{Games: 4, Parallel: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	report := summarize([]Result{
		{Seed: 1, Score: 100, MaxTile: 128, Outcome: OutcomeLost},
		{Seed: 2, Score: 300, MaxTile: 2048, Outcome: OutcomeWon},
		{Seed: 3, Score: 200, MaxTile: 128, Outcome: OutcomeLost},
	})

	assert.Equal(t, 3, report.Games)
	assert.Equal(t, 1, report.Wins)
	assert.Equal(t, 300, report.BestScore)
	assert.Equal(t, int64(2), report.BestSeed)
	assert.InDelta(t, 200.0, report.MeanScore, 1e-9)
	assert.Equal(t, []Bucket{{MaxTile: 128, Games: 2}, {MaxTile: 2048, Games: 1}}, report.Histogram)
}

package autoplay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/kamstrup/intmap"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// ErrNoGames is returned when a benchmark is asked to play no games.
var ErrNoGames = errors.New("autoplay: benchmark needs at least one game")

// BenchOptions configures a benchmark run.
type BenchOptions struct {
	Games    int
	Parallel int // 0 means one game per CPU
	Seed     int64
	Strategy Strategy
	MaxMoves int
	Probe    t2048.ChangeProbe
	Logger   *log.Logger
}

// Bucket counts the games that finished with a given highest tile.
type Bucket struct {
	MaxTile t2048.Tile
	Games   int
}

// BenchReport summarizes a benchmark.
type BenchReport struct {
	Games     int
	Wins      int
	MeanScore float64
	BestScore int
	BestSeed  int64
	Histogram []Bucket // ascending by tile
	Elapsed   time.Duration
}

// WinRate returns the fraction of games won.
func (r BenchReport) WinRate() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Games)
}

// Bench plays opts.Games games, game i seeded with opts.Seed+i, running at
// most opts.Parallel of them at once. The first failing game cancels the
// rest.
func Bench(ctx context.Context, opts BenchOptions) (BenchReport, error) {
	if opts.Games <= 0 {
		return BenchReport{}, ErrNoGames
	}
	if _, err := ParseStrategy(string(opts.Strategy)); err != nil {
		return BenchReport{}, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}

	start := time.Now()
	results := make([]Result, opts.Games)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := range opts.Games {
		g.Go(func() error {
			res, err := Run(gctx, Options{
				Seed:     opts.Seed + int64(i),
				Strategy: opts.Strategy,
				MaxMoves: opts.MaxMoves,
				Probe:    opts.Probe,
				Logger:   logger.WithPrefix(fmt.Sprintf("game %d", i)),
			})
			if err != nil {
				return fmt.Errorf("autoplay: game %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BenchReport{}, err
	}

	report := summarize(results)
	report.Elapsed = time.Since(start)

	logger.Info("benchmark finished",
		"games", report.Games,
		"wins", report.Wins,
		"mean", fmt.Sprintf("%.1f", report.MeanScore),
		"best", report.BestScore,
		"elapsed", report.Elapsed.Round(time.Millisecond),
	)
	return report, nil
}

func summarize(results []Result) BenchReport {
	report := BenchReport{Games: len(results)}
	counts := intmap.New[t2048.Tile, int](16)

	total := 0
	var top t2048.Tile
	for i, res := range results {
		if res.Outcome == OutcomeWon {
			report.Wins++
		}
		total += res.Score
		if i == 0 || res.Score > report.BestScore {
			report.BestScore = res.Score
			report.BestSeed = res.Seed
		}

		n, _ := counts.Get(res.MaxTile)
		counts.Put(res.MaxTile, n+1)
		top = max(top, res.MaxTile)
	}
	if len(results) > 0 {
		report.MeanScore = float64(total) / float64(len(results))
	}

	// Tiles are powers of two, so walking them in order yields sorted buckets.
	for tile := t2048.Tile(2); tile != 0 && tile <= top; tile <<= 1 {
		if n, ok := counts.Get(tile); ok {
			report.Histogram = append(report.Histogram, Bucket{MaxTile: tile, Games: n})
		}
	}
	return report
}

// Package autoplay plays 2048 without a terminal, one game at a time or as a
// concurrent benchmark over a range of seeds.
package autoplay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// Strategy picks the move made on every turn.
type Strategy string

const (
	StrategyGreedy Strategy = "greedy" // one-move lookahead
	StrategyRandom Strategy = "random"
)

// Outcome describes why a game stopped.
type Outcome string

const (
	OutcomeWon     Outcome = "won"
	OutcomeLost    Outcome = "lost"
	OutcomeLimit   Outcome = "limit"
	OutcomeStalled Outcome = "stalled"
)

// DefaultStallLimit is the number of consecutive moves without effect after
// which a game is abandoned.
const DefaultStallLimit = 64

// ErrUnknownStrategy is returned for strategy names other than greedy and random.
var ErrUnknownStrategy = errors.New("autoplay: unknown strategy")

// ParseStrategy converts a configuration name into a Strategy.
// The empty string selects the greedy strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case StrategyGreedy, "":
		return StrategyGreedy, nil
	case StrategyRandom:
		return StrategyRandom, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownStrategy, name)
	}
}

// Options configures a single headless game.
type Options struct {
	Seed       int64
	Strategy   Strategy
	MaxMoves   int // 0 means no limit
	StallLimit int // 0 means DefaultStallLimit
	Probe      t2048.ChangeProbe
	Logger     *log.Logger

	// OnMove, when set, is called after every committed move.
	OnMove func(move t2048.MoveResult, e *t2048.Engine)
}

// Result is the final state of a headless game.
type Result struct {
	Seed    int64
	Moves   int
	Score   int
	MaxTile t2048.Tile
	Outcome Outcome
	Board   t2048.Board
}

// Run plays one game until it is won, lost, reaches the move limit or stops
// making progress. Cancelling ctx stops the game between moves; the partial
// result is returned together with the context error.
func Run(ctx context.Context, opts Options) (Result, error) {
	strategy, err := ParseStrategy(string(opts.Strategy))
	if err != nil {
		return Result{}, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	stallLimit := opts.StallLimit
	if stallLimit <= 0 {
		stallLimit = DefaultStallLimit
	}

	e := t2048.NewEngine(rand.New(rand.NewSource(opts.Seed)), t2048.WithChangeProbe(opts.Probe))
	res := Result{Seed: opts.Seed}
	idle := 0

	for res.Outcome == "" {
		if err := ctx.Err(); err != nil {
			return res.finish(e), err
		}

		switch {
		case e.Won():
			res.Outcome = OutcomeWon
			continue
		case e.Lost():
			res.Outcome = OutcomeLost
			continue
		case opts.MaxMoves > 0 && res.Moves >= opts.MaxMoves:
			res.Outcome = OutcomeLimit
			continue
		case idle >= stallLimit:
			res.Outcome = OutcomeStalled
			continue
		}

		if strategy == StrategyRandom {
			e.RandomMove()
		} else {
			e.AutoMove()
		}
		move := e.LastMove()
		res.Moves++

		if move.Changed {
			idle = 0
		} else {
			idle++
		}
		if opts.OnMove != nil {
			opts.OnMove(move, e)
		}
		logger.Debug("move", "n", res.Moves, "dir", move.Direction, "gained", move.Gained, "score", e.Score())
	}

	res = res.finish(e)
	logger.Info("game finished",
		"seed", res.Seed,
		"strategy", strategy,
		"outcome", res.Outcome,
		"moves", res.Moves,
		"score", res.Score,
		"max", res.MaxTile,
	)
	return res, nil
}

func (r Result) finish(e *t2048.Engine) Result {
	r.Score = e.Score()
	r.MaxTile = e.MaxTile()
	r.Board = e.Board()
	return r
}

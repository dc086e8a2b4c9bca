package t2048

import (
	"math/rand"
)

// Direction is one of the four slide directions.
type Direction int

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
)

// Directions returns every direction in lookahead evaluation order.
func Directions() [4]Direction {
	return [4]Direction{DirLeft, DirUp, DirRight, DirDown}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// rotations returns how many counter-clockwise turns bring the board into
// the left-sliding orientation for d, and how many turn it back.
func (d Direction) rotations() (before, after int) {
	switch d {
	case DirUp:
		return 1, 3
	case DirRight:
		return 2, 2
	case DirDown:
		return 3, 1
	default:
		return 0, 0
	}
}

// spawn4Prob is the probability that a spawned tile is a 4 instead of a 2.
const spawn4Prob = 0.10

// MoveResult describes the outcome of one committed move.
type MoveResult struct {
	Direction Direction
	Changed   bool // Some tile moved or merged
	Gained    int  // Points scored by merges
}

// Engine owns one game session: the board, score, highest tile and the
// undo history. An Engine is not safe for concurrent use.
type Engine struct {
	rng   *rand.Rand
	probe ChangeProbe

	board   Board
	score   int
	maxTile Tile

	history    history
	saveNeeded bool

	// Running totals of the move in progress, reset by Move.
	lastChanged bool
	lastGained  int
	last        MoveResult
}

// Option configures an Engine.
type Option func(*Engine)

// WithChangeProbe selects how HasBoardChanged compares boards.
func WithChangeProbe(p ChangeProbe) Option {
	return func(e *Engine) {
		e.probe = p
	}
}

// NewEngine creates an engine and starts a new game.
// All randomness is drawn from rng.
func NewEngine(rng *rand.Rand, opts ...Option) *Engine {
	e := newEngine(rng, opts)
	e.Reset()
	return e
}

// NewEngineFromBoard creates an engine positioned on the given board with
// zero score and empty history.
func NewEngineFromBoard(rng *rand.Rand, board Board, opts ...Option) *Engine {
	e := newEngine(rng, opts)
	e.board = board
	e.maxTile = board.Max()
	return e
}

func newEngine(rng *rand.Rand, opts []Option) *Engine {
	e := &Engine{
		rng:        rng,
		probe:      ProbeSum,
		saveNeeded: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reset clears the board, places two starting tiles and forgets the score
// and history.
func (e *Engine) Reset() {
	e.board = Board{}
	e.score = 0
	e.maxTile = 0
	e.history.clear()
	e.saveNeeded = true
	e.last = MoveResult{}

	e.spawnTile()
	e.spawnTile()
}

// Board returns a copy of the current grid.
func (e *Engine) Board() Board {
	return e.board
}

// Score returns the cumulative score.
func (e *Engine) Score() int {
	return e.score
}

// MaxTile returns the highest tile value reached in this session.
func (e *Engine) MaxTile() Tile {
	return e.maxTile
}

// HistoryLen returns the number of moves that can be rolled back.
func (e *Engine) HistoryLen() int {
	return e.history.len()
}

// Won reports whether the winning tile has been reached.
func (e *Engine) Won() bool {
	return e.maxTile >= WinTile
}

// Lost reports whether no move is possible and the game was not won.
func (e *Engine) Lost() bool {
	return !e.CanMove() && !e.Won()
}

// Move slides the board in the given direction and reports what happened.
// Exactly one history entry is recorded, even when nothing moves.
func (e *Engine) Move(dir Direction) MoveResult {
	e.lastChanged = false
	e.lastGained = 0

	before, after := dir.rotations()
	if before == 0 {
		e.MoveLeft()
	} else {
		e.saveState()
		e.board = rotateN(e.board, before)
		e.MoveLeft()
		e.board = rotateN(e.board, after)
	}

	e.last = MoveResult{Direction: dir, Changed: e.lastChanged, Gained: e.lastGained}
	return e.last
}

// LastMove returns the result of the most recent call to Move, including
// trial moves made by MoveEfficiency.
func (e *Engine) LastMove() MoveResult {
	return e.last
}

// MoveLeft is the canonical move every direction is built on.
func (e *Engine) MoveLeft() {
	if e.saveNeeded {
		e.saveState()
	}

	changed := false
	for y := range Size {
		row := &e.board[y]
		if compressRow(row) {
			changed = true
		}
		gained, top, merged := mergeRow(row)
		if merged {
			changed = true
			e.score += gained
			e.refreshMax(top)
		}
		e.lastGained += gained
	}

	if changed {
		e.spawnTile()
	}
	e.lastChanged = changed
	e.saveNeeded = true
}

// MoveUp slides all tiles up.
func (e *Engine) MoveUp() {
	e.Move(DirUp)
}

// MoveRight slides all tiles right.
func (e *Engine) MoveRight() {
	e.Move(DirRight)
}

// MoveDown slides all tiles down.
func (e *Engine) MoveDown() {
	e.Move(DirDown)
}

// RandomMove commits a uniformly chosen direction.
func (e *Engine) RandomMove() Direction {
	dir := Directions()[e.rng.Intn(4)]
	e.Move(dir)
	return dir
}

// AutoMove commits the direction with the best one-move lookahead.
func (e *Engine) AutoMove() Direction {
	dirs := Directions()
	best := e.MoveEfficiency(dirs[0])
	for _, dir := range dirs[1:] {
		if eff := e.MoveEfficiency(dir); eff.Better(best) {
			best = eff
		}
	}
	e.Move(best.Direction)
	return best.Direction
}

// Rollback restores the state before the most recent move.
// Returns false when there is nothing to undo.
func (e *Engine) Rollback() bool {
	st, ok := e.history.pop()
	if !ok {
		return false
	}
	e.board = st.board
	e.score = st.score
	e.maxTile = st.maxTile
	return true
}

// CanMove reports whether any move can change the board.
func (e *Engine) CanMove() bool {
	if e.board.EmptyCount() > 0 {
		return true
	}
	// Inspect rows in all four orientations; b ends up back where it started.
	b := e.board
	found := false
	for range 4 {
		if hasMerge(b) {
			found = true
		}
		b = rotate(b)
	}
	return found
}

// spawnTile places a 2 (90%) or 4 (10%) on a random empty cell.
func (e *Engine) spawnTile() {
	empty := e.board.EmptyCells()
	if len(empty) == 0 {
		return
	}

	cell := empty[e.rng.Intn(len(empty))]

	value := Tile(2)
	if e.rng.Float64() < spawn4Prob {
		value = 4
	}

	e.board[cell.Row][cell.Col] = value
	e.refreshMax(value)
}

func (e *Engine) refreshMax(t Tile) {
	if t > e.maxTile {
		e.maxTile = t
	}
}

func (e *Engine) saveState() {
	e.history.push(state{board: e.board, score: e.score, maxTile: e.maxTile})
	e.saveNeeded = false
}

package t2048

import "fmt"

// ChangeProbe selects how HasBoardChanged decides that a move did something.
type ChangeProbe int

const (
	// ProbeSum compares the total of all tile values. A move that only
	// slides tiles without merging or spawning keeps the same total and
	// reads as unchanged.
	ProbeSum ChangeProbe = iota
	// ProbeExact compares every cell.
	ProbeExact
)

// String returns the probe name used in configuration.
func (p ChangeProbe) String() string {
	switch p {
	case ProbeSum:
		return "sum"
	case ProbeExact:
		return "exact"
	default:
		return "unknown"
	}
}

// ParseChangeProbe converts a configuration name into a ChangeProbe.
func ParseChangeProbe(name string) (ChangeProbe, error) {
	switch name {
	case "sum", "":
		return ProbeSum, nil
	case "exact":
		return ProbeExact, nil
	default:
		return ProbeSum, fmt.Errorf("t2048: unknown change probe %q", name)
	}
}

// HasBoardChanged reports whether the board differs from the state saved by
// the most recent move. Always false when there is no history.
func (e *Engine) HasBoardChanged() bool {
	prev, ok := e.history.peek()
	if !ok {
		return false
	}
	if e.probe == ProbeExact {
		return prev.board != e.board
	}
	return prev.board.Sum() != e.board.Sum()
}

// Efficiency is the measured result of a trial move.
type Efficiency struct {
	Direction  Direction
	EmptyCells int // -1 when the move had no effect
	Score      int
}

// Better reports whether e ranks above other: more empty cells first,
// then the higher score.
func (e Efficiency) Better(other Efficiency) bool {
	if e.EmptyCells != other.EmptyCells {
		return e.EmptyCells > other.EmptyCells
	}
	return e.Score > other.Score
}

// MoveEfficiency tries a move, measures the resulting board and rolls the
// move back. The engine state is unchanged afterwards, except that the
// random source has advanced.
func (e *Engine) MoveEfficiency(dir Direction) Efficiency {
	e.Move(dir)
	eff := Efficiency{Direction: dir, EmptyCells: -1}
	if e.HasBoardChanged() {
		eff.EmptyCells = e.board.EmptyCount()
		eff.Score = e.score
	}
	e.Rollback()
	return eff
}

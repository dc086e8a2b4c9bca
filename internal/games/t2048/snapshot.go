package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     string // "classic" or "autoplay"
	Score    int
	Board    [Size][Size]int
	MaxTile  int
	Moves    int  // Moves committed since the last reset, net of undos
	History  int  // Moves available to undo
	Autoplay bool // Automatic moves switched on
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.engine.Won():
		state = StateWon
	case g.engine.Lost():
		state = StateLost
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Score:    g.engine.Score(),
		Board:    g.engine.Board().Values(),
		MaxTile:  int(g.engine.MaxTile()),
		Moves:    g.moves,
		History:  g.engine.HistoryLen(),
		Autoplay: g.autoplay,
		State:    state,
	}
}

// Package t2048 implements the rules of the 2048 sliding-tile puzzle and the
// tick-driven game the platform runs on top of them.
package t2048

import (
	"math/rand"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeAutoplay Mode = "autoplay"
)

// Game drives an Engine from platform input frames.
type Game struct {
	mode   Mode
	probe  ChangeProbe
	engine *Engine
	tick   uint64
	moves  int

	autoplay         bool
	autoplayInterval int
	lastAutoTick     uint64
	lastDir          Direction
	hasLastDir       bool

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// Package-level variables for config
var (
	selectedProbe = ProbeSum
)

// SetChangeProbe sets the probe used by games created after the call.
func SetChangeProbe(p ChangeProbe) {
	selectedProbe = p
}

// New creates a classic 2048 game driven by the player.
func New() *Game {
	return &Game{
		mode: ModeClassic,
	}
}

// NewAutoplay creates a 2048 game that starts with autoplay switched on.
func NewAutoplay() *Game {
	return &Game{
		mode: ModeAutoplay,
	}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
	registry.Register("2048_auto", func() registry.Game {
		return NewAutoplay()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeAutoplay {
		return "2048_auto"
	}
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeAutoplay {
		return "2048 (Autoplay)"
	}
	return "2048"
}

// Reset starts a new session seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.probe = selectedProbe
	g.engine = NewEngine(rand.New(rand.NewSource(cfg.Seed)), WithChangeProbe(g.probe))
	g.tick = 0
	g.moves = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.hasLastDir = false
	g.lastAutoTick = 0

	g.autoplay = g.mode == ModeAutoplay
	g.autoplayInterval = cfg.AutoplayInterval
	if g.autoplayInterval <= 0 {
		g.autoplayInterval = core.DefaultConfig().AutoplayInterval
	}

	g.checkScreenSize()
}

// Engine exposes the rule engine behind the game.
func (g *Game) Engine() *Engine {
	return g.engine
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.engine.Reset()
		g.moves = 0
		g.hasLastDir = false
		return core.StepResult{State: g.State()}
	}

	// Undo works in every state, including after the game has ended.
	if in.Has(core.ActionUndo) {
		if g.engine.Rollback() && g.moves > 0 {
			g.moves--
		}
		g.autoplay = false
		return core.StepResult{State: g.State()}
	}

	if g.ended() {
		g.autoplay = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionAutoplay) {
		g.autoplay = !g.autoplay
		g.lastAutoTick = g.tick
	}

	var res MoveResult
	acted := true

	switch {
	case in.Has(core.ActionUp):
		res = g.engine.Move(DirUp)
	case in.Has(core.ActionDown):
		res = g.engine.Move(DirDown)
	case in.Has(core.ActionLeft):
		res = g.engine.Move(DirLeft)
	case in.Has(core.ActionRight):
		res = g.engine.Move(DirRight)
	case in.Has(core.ActionAuto):
		g.engine.AutoMove()
		res = g.engine.LastMove()
	case in.Has(core.ActionRandom):
		g.engine.RandomMove()
		res = g.engine.LastMove()
	case g.autoplay && g.tick-g.lastAutoTick >= uint64(g.autoplayInterval):
		g.engine.AutoMove()
		res = g.engine.LastMove()
		g.lastAutoTick = g.tick
	default:
		acted = false
	}

	if acted {
		g.moves++
		g.lastDir = res.Direction
		g.hasLastDir = true
	}

	return core.StepResult{State: g.State(), Moved: acted && res.Changed}
}

// ended reports whether the session reached a win or a loss.
func (g *Game) ended() bool {
	return g.engine.Won() || g.engine.Lost()
}

// Resize adapts the game to new terminal dimensions without restarting it.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.ended(),
		Won:      g.engine.Won(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Autoplay reports whether automatic moves are switched on.
func (g *Game) Autoplay() bool {
	return g.autoplay
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/platform/tui"
	"github.com/vovakirdan/t2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play interactively",
	Long: `Start playing in the given mode, or pick one from a menu.

Controls:
  Arrows/WASD  - Slide tiles
  Space        - One lookahead move
  X            - One random move
  U/Backspace  - Undo the last move
  Tab          - Toggle autoplay
  P            - Pause
  R            - Restart
  Q/Esc        - Quit

Examples:
  t2048 play
  t2048 play 2048
  t2048 play 2048_auto --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var modeID string
	if len(args) == 1 {
		modeID = args[0]
	} else {
		modeID, err = tui.RunMenu(width, height)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		// User quit the menu
		if modeID == "" {
			return nil
		}
	}

	game, err := registry.Create(modeID)
	if err != nil {
		if errors.Is(err, registry.ErrUnknownMode) {
			return fmt.Errorf("%w (run 't2048 list' to see available modes)", err)
		}
		return err
	}

	cfg := core.RuntimeConfig{
		ScreenW:          width,
		ScreenH:          height,
		TickRate:         s.cfg.TickRate,
		Seed:             seed(),
		AutoplayInterval: s.cfg.Autoplay.IntervalTicks,
	}

	s.logger.Info("session started", "mode", modeID, "seed", cfg.Seed)
	state, err := tui.Run(game, cfg)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}
	s.logger.Info("session ended", "mode", modeID, "score", state.Score, "won", state.Won, "game_over", state.GameOver)

	return nil
}

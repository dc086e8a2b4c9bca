// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play [mode]    - Play interactively (no mode opens the mode menu)
//	t2048 auto           - Play one game headless and print the result
//	t2048 bench          - Play many headless games and summarize them
//	t2048 list           - List play modes
//	t2048 config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default from config: 30)
//	--seed <value>        - Set RNG seed for reproducible games
//	--config <path>       - Use a specific config file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board in one of four directions; equal tiles that meet merge
into their sum. Reach the 2048 tile to win.

Available commands:
  play     - Play interactively
  auto     - Let the computer play one game
  bench    - Let the computer play many games and summarize them
  list     - Show all play modes
  config   - Show the effective configuration

Examples:
  t2048 play
  t2048 play 2048_auto --fps 60
  t2048 auto --strategy random --show
  t2048 bench --games 200 --parallel 4`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(autoCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// settings is the configuration every command starts from: the loaded
// config with flag overrides applied, and the logger built from it.
type settings struct {
	cfg    config.Config
	probe  t2048.ChangeProbe
	logger *log.Logger
}

// setup loads the config, applies the global flags that were set
// explicitly, and configures the game packages.
func setup(cmd *cobra.Command) (*settings, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})

	probe, err := t2048.ParseChangeProbe(cfg.ChangeProbe)
	if err != nil {
		return nil, err
	}
	t2048.SetChangeProbe(probe)

	logger.Debug("configuration loaded", "path", flagConfig, "tick_rate", cfg.TickRate, "probe", probe)

	return &settings{cfg: cfg, probe: probe, logger: logger}, nil
}

// seed returns the --seed value, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the search path and flags are applied,
as YAML. The output is a valid config file.

Search order:
  --config <path>
  ~/.t2048/config.yaml
  ./configs/t2048.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(s.cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, string(data))
	fmt.Fprintf(out, "# one automatic move every %s\n", s.cfg.AutoplayInterval())
	return nil
}

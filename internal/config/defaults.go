package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate:    30,
		ChangeProbe: "sum",
		Autoplay: AutoplayConfig{
			IntervalTicks: 6,
			Strategy:      "greedy",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

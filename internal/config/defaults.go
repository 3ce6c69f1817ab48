package config

import (
	_ "embed"
)

//go:embed defaults/tictactoe.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches the embedded
// YAML, which Load layers on top of it.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			Theme: ThemeConfig{
				X:      "12",
				O:      "9",
				Win:    "10",
				Cursor: "11",
				Grid:   "245",
				Dim:    "240",
			},
		},
		Storage: StorageConfig{
			DBPath: "~/.tictactoe/results.db",
		},
		Log: LogConfig{
			File:       "~/.tictactoe/tictactoe.log",
			Level:      "info",
			MaxSizeMB:  1,
			MaxBackups: 2,
			MaxAgeDays: 30,
		},
		Server: ServerConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}

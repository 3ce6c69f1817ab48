// Package config provides YAML-based configuration loading with environment
// overrides for the tictactoe binary.
package config

import (
	"fmt"
	"time"
)

// Config is the complete application configuration.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// UIConfig controls the interactive session.
type UIConfig struct {
	ReverseMoves bool        `yaml:"reverse_moves" env:"TICTACTOE_REVERSE_MOVES"`
	Theme        ThemeConfig `yaml:"theme"`
}

// ThemeConfig holds lipgloss color values (ANSI numbers or hex strings).
type ThemeConfig struct {
	X      string `yaml:"x"`
	O      string `yaml:"o"`
	Win    string `yaml:"win"`
	Cursor string `yaml:"cursor"`
	Grid   string `yaml:"grid"`
	Dim    string `yaml:"dim"`
}

// StorageConfig locates the results database.
type StorageConfig struct {
	DBPath string `yaml:"db_path" env:"TICTACTOE_DB"`
}

// LogConfig controls the log file and its rotation.
type LogConfig struct {
	File       string `yaml:"file" env:"TICTACTOE_LOG_FILE"`
	Level      string `yaml:"level" env:"TICTACTOE_LOG_LEVEL"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// ServerConfig controls the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address" env:"TICTACTOE_SSH_ADDR"`
	HostKey            string `yaml:"host_key" env:"TICTACTOE_HOST_KEY"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Validate reports settings the program cannot run with.
func (c Config) Validate() error {
	if c.Storage.DBPath == "" {
		return fmt.Errorf("config: storage.db_path is empty")
	}
	if c.Server.Address == "" {
		return fmt.Errorf("config: server.address is empty")
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: server.idle_timeout_minutes must not be negative, got %d", c.Server.IdleTimeoutMinutes)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("config: log rotation limits must not be negative")
	}
	return nil
}

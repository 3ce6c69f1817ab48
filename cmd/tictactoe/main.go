// tictactoe is a terminal tic-tac-toe game with move history and time travel.
//
// Usage:
//
//	tictactoe play               - Play a hot-seat game in this terminal
//	tictactoe serve              - Host games over SSH
//	tictactoe results            - Browse finished games
//	tictactoe replay <cell>...   - Print a game built from a list of moves
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.tictactoe/config.yaml)
//	--db <path>         - Results database (default: ~/.tictactoe/results.db)
//	--log-file <path>   - Log file for interactive sessions
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	// appConfig is loaded before any subcommand runs.
	appConfig config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Tic-tac-toe in your terminal",
	Long: `Tic-tac-toe for two players sharing a keyboard, with a full move
history you can jump back through.

Available commands:
  play     - Start a game in this terminal
  serve    - Start SSH server for remote play
  results  - Browse finished games
  replay   - Print the game produced by a list of moves

Examples:
  tictactoe play
  tictactoe play --reverse
  tictactoe serve --ssh :2222
  tictactoe results --limit 50
  tictactoe replay 0 1 4 2 8`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig reads the config file and environment, then applies global flags.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	appConfig = cfg
	return nil
}

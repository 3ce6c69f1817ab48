package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/logging"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

var flagReverse bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a hot-seat game in this terminal. X moves first.

Controls:
  Arrows/hjkl  - Move the board cursor (or the move list selection)
  Enter/Space  - Place a mark, or jump to the selected move
  1-9          - Place a mark by cell, top-left to bottom-right
  Tab          - Switch between board and move list
  R            - Reverse move list order
  N            - New game
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Finished games are recorded in the results database.

Examples:
  tictactoe play
  tictactoe play --reverse
  tictactoe play --db ./results.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagReverse, "reverse", false, "Start with the newest move at the top of the list")
}

func runPlay(_ *cobra.Command, _ []string) {
	if !interactive() {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal; use 'tictactoe replay' to print a game")
		os.Exit(1)
	}

	logger, logCloser, err := logging.NewFile(appConfig.Log, "play")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		logger = logging.Discard()
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.ReverseMoves = appConfig.UI.ReverseMoves || flagReverse

	// Open results storage
	var recorder tui.Recorder
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("results will not be recorded", "error", err)
		// Continue without storage - game still works
	} else {
		recorder = store
	}

	runErr := tui.Run(recorder, logger, tui.NewTheme(appConfig.UI.Theme), cfg)

	// Close store and log before potential exit
	if store != nil {
		store.Close()
	}
	if logCloser != nil {
		logCloser.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// interactive reports whether both stdin and stdout are terminals.
func interactive() bool {
	in, out := os.Stdin.Fd(), os.Stdout.Fd()
	return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
		(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/game"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
)

var (
	flagReplayReverse bool
	flagJump          int
)

var replayCmd = &cobra.Command{
	Use:   "replay <cell>...",
	Short: "Print the game produced by a list of moves",
	Long: `Apply moves in order and print the board, status and move list.

Cells are numbered 0-8 column by column: cell = 3*column + row, so 0-2
is the left column top to bottom. Moves on occupied cells or after the
game is decided are ignored, as they are during play.

Examples:
  tictactoe replay 0 1 4 2 8
  tictactoe replay 0 1 4 2 8 --jump 2
  tictactoe replay 4 0 8 --reverse`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayReverse, "reverse", false, "List the newest move first")
	replayCmd.Flags().IntVar(&flagJump, "jump", -1, "View the board after this many moves")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cells, err := parseCells(args)
	if err != nil {
		return err
	}

	s := game.New()
	for _, c := range cells {
		s.ApplyMove(c)
	}

	if flagJump < -1 || flagJump >= s.Len() {
		return fmt.Errorf("--jump %d: game only has %d moves", flagJump, s.Len()-1)
	}
	if flagJump >= 0 {
		s.JumpTo(flagJump)
	}
	if flagReplayReverse || appConfig.UI.ReverseMoves {
		s.ToggleReverseDisplay()
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.RenderGame(s, tui.NewTheme(appConfig.UI.Theme)))
	return nil
}

// parseCells validates cell arguments before they reach the engine.
func parseCells(args []string) ([]int, error) {
	cells := make([]int, len(args))
	for i, a := range args {
		c, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid cell %q: not a number", a)
		}
		if !game.InRange(c) {
			return nil, fmt.Errorf("invalid cell %d: must be 0-%d", c, game.BoardSize-1)
		}
		cells[i] = c
	}
	return cells, nil
}

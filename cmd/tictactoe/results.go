package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

var (
	flagLimit int
	flagClear bool
	flagPlain bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show finished games",
	Long: `Display recently finished games and the overall tally.

On a terminal this opens an interactive table that previews the final
board of the selected game. Use --plain or pipe the output for text.

Examples:
  tictactoe results
  tictactoe results --limit 50
  tictactoe results --plain
  tictactoe results --clear`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of recent games to show")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games")
	resultsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text even on a terminal")
}

func runResults(_ *cobra.Command, _ []string) {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}

	if err := showResults(store); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store.Close()
}

func showResults(store *storage.Store) error {
	if flagClear {
		if err := store.ClearResults(); err != nil {
			return err
		}
		fmt.Println("All recorded games deleted.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		height := 24
		if _, h, err := term.GetSize(fd); err == nil {
			height = h
		}
		return tui.RunResults(store, flagLimit, tui.NewTheme(appConfig.UI.Theme), height)
	}

	return printResults(store)
}

func printResults(store *storage.Store) error {
	results, err := store.RecentResults(flagLimit)
	if err != nil {
		return err
	}
	tally, err := store.Tally()
	if err != nil {
		return err
	}

	fmt.Println("Results")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tictactoe play' to record the first one!")
		return nil
	}

	// Print header
	fmt.Printf("  %-5s  %-8s  %-5s  %-16s  %s\n", "#", "Result", "Moves", "Source", "Date")
	fmt.Printf("  %-5s  %-8s  %-5s  %-16s  %s\n", "-", "------", "-----", "------", "----")

	for _, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-5d  %-8s  %-5d  %-16s  %s\n", r.ID, tui.ResultLabel(r), len(r.Moves), r.Source, dateStr)
	}

	fmt.Println()
	fmt.Println(tui.TallyLine(tally))
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridlock/internal/platform/tui"
	"github.com/vovakirdan/gridlock/internal/registry"
	"github.com/vovakirdan/gridlock/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Shows the top scores for a mode, or for the default timed mode if
none is given. Use --interactive for a browsable scoreboard covering
every mode.

Examples:
  gridlock scores
  gridlock scores crossing_endless
  gridlock scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, sbErr := tui.RunScoreboard(store, width, height); sbErr != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", sbErr)
			os.Exit(1)
		}
		return
	}

	mode := "crossing"
	if len(args) > 0 {
		mode = args[0]
	}

	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'gridlock list' to see available modes.")
		os.Exit(1)
	}

	results, err := store.TopResults(mode, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Top scores for %s:\n\n", mode)

	if len(results) == 0 {
		fmt.Println("  No sessions recorded yet.")
		return
	}

	fmt.Printf("  %-5s %-8s %-7s %s\n", "Rank", "Score", "Outcome", "Date")
	fmt.Printf("  %-5s %-8s %-7s %s\n", "----", "-----", "-------", "----")
	for i, r := range results {
		fmt.Printf("  #%-4d %-8d %-7s %s\n", i+1, r.Score, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, bestErr := store.HighScore(mode); bestErr == nil && best > 0 {
		fmt.Printf("\n  Best: %d\n", best)
	}
}

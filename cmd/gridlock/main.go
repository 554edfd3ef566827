// gridlock is a terminal traffic-intersection arcade game: flip the lights,
// cause crashes, beat the clock.
//
// Usage:
//
//	gridlock play [mode]     - Play (default: timed mode)
//	gridlock menu            - Pick a mode interactively
//	gridlock list            - List available modes
//	gridlock scores [mode]   - Show high scores
//	gridlock serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible sessions
//	--db <path>     - Set database path (default: ~/.gridlock/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/gridlock/internal/games/crossing"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridlock",
	Short: "Gridlock - Cause traffic chaos in your terminal",
	Long: `Gridlock is a terminal arcade game. Cars stream through a grid of four
intersections; you control the traffic lights. Crashes score points. Reach
the target before the clock runs out.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  list     - Show all available modes
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  gridlock play
  gridlock play crossing_endless
  gridlock menu
  gridlock serve --ssh :2222
  gridlock scores crossing`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridlock/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

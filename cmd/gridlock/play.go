package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridlock/internal/core"
	"github.com/vovakirdan/gridlock/internal/games/crossing"
	"github.com/vovakirdan/gridlock/internal/platform/tui"
	"github.com/vovakirdan/gridlock/internal/registry"
	"github.com/vovakirdan/gridlock/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode. Defaults to the timed mode.

Controls:
  1-4 / click  - Toggle the traffic light at that intersection
  P            - Pause
  R            - Restart (after the session ends)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 90 second sessions with a lower target score
  normal - The standard 60 second session
  hard   - 45 seconds, higher target, denser traffic
  fixed  - No in-session difficulty progression

Examples:
  gridlock play
  gridlock play crossing_endless
  gridlock play --difficulty hard
  gridlock play --config ./my-crossing.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "crossing"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gridlock list' to see available modes.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Tuning applies to games created after this point
	crossing.SetConfigPath(flagConfig)
	crossing.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridlock/internal/core"
	"github.com/vovakirdan/gridlock/internal/platform/tui"
	"github.com/vovakirdan/gridlock/internal/registry"
	"github.com/vovakirdan/gridlock/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive mode picker",
	Long: `Opens an interactive menu to pick a mode. After a session ends you
return to the menu, so high scores refresh between rounds.`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	width, height := 80, 24
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	for {
		result, menuErr := tui.RunMenu(store, cfg)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", menuErr)
			os.Exit(1)
		}

		if result.Quit {
			return
		}

		// Carry resize from the menu into the game
		cfg = result.Config

		game, createErr := registry.Create(result.GameID)
		if createErr != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", createErr)
			os.Exit(1)
		}

		gameCfg := cfg
		if gameCfg.Seed == 0 {
			gameCfg.Seed = time.Now().UnixNano()
		}

		if runErr := tui.Run(game, store, gameCfg); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
	}
}

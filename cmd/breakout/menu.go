package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a layout picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a layout.
Leaving a game with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select layout
  Tab          - Best runs
  Q            - Quit

Examples:
  breakout menu
  breakout menu --fps 30
  breakout menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if flagDifficulty == "" {
			preset, ok, selErr := tui.RunDifficultySelector(cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			if !ok {
				continue
			}
			breakout.SetDifficultyPreset(string(preset))
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		cfg.Seed = time.Now().UnixNano()

		backToMenu, err := tui.Run(game, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}

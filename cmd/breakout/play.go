package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [layout]",
	Short: "Play a layout",
	Long: `Start playing the specified layout (default: breakout).

Controls:
  Left/A, Right/D  - Move paddle
  Space/Up         - Launch balls
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Leave the game
  Q/Ctrl+C         - Quit

Difficulty options (without --difficulty a picker is shown):
  easy   - Wide paddle, slow speed-up
  normal - Default paddle, speed-up from 30%
  hard   - Narrow paddle, fast speed-up
  fixed  - No speed-up, stays at config's initial level

Examples:
  breakout play
  breakout play breakout_wall
  breakout play --difficulty hard
  breakout play --config ./my-breakout.yaml --log-file ./breakout.log --debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "breakout"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown layout %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'breakout list' to see available layouts.")
		os.Exit(1)
	}

	cfg := runtimeConfig()

	if flagDifficulty == "" {
		preset, ok, err := tui.RunDifficultySelector(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			return
		}
		breakout.SetDifficultyPreset(string(preset))
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [layout]",
	Short: "Show best runs for a layout",
	Long: `Display the best runs for the specified layout (default: breakout),
ordered by score, then by the fewest ticks.

Examples:
  breakout scores
  breakout scores breakout_wall --limit 20
  breakout scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every stored run for the layout")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "breakout"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown layout %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'breakout list' to see available layouts.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Printf("Cleared runs for %s.\n", title)
		return
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'breakout play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-6s  %-4s  %-7s  %s\n", "Rank", "Score", "Result", "Blocks", "Lost", "Ticks", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-6s  %-4s  %-7s  %s\n", "----", "-----", "------", "------", "----", "-----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-6s  %-6d  %-4d  %-7d  %s\n",
			i+1, r.Score, r.Outcome, r.BlocksCleared, r.BallsLost, r.Ticks,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(gameID); err == nil {
		fmt.Printf("Runs: %d  Wins: %d  Best: %d  Average: %.1f\n",
			stats.Runs, stats.Wins, stats.HighScore, stats.AvgScore)
	}
}

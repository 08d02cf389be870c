// breakout is a terminal ball-and-paddle game built on a small 2-D
// collision engine.
//
// Usage:
//
//	breakout list              - List available layouts
//	breakout play [layout]     - Play a layout (default: breakout)
//	breakout menu              - Pick layouts interactively
//	breakout serve             - Start SSH server for remote play
//	breakout scores [layout]   - Show best runs for a layout
//	breakout config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Seed recorded with the run
//	--db <path>          - Set database path (default: ~/.breakout/runs.db)
//	--config <path>      - Custom YAML config
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>    - Write game logs to a file
//	--debug              - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

// logFile is closed after the command finishes.
var logFile *os.File

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce balls, clear bricks, in your terminal",
	Long: `Breakout is a terminal ball-and-paddle game. Balls move in straight
segments, bounce off the nearest wall, brick or paddle, and take the color
of the bricks they destroy.

Available commands:
  list     - Show all available layouts
  play     - Play a layout directly
  menu     - Interactive layout picker
  serve    - Start SSH server for remote play
  scores   - View best runs
  config   - Print the effective configuration

Examples:
  breakout list
  breakout play
  breakout play breakout_wall --difficulty hard
  breakout menu
  breakout serve --ssh :2222
  breakout scores`,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed recorded with the run (0 = time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom breakout config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogging routes game logs to --log-file and applies the global game
// settings. The terminal belongs to the TUI, so without a file logs are dropped.
func setupLogging(_ *cobra.Command, _ []string) error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	breakout.SetLogger(logger)
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)
	return nil
}

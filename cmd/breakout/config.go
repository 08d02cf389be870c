package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the breakout configuration",
	Long: `Print the configuration a new session would use, after the search
order (--config, ~/.breakout/configs, ./configs, built-in defaults) and the
--difficulty preset are applied.

With --defaults, print the built-in default file instead; it is a good
starting point for a custom config.

Examples:
  breakout config
  breakout config --difficulty hard
  breakout config --defaults > ~/.breakout/configs/breakout.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default config file")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	preset, _ := config.ParsePreset(flagDifficulty)
	config.ApplyBreakoutPreset(&cfg, preset)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}

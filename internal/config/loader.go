package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "breakout.yaml"

// LoadBreakout loads the breakout configuration.
// Search order: customPath -> ~/.breakout/configs/breakout.yaml ->
// ./configs/breakout.yaml -> embedded default -> DefaultBreakoutConfig.
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultBreakoutConfig(), err
		}
		if err := cfg.Validate(); err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func loadFile(path string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "configs", filename)
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)
	if cfg.Difficulty.Enabled {
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = 200
		cfg.Difficulty.Scaling.SpeedMultiplier = 0.25
	case DifficultyHard:
		cfg.Paddle.Width = 110
		cfg.Difficulty.Scaling.SpeedMultiplier = 1.0
	}
}

// Package config provides YAML-based configuration loading and difficulty
// management for the breakout game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Block layouts.
const (
	LayoutStaircase = "staircase"
	LayoutWall      = "wall"
)

// BreakoutConfig contains all configuration for a breakout session. Sizes
// are in world units; the renderer scales the world onto the terminal.
type BreakoutConfig struct {
	World      WorldConfig      `yaml:"world"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Balls      []BallConfig     `yaml:"balls"`
	Blocks     BlocksConfig     `yaml:"blocks"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the arena.
type WorldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Border        float64 `yaml:"border"`          // Thickness of the top, left and right walls
	BorderColor   string  `yaml:"border_color"`
	KillZoneColor string  `yaml:"kill_zone_color"`
}

// PaddleConfig defines the player paddle.
type PaddleConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // World units per tick
	Color  string  `yaml:"color"`
}

// BallConfig defines one ball at session start.
type BallConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	DX     float64 `yaml:"dx"`
	DY     float64 `yaml:"dy"`
	Color  string  `yaml:"color"`
}

// BlocksConfig defines the brick layout.
type BlocksConfig struct {
	Layout    string   `yaml:"layout"` // "staircase" or "wall"
	Rows      int      `yaml:"rows"`
	Cols      int      `yaml:"cols"`
	Width     float64  `yaml:"width"`
	Height    float64  `yaml:"height"`
	StartY    float64  `yaml:"start_y"`
	RowColors []string `yaml:"row_colors"` // Cycled when there are more rows than colors
}

// ScoringConfig defines points.
type ScoringConfig struct {
	HitPoints  int `yaml:"hit_points"`
	ClearBonus int `yaml:"clear_bonus"`
}

// PhysicsConfig tunes the collision engine.
type PhysicsConfig struct {
	Pushback   float64 `yaml:"pushback"`
	Broadphase bool    `yaml:"broadphase"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. An empty string means no
// preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate reports the first setting that cannot produce a playable session.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	case c.World.Border < 0:
		return fmt.Errorf("world border must not be negative, got %g", c.World.Border)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("paddle size must be positive, got %gx%g", c.Paddle.Width, c.Paddle.Height)
	case c.Paddle.Speed < 0:
		return fmt.Errorf("paddle speed must not be negative, got %g", c.Paddle.Speed)
	case len(c.Balls) == 0:
		return errors.New("at least one ball is required")
	case c.Blocks.Rows < 0 || c.Blocks.Cols < 0:
		return fmt.Errorf("block grid must not be negative, got %dx%d", c.Blocks.Rows, c.Blocks.Cols)
	case c.Blocks.Width <= 0 || c.Blocks.Height <= 0:
		return fmt.Errorf("block size must be positive, got %gx%g", c.Blocks.Width, c.Blocks.Height)
	case c.Blocks.Layout != LayoutStaircase && c.Blocks.Layout != LayoutWall:
		return fmt.Errorf("unknown block layout %q", c.Blocks.Layout)
	case c.Physics.Pushback < 0:
		return fmt.Errorf("pushback must not be negative, got %g", c.Physics.Pushback)
	}

	for i, b := range c.Balls {
		if b.Radius <= 0 {
			return fmt.Errorf("ball %d: radius must be positive, got %g", i, b.Radius)
		}
		if _, err := core.ParseColor(b.Color); err != nil {
			return fmt.Errorf("ball %d: %w", i, err)
		}
	}

	colors := []string{c.World.BorderColor, c.World.KillZoneColor, c.Paddle.Color}
	colors = append(colors, c.Blocks.RowColors...)
	for _, name := range colors {
		if _, err := core.ParseColor(name); err != nil {
			return err
		}
	}
	return nil
}

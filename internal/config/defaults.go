package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default configuration: an 800x600 arena
// with a six row staircase of blocks and three balls.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		World: WorldConfig{
			Width:         800,
			Height:        600,
			Border:        10,
			BorderColor:   "gray",
			KillZoneColor: "orange",
		},
		Paddle: PaddleConfig{
			X:      350,
			Y:      560,
			Width:  150,
			Height: 20,
			Speed:  7,
			Color:  "yellow",
		},
		Balls: []BallConfig{
			{X: 400, Y: 500, Radius: 7, DX: 3, DY: -4, Color: "red"},
			{X: 300, Y: 450, Radius: 7, DX: -3, DY: -5, Color: "white"},
			{X: 100, Y: 450, Radius: 7, DX: -3, DY: -5, Color: "pink"},
		},
		Blocks: BlocksConfig{
			Layout:    LayoutStaircase,
			Rows:      6,
			Cols:      12,
			Width:     50,
			Height:    20,
			StartY:    100,
			RowColors: []string{"gray", "red", "yellow", "blue", "pink", "green"},
		},
		Scoring: ScoringConfig{
			HitPoints:  5,
			ClearBonus: 100,
		},
		Physics: PhysicsConfig{
			Pushback:   1.0,
			Broadphase: false,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 400,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}

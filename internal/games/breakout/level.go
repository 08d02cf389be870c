package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/geom"
)

// killZoneDrop is how far below the bottom wall line the kill zone starts.
const killZoneDrop = 5

// blockSpec is one block to place.
type blockSpec struct {
	rect  geom.Rectangle
	color core.Color
}

// arena holds the fixed structure around the play field.
type arena struct {
	walls    []blockSpec // top, left, right
	killZone blockSpec
}

// buildArena returns the walls and the kill zone for a world.
func buildArena(w config.WorldConfig) arena {
	color := colorOrDefault(w.BorderColor)
	b := w.Border
	return arena{
		walls: []blockSpec{
			{geom.Rect(0, 0, w.Width, b), color},
			{geom.Rect(0, b, b, w.Height-b), color},
			{geom.Rect(w.Width-b, b, b, w.Height-b), color},
		},
		killZone: blockSpec{
			geom.Rect(0, w.Height-b+killZoneDrop, w.Width, b),
			colorOrDefault(w.KillZoneColor),
		},
	}
}

// buildLayout places the bricks.
//
// The staircase layout drops one block per row and right-aligns every row
// against the right wall. The wall layout fills every row and centers it.
func buildLayout(cfg config.BlocksConfig, w config.WorldConfig) []blockSpec {
	var specs []blockSpec
	for row := 0; row < cfg.Rows; row++ {
		cols := cfg.Cols
		startX := (w.Width - float64(cols)*cfg.Width) / 2
		if cfg.Layout == config.LayoutStaircase {
			cols = cfg.Cols - row
			startX = w.Width - w.Border - float64(cols)*cfg.Width
		}

		color := rowColor(cfg.RowColors, row)
		y := cfg.StartY + float64(row)*cfg.Height
		for col := 0; col < cols; col++ {
			x := startX + float64(col)*cfg.Width
			specs = append(specs, blockSpec{geom.Rect(x, y, cfg.Width, cfg.Height), color})
		}
	}
	return specs
}

func rowColor(names []string, row int) core.Color {
	if len(names) == 0 {
		return core.ColorWhite
	}
	return colorOrDefault(names[row%len(names)])
}

// colorOrDefault parses a color that Validate has already accepted.
func colorOrDefault(name string) core.Color {
	c, err := core.ParseColor(name)
	if err != nil {
		return core.ColorDefault
	}
	return c
}

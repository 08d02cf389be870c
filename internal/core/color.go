package core

import (
	"fmt"
	"strings"
)

// Color is a foreground color for a screen cell. The terminal renderer maps
// each value to an ANSI color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink
)

var colorNames = map[string]Color{
	"default":        ColorDefault,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright_red":     ColorBrightRed,
	"bright_green":   ColorBrightGreen,
	"bright_yellow":  ColorBrightYellow,
	"bright_blue":    ColorBrightBlue,
	"bright_magenta": ColorBrightMagenta,
	"bright_cyan":    ColorBrightCyan,
	"bright_white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"gray":           ColorGray,
	"grey":           ColorGray,
	"pink":           ColorPink,
}

// ParseColor looks up a color by its config name, ignoring case.
func ParseColor(name string) (Color, error) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ColorDefault, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

// String returns the config name of the color.
func (c Color) String() string {
	for name, v := range colorNames {
		if v == c && name != "grey" {
			return name
		}
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Package core provides the platform-neutral types shared by the game and
// the terminal front end. It has no Bubble Tea dependency so game logic can
// be stepped and rendered in tests.
package core

// Rect is an axis-aligned block of screen cells.
type Rect struct {
	X, Y int // Top-left cell
	W, H int // Size in cells
}

// NewRect creates a cell rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if cell (x, y) is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clip returns the part of r that lies inside bounds.
func (r Rect) Clip(bounds Rect) Rect {
	x0 := Max(r.X, bounds.X)
	y0 := Max(r.Y, bounds.Y)
	x1 := Min(r.Right(), bounds.Right())
	y1 := Min(r.Bottom(), bounds.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

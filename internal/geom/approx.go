// Package geom provides the 2-D primitives used by the collision engine:
// points, line segments and axis-aligned rectangles.
//
// Coordinates follow screen convention (y grows downward). Every comparison
// goes through the tolerance helpers in this file instead of exact floating
// point equality.
package geom

import "math"

// Epsilon is the tolerance used for all floating point comparisons.
const Epsilon = 1e-9

// ApproxEqual reports whether |a-b| < Epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Less reports whether a is reliably smaller than b (a < b - Epsilon).
func Less(a, b float64) bool {
	return a < b-Epsilon
}

// Greater reports whether a is reliably larger than b (a > b + Epsilon).
func Greater(a, b float64) bool {
	return a > b+Epsilon
}

// LessOrEqual treats values closer than Epsilon as equal.
func LessOrEqual(a, b float64) bool {
	return a < b+Epsilon
}

// GreaterOrEqual treats values closer than Epsilon as equal.
func GreaterOrEqual(a, b float64) bool {
	return a > b-Epsilon
}

// between reports whether val lies in the interval spanned by a and c,
// in either order. The sign test admits points up to Epsilon outside.
func between(a, val, c float64) bool {
	return (val-a)*(val-c) <= Epsilon
}

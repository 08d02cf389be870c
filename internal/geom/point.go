package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is an immutable position in the plane.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	return p.vec().Sub(other.vec()).Len()
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return a.Distance(b)
}

// Equal reports whether both coordinates match within Epsilon.
func (p Point) Equal(other Point) bool {
	return ApproxEqual(p.X, other.X) && ApproxEqual(p.Y, other.Y)
}

// Translate returns p moved by (dx, dy).
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String formats the point as (x, y).
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) vec() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}

// Package physics implements the motion and collision-response side of the
// engine: velocities, collidable obstacles, the collision environment and
// the per-tick motion step of a ball.
//
// Everything here is single-threaded. A tick is driven from outside by
// calling Ball.Step and Paddle.Update; nothing in this package blocks.
package physics

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-breakout/internal/geom"
)

// Velocity is the change in position per tick. Speed and angle are derived
// once at construction.
type Velocity struct {
	dx, dy float64
	speed  float64
	angle  float64 // degrees, as returned by atan2
}

// NewVelocity returns the velocity (dx, dy).
func NewVelocity(dx, dy float64) Velocity {
	v := mgl64.Vec2{dx, dy}
	return Velocity{
		dx:    dx,
		dy:    dy,
		speed: v.Len(),
		angle: mgl64.RadToDeg(math.Atan2(dy, dx)),
	}
}

// FromAngleAndSpeed builds a velocity from a direction in degrees.
// 0° points along +x and angles grow toward +y.
func FromAngleAndSpeed(angle, speed float64) Velocity {
	rad := mgl64.DegToRad(angle)
	return NewVelocity(speed*math.Cos(rad), speed*math.Sin(rad))
}

func (v Velocity) Dx() float64    { return v.dx }
func (v Velocity) Dy() float64    { return v.dy }
func (v Velocity) Speed() float64 { return v.speed }

// Angle returns the direction in degrees in (-180, 180].
func (v Velocity) Angle() float64 { return v.angle }

// ApplyToPoint returns p moved by one tick of v.
func (v Velocity) ApplyToPoint(p geom.Point) geom.Point {
	return p.Translate(v.dx, v.dy)
}

// WithSpeed returns a velocity with the same direction and the given
// magnitude. A zero velocity stays zero.
func (v Velocity) WithSpeed(speed float64) Velocity {
	if v.speed == 0 {
		return v
	}
	dir := mgl64.Vec2{v.dx, v.dy}.Normalize().Mul(speed)
	return NewVelocity(dir[0], dir[1])
}

func (v Velocity) String() string {
	return fmt.Sprintf("(dx=%g, dy=%g)", v.dx, v.dy)
}

package physics

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/geom"
)

// DefaultPushback is how far short of a collision point a ball is placed,
// per axis, after a hit.
const DefaultPushback = 1.0

// Ball is a moving circle. Only its center takes part in collision
// detection; the radius is draw data.
type Ball struct {
	center   geom.Point
	radius   float64
	color    core.Color
	velocity Velocity
	pushback float64
}

// NewBall creates a ball at rest.
func NewBall(center geom.Point, radius float64, color core.Color) *Ball {
	return &Ball{
		center:   center,
		radius:   radius,
		color:    color,
		pushback: DefaultPushback,
	}
}

func (b *Ball) Center() geom.Point           { return b.center }
func (b *Ball) Radius() float64              { return b.radius }
func (b *Ball) Color() core.Color            { return b.color }
func (b *Ball) SetColor(c core.Color)        { b.color = c }
func (b *Ball) Velocity() Velocity           { return b.velocity }
func (b *Ball) SetVelocity(v Velocity)       { b.velocity = v }
func (b *Ball) SetCenter(center geom.Point)  { b.center = center }
func (b *Ball) SetPushback(distance float64) { b.pushback = distance }

// Trajectory returns the segment the ball would travel this tick if nothing
// were in the way.
func (b *Ball) Trajectory() geom.Segment {
	return geom.NewSegment(b.center, b.velocity.ApplyToPoint(b.center))
}

// Step advances the ball by one tick against env.
//
// Without a collision the ball moves by its full velocity. Otherwise it is
// placed just short of the nearest collision point, the struck object
// responds, and the ball takes the returned velocity. Only the nearest
// collision is resolved.
func (b *Ball) Step(env CollisionFinder) (CollisionInfo, bool) {
	trajectory := b.Trajectory()
	info, ok := env.ClosestCollision(trajectory)
	if !ok {
		b.center = trajectory.End()
		return CollisionInfo{}, false
	}

	b.center = geom.Pt(
		backOff(info.Point.X, b.velocity.Dx(), b.pushback),
		backOff(info.Point.Y, b.velocity.Dy(), b.pushback),
	)
	b.velocity = info.Object.Hit(b, info.Point, b.velocity)
	return info, true
}

// backOff moves coord against the direction of travel d.
func backOff(coord, d, distance float64) float64 {
	switch {
	case d > 0:
		return coord - distance
	case d < 0:
		return coord + distance
	default:
		return coord
	}
}

package physics

import "github.com/vovakirdan/tui-breakout/internal/geom"

// Collidable is anything a ball can strike.
type Collidable interface {
	// CollisionRectangle returns the current collision shape.
	CollisionRectangle() geom.Rectangle

	// Hit is called exactly once per detected collision and returns the
	// velocity the ball leaves with. Side effects are allowed.
	Hit(hitter *Ball, collisionPoint geom.Point, current Velocity) Velocity
}

// CollisionInfo describes the nearest collision along a trajectory.
type CollisionInfo struct {
	Point  geom.Point
	Object Collidable
}

// staticCollidable is implemented by collidables whose rectangle never
// changes once added to an environment. Only those are put in the
// broadphase index.
type staticCollidable interface {
	Static() bool
}

func isStatic(c Collidable) bool {
	s, ok := c.(staticCollidable)
	return ok && s.Static()
}

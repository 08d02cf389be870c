package physics

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/geom"
)

// paddleRegions is the number of equal-width zones across the paddle top.
const paddleRegions = 5

// regionAngles are the outgoing directions, in degrees, for each zone. The
// middle zone has no fixed angle and reflects instead.
var regionAngles = [paddleRegions]float64{300, 330, math.NaN(), 30, 60}

// Paddle is the player-controlled obstacle.
type Paddle struct {
	rect        geom.Rectangle
	color       core.Color
	speed       float64
	screenWidth float64
}

// NewPaddle creates a paddle that moves speed units per tick and wraps
// around a screen of the given width.
func NewPaddle(rect geom.Rectangle, color core.Color, speed, screenWidth float64) *Paddle {
	return &Paddle{
		rect:        rect,
		color:       color,
		speed:       speed,
		screenWidth: screenWidth,
	}
}

func (p *Paddle) CollisionRectangle() geom.Rectangle { return p.rect }
func (p *Paddle) Color() core.Color                  { return p.color }
func (p *Paddle) Speed() float64                     { return p.speed }

// MoveLeft moves the paddle one step left. Once it is entirely past the
// left edge it reappears at the right edge.
func (p *Paddle) MoveLeft() {
	x := p.rect.Left() - p.speed
	if x+p.rect.Width() < 0 {
		x = p.screenWidth
	}
	p.rect = p.rect.MoveTo(geom.Pt(x, p.rect.Top()))
}

// MoveRight moves the paddle one step right. Once it is entirely past the
// right edge it reappears at the left edge.
func (p *Paddle) MoveRight() {
	x := p.rect.Left() + p.speed
	if x > p.screenWidth {
		x = -p.rect.Width()
	}
	p.rect = p.rect.MoveTo(geom.Pt(x, p.rect.Top()))
}

// Update applies one tick of input.
func (p *Paddle) Update(left, right bool) {
	if left {
		p.MoveLeft()
	}
	if right {
		p.MoveRight()
	}
}

// Region returns the zone of the paddle top that x falls in.
func (p *Paddle) Region(x float64) int {
	width := p.rect.Width()
	if width <= 0 {
		return paddleRegions / 2
	}

	pos := x - p.rect.Left()
	if pos < 0 {
		pos = 0
	}
	if pos >= width {
		pos = width - 0.0001
	}
	region := int(pos / (width / paddleRegions))
	if region >= paddleRegions {
		region = paddleRegions - 1
	}
	return region
}

// Hit sends the ball off at an angle chosen by where it struck the paddle,
// keeping its speed. The result always points upward.
func (p *Paddle) Hit(_ *Ball, point geom.Point, v Velocity) Velocity {
	region := p.Region(point.X)

	var out Velocity
	if angle := regionAngles[region]; math.IsNaN(angle) {
		out = NewVelocity(v.Dx(), -math.Abs(v.Dy()))
	} else {
		out = FromAngleAndSpeed(angle, v.Speed())
	}

	if out.Dy() >= 0 {
		out = NewVelocity(out.Dx(), -math.Abs(out.Dy()))
	}
	return out
}

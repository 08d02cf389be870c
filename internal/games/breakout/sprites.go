package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/geom"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

// Glyphs used when drawing the world.
const (
	BlockChar    = '█'
	BorderChar   = '▒'
	KillZoneChar = '~'
	PaddleChar   = '='
	BallChar     = '●'
)

// Sprite is anything drawn each frame and advanced each tick.
type Sprite interface {
	Draw(dst *core.Screen, v viewport)
	TimePassed()
}

// SpriteCollection holds the sprites of a session in insertion order.
type SpriteCollection struct {
	sprites []Sprite
}

// Add appends s.
func (c *SpriteCollection) Add(s Sprite) {
	c.sprites = append(c.sprites, s)
}

// Remove drops the first occurrence of s.
func (c *SpriteCollection) Remove(s Sprite) {
	for i, cur := range c.sprites {
		if cur == s {
			c.sprites = append(c.sprites[:i:i], c.sprites[i+1:]...)
			return
		}
	}
}

// Len returns the number of sprites.
func (c *SpriteCollection) Len() int {
	return len(c.sprites)
}

// NotifyAllTimePassed advances every sprite once. Sprites added or removed
// during the pass take effect on the next one.
func (c *SpriteCollection) NotifyAllTimePassed() {
	snapshot := make([]Sprite, len(c.sprites))
	copy(snapshot, c.sprites)
	for _, s := range snapshot {
		s.TimePassed()
	}
}

// DrawAll draws every sprite in insertion order.
func (c *SpriteCollection) DrawAll(dst *core.Screen, v viewport) {
	for _, s := range c.sprites {
		s.Draw(dst, v)
	}
}

// viewport maps world coordinates onto a region of the screen.
type viewport struct {
	worldW, worldH float64
	area           core.Rect
}

func (v viewport) col(x float64) int {
	return v.area.X + int(math.Floor(x*float64(v.area.W)/v.worldW))
}

func (v viewport) row(y float64) int {
	return v.area.Y + int(math.Floor(y*float64(v.area.H)/v.worldH))
}

// cells returns the screen cells covered by r, at least one in each
// direction, clipped to the viewport area.
func (v viewport) cells(r geom.Rectangle) core.Rect {
	x0, y0 := v.col(r.Left()), v.row(r.Top())
	x1, y1 := v.col(r.Right()), v.row(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0).Clip(v.area)
}

// blockSprite draws a brick, wall or kill zone.
type blockSprite struct {
	block *physics.Block
	glyph rune
}

func (s *blockSprite) Draw(dst *core.Screen, v viewport) {
	dst.FillRect(v.cells(s.block.CollisionRectangle()), s.glyph, s.block.Color())
}

func (s *blockSprite) TimePassed() {}

// paddleSprite moves the paddle from the current tick's input.
type paddleSprite struct {
	paddle *physics.Paddle
	game   *Game
}

func (s *paddleSprite) Draw(dst *core.Screen, v viewport) {
	r := v.cells(s.paddle.CollisionRectangle())
	// The paddle is drawn one row tall so the ball stays visible above it.
	r.H = 1
	dst.FillRect(r, PaddleChar, s.paddle.Color())
}

func (s *paddleSprite) TimePassed() {
	s.paddle.Update(s.game.input.Has(core.ActionLeft), s.game.input.Has(core.ActionRight))
}

// ballSprite advances a ball through the environment.
type ballSprite struct {
	ball      *physics.Ball
	baseSpeed float64
	game      *Game
}

func (s *ballSprite) Draw(dst *core.Screen, v viewport) {
	c := s.ball.Center()
	x, y := v.col(c.X), v.row(c.Y)
	if v.area.Contains(x, y) {
		dst.SetColored(x, y, BallChar, s.ball.Color())
	}
}

func (s *ballSprite) TimePassed() {
	s.game.stepBall(s)
}

// hudSprite draws the status line.
type hudSprite struct {
	game *Game
}

func (s *hudSprite) Draw(dst *core.Screen, _ viewport) {
	s.game.renderHUD(dst)
}

func (s *hudSprite) TimePassed() {}

package physics

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/geom"
)

// BlockKind selects how a block responds to a hit.
type BlockKind uint8

const (
	// BlockSolid reflects the ball off the struck edge.
	BlockSolid BlockKind = iota
	// BlockKillZone lets the ball through and only notifies listeners.
	BlockKillZone
)

func (k BlockKind) String() string {
	switch k {
	case BlockSolid:
		return "solid"
	case BlockKillZone:
		return "kill_zone"
	default:
		return "unknown"
	}
}

// Block is a static rectangular obstacle. Bricks, arena borders and the
// kill zone below the paddle are all blocks.
type Block struct {
	rect      geom.Rectangle
	color     core.Color
	kind      BlockKind
	listeners []HitListener
}

// NewBlock creates a solid block.
func NewBlock(rect geom.Rectangle, color core.Color) *Block {
	return &Block{rect: rect, color: color, kind: BlockSolid}
}

// NewKillZone creates a pass-through block. Every hit is reported to its
// listeners.
func NewKillZone(rect geom.Rectangle, color core.Color) *Block {
	return &Block{rect: rect, color: color, kind: BlockKillZone}
}

func (b *Block) CollisionRectangle() geom.Rectangle { return b.rect }
func (b *Block) Color() core.Color                  { return b.color }
func (b *Block) Kind() BlockKind                    { return b.kind }

// Static reports that a block never moves.
func (b *Block) Static() bool { return true }

// AddHitListener subscribes l to hits on this block.
func (b *Block) AddHitListener(l HitListener) {
	b.listeners = append(b.listeners, l)
}

// RemoveHitListener unsubscribes the first occurrence of l. Safe to call
// from inside HitEvent.
func (b *Block) RemoveHitListener(l HitListener) {
	for i, cur := range b.listeners {
		if cur == l {
			b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of subscribed listeners.
func (b *Block) ListenerCount() int {
	return len(b.listeners)
}

// Hit reflects v off the edges containing p. A corner hit flips both
// components. A kill zone returns v unchanged. Listeners are notified when
// the hitter's color differs from the block's; a kill zone always notifies.
func (b *Block) Hit(hitter *Ball, p geom.Point, v Velocity) Velocity {
	out := v
	if b.kind == BlockSolid {
		dx, dy := v.Dx(), v.Dy()
		if geom.ApproxEqual(p.X, b.rect.Left()) || geom.ApproxEqual(p.X, b.rect.Right()) {
			dx = -dx
		}
		if geom.ApproxEqual(p.Y, b.rect.Top()) || geom.ApproxEqual(p.Y, b.rect.Bottom()) {
			dy = -dy
		}
		out = NewVelocity(dx, dy)
	}

	if b.kind == BlockKillZone || (hitter != nil && hitter.Color() != b.color) {
		b.notifyHit(hitter)
	}
	return out
}

// notifyHit iterates over a copy so listeners may unsubscribe mid-notification.
func (b *Block) notifyHit(hitter *Ball) {
	if len(b.listeners) == 0 {
		return
	}
	snapshot := make([]HitListener, len(b.listeners))
	copy(snapshot, b.listeners)
	for _, l := range snapshot {
		l.HitEvent(b, hitter)
	}
}

package physics

// HitListener is notified when a ball hits a block.
//
// Implementations are compared by identity when removed, so they should be
// pointer types.
type HitListener interface {
	HitEvent(beingHit *Block, hitter *Ball)
}

// HitNotifier is something listeners can subscribe to.
type HitNotifier interface {
	AddHitListener(l HitListener)
	RemoveHitListener(l HitListener)
}

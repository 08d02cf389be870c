package breakout

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// BallState is one ball in a Snapshot.
type BallState struct {
	X, Y   float64
	DX, DY float64
	Color  uint8
}

// Snapshot is the observable state of a session, used to check that equal
// inputs produce equal runs.
type Snapshot struct {
	Tick            uint64
	State           string
	Score           int
	BlocksRemaining int
	BallsRemaining  int
	PaddleX         float64
	Balls           []BallState
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	balls := make([]BallState, len(g.balls))
	for i, s := range g.balls {
		c, v := s.ball.Center(), s.ball.Velocity()
		balls[i] = BallState{X: c.X, Y: c.Y, DX: v.Dx(), DY: v.Dy(), Color: uint8(s.ball.Color())}
	}

	return Snapshot{
		Tick:            uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:           g.state,
		Score:           g.score.Value(),
		BlocksRemaining: g.remainingBlocks.Value(),
		BallsRemaining:  g.remainingBalls.Value(),
		PaddleX:         g.paddle.CollisionRectangle().Left(),
		Balls:           balls,
	}
}

// Hash returns an FNV-1a hash of the snapshot. Floats are hashed by their
// bit patterns, so any difference in position is detected.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	putF := func(v float64) { putU(math.Float64bits(v)) }
	putI := func(v int) { putU(uint64(int64(v))) } //#nosec G115 -- hash computation

	putU(snap.Tick)
	h.Write([]byte(snap.State))
	putI(snap.Score)
	putI(snap.BlocksRemaining)
	putI(snap.BallsRemaining)
	putF(snap.PaddleX)
	putI(len(snap.Balls))
	for _, b := range snap.Balls {
		putF(b.X)
		putF(b.Y)
		putF(b.DX)
		putF(b.DY)
		putU(uint64(b.Color))
	}

	return h.Sum64()
}

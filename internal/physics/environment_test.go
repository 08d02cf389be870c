package physics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/geom"
)

func TestClosestCollisionPicksNearest(t *testing.T) {
	far := NewBlock(geom.Rect(20, -5, 10, 10), core.ColorRed)
	near := NewBlock(geom.Rect(5, -5, 10, 10), core.ColorBlue)

	env := NewEnvironment()
	env.Add(far)
	env.Add(near)

	info, ok := env.ClosestCollision(geom.Seg(0, 0, 40, 0))
	require.True(t, ok)
	assert.Same(t, near, info.Object)
	assert.True(t, info.Point.Equal(geom.Pt(5, 0)), "got %v", info.Point)
}

func TestClosestCollisionTieGoesToFirstRegistered(t *testing.T) {
	// b is closer by less than epsilon, so it does not beat a.
	a := NewBlock(geom.Rect(5+geom.Epsilon/2, -5, 10, 10), core.ColorRed)
	b := NewBlock(geom.Rect(5, -5, 10, 10), core.ColorBlue)

	env := NewEnvironment()
	env.Add(a)
	env.Add(b)
	info, ok := env.ClosestCollision(geom.Seg(0, 0, 10, 0))
	require.True(t, ok)
	assert.Same(t, a, info.Object)

	env = NewEnvironment()
	env.Add(b)
	env.Add(a)
	info, ok = env.ClosestCollision(geom.Seg(0, 0, 10, 0))
	require.True(t, ok)
	assert.Same(t, b, info.Object)
}

func TestClosestCollisionNone(t *testing.T) {
	env := NewEnvironment()
	_, ok := env.ClosestCollision(geom.Seg(0, 0, 10, 0))
	assert.False(t, ok)

	env.Add(NewBlock(geom.Rect(0, 50, 10, 10), core.ColorRed))
	_, ok = env.ClosestCollision(geom.Seg(0, 0, 10, 0))
	assert.False(t, ok)
}

func TestEnvironmentRemove(t *testing.T) {
	a := NewBlock(geom.Rect(0, 0, 1, 1), core.ColorRed)
	b := NewBlock(geom.Rect(2, 0, 1, 1), core.ColorRed)
	c := NewBlock(geom.Rect(4, 0, 1, 1), core.ColorRed)

	env := NewEnvironment()
	env.Add(a)
	env.Add(b)
	env.Add(c)

	assert.True(t, env.Remove(b))
	assert.False(t, env.Remove(b))
	assert.Equal(t, 2, env.Len())
	assert.Equal(t, []Collidable{a, c}, env.Collidables())
}

func TestBroadphaseMatchesLinearScan(t *testing.T) {
	linear := NewEnvironment()
	indexed := NewEnvironment(WithBroadphase())

	var blocks []*Block
	for row := 0; row < 6; row++ {
		for col := 0; col < 12; col++ {
			blocks = append(blocks, NewBlock(geom.Rect(float64(10+col*50), float64(100+row*20), 50, 20), core.ColorRed))
		}
	}
	paddle := NewPaddle(geom.Rect(350, 560, 150, 20), core.ColorYellow, 7, 800)

	for _, b := range blocks {
		linear.Add(b)
		indexed.Add(b)
	}
	linear.Add(paddle)
	indexed.Add(paddle)

	// Remove a few so deletion from the tree is exercised too.
	for _, i := range []int{0, 13, 40, 71} {
		require.True(t, linear.Remove(blocks[i]))
		require.True(t, indexed.Remove(blocks[i]))
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		x, y := rng.Float64()*800, rng.Float64()*600
		traj := geom.Seg(x, y, x+rng.Float64()*40-20, y+rng.Float64()*40-20)

		want, wantOK := linear.ClosestCollision(traj)
		got, gotOK := indexed.ClosestCollision(traj)
		require.Equal(t, wantOK, gotOK, "trajectory %v", traj)
		if !wantOK {
			continue
		}
		assert.Same(t, want.Object, got.Object, "trajectory %v", traj)
		assert.True(t, want.Point.Equal(got.Point), "trajectory %v", traj)
	}
}

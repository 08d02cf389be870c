package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproxComparisons(t *testing.T) {
	assert.True(t, ApproxEqual(1.0, 1.0+Epsilon/2))
	assert.False(t, ApproxEqual(1.0, 1.0+Epsilon*2))

	assert.False(t, Less(1.0, 1.0+Epsilon/2), "values within epsilon are not ordered")
	assert.True(t, Less(1.0, 1.1))
	assert.True(t, Greater(1.1, 1.0))
	assert.False(t, Greater(1.0+Epsilon/2, 1.0))
	assert.True(t, LessOrEqual(1.0+Epsilon/2, 1.0))
	assert.True(t, GreaterOrEqual(1.0-Epsilon/2, 1.0))
}

func TestPointDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		a := Pt(rng.Float64()*1000-500, rng.Float64()*1000-500)
		b := Pt(rng.Float64()*1000-500, rng.Float64()*1000-500)
		assert.Equal(t, a.Distance(b), b.Distance(a), "distance must be symmetric")
		assert.InDelta(t, 0, a.Distance(a), Epsilon)
	}

	assert.InDelta(t, 5.0, Distance(Pt(0, 0), Pt(3, 4)), Epsilon)
}

func TestPointEqual(t *testing.T) {
	assert.True(t, Pt(1, 2).Equal(Pt(1+Epsilon/10, 2-Epsilon/10)))
	assert.False(t, Pt(1, 2).Equal(Pt(1.001, 2)))
	assert.Equal(t, Pt(4, 7), Pt(1, 2).Translate(3, 5))
}

func TestSegmentDerived(t *testing.T) {
	s := Seg(0, 0, 6, 8)
	assert.InDelta(t, 10.0, s.Length(), Epsilon)
	assert.Equal(t, Pt(3, 4), s.Middle())
	assert.False(t, s.IsVertical())
	assert.InDelta(t, 8.0/6.0, s.Slope(), Epsilon)
	assert.InDelta(t, 0.0, s.YIntercept(), Epsilon)

	v := Seg(3, 0, 3, 10)
	assert.True(t, v.IsVertical())
	assert.Equal(t, -1.0, v.Slope(), "vertical segments report the sentinel slope")

	nearlyVertical := Seg(3, 0, 3+Epsilon/2, 10)
	assert.True(t, nearlyVertical.IsVertical())
}

func TestSegmentDoesNotAlias(t *testing.T) {
	start := Pt(1, 1)
	s := NewSegment(start, Pt(2, 2))
	start.X = 100
	assert.Equal(t, Pt(1, 1), s.Start())

	got := s.Start()
	got.Y = 50
	assert.Equal(t, Pt(1, 1), s.Start())
}

func TestSegmentEqual(t *testing.T) {
	a := Seg(0, 0, 5, 5)
	assert.True(t, a.Equal(Seg(0, 0, 5, 5)))
	assert.True(t, a.Equal(Seg(5, 5, 0, 0)), "endpoint order does not matter")
	assert.False(t, a.Equal(Seg(0, 0, 5, 6)))
}

func TestSegmentContains(t *testing.T) {
	s := Seg(0, 0, 10, 10)
	assert.True(t, s.Contains(Pt(5, 5)))
	assert.True(t, s.Contains(Pt(10, 10)))
	assert.False(t, s.Contains(Pt(11, 11)), "on the line but past the end")
	assert.False(t, s.Contains(Pt(5, 6)))

	v := Seg(2, 0, 2, 4)
	assert.True(t, v.Contains(Pt(2, 3)))
	assert.False(t, v.Contains(Pt(2, 5)))
	assert.False(t, v.Contains(Pt(2.1, 3)))
}

func TestSegmentIntersection(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Segment
		want  Point
		found bool
	}{
		{
			name:  "crossing diagonals",
			a:     Seg(0, 0, 10, 10),
			b:     Seg(0, 10, 10, 0),
			want:  Pt(5, 5),
			found: true,
		},
		{
			name:  "lines cross outside first segment",
			a:     Seg(0, 0, 1, 1),
			b:     Seg(0, 10, 10, 0),
			found: false,
		},
		{
			name:  "shared endpoint",
			a:     Seg(0, 0, 5, 5),
			b:     Seg(5, 5, 10, 0),
			want:  Pt(5, 5),
			found: true,
		},
		{
			name:  "parallel horizontal",
			a:     Seg(0, 0, 10, 0),
			b:     Seg(0, 1, 10, 1),
			found: false,
		},
		{
			name:  "collinear overlapping",
			a:     Seg(0, 0, 10, 10),
			b:     Seg(5, 5, 15, 15),
			found: false,
		},
		{
			name:  "both vertical coincident",
			a:     Seg(0, 0, 0, 10),
			b:     Seg(0, 5, 0, 15),
			found: false,
		},
		{
			name:  "both vertical apart",
			a:     Seg(0, 0, 0, 10),
			b:     Seg(3, 0, 3, 10),
			found: false,
		},
		{
			name:  "first vertical",
			a:     Seg(5, -5, 5, 5),
			b:     Seg(0, 0, 10, 0),
			want:  Pt(5, 0),
			found: true,
		},
		{
			name:  "second vertical",
			a:     Seg(0, 2, 10, 12),
			b:     Seg(4, 0, 4, 10),
			want:  Pt(4, 6),
			found: true,
		},
		{
			name:  "vertical misses short segment",
			a:     Seg(5, 1, 5, 5),
			b:     Seg(0, 0, 10, 0),
			found: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := tc.a.Intersection(tc.b)
			require.Equal(t, tc.found, ok)
			assert.Equal(t, tc.found, tc.a.Intersects(tc.b))
			if tc.found {
				assert.True(t, p.Equal(tc.want), "got %v, want %v", p, tc.want)
			}

			// Symmetric in the argument order.
			q, ok := tc.b.Intersection(tc.a)
			require.Equal(t, tc.found, ok)
			if tc.found {
				assert.True(t, q.Equal(tc.want), "reversed: got %v, want %v", q, tc.want)
			}
		})
	}
}

func TestIntersectionSatisfiesBothLines(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	randSeg := func() Segment {
		return Seg(rng.Float64()*100, rng.Float64()*100, rng.Float64()*100, rng.Float64()*100)
	}

	hits := 0
	for i := 0; i < 2000; i++ {
		a, b := randSeg(), randSeg()
		if a.IsVertical() || b.IsVertical() || ApproxEqual(a.Slope(), b.Slope()) {
			continue
		}
		p, ok := a.Intersection(b)
		if !ok {
			continue
		}
		hits++
		for _, s := range []Segment{a, b} {
			assert.LessOrEqual(t, math.Abs(p.Y-(s.Slope()*p.X+s.YIntercept())), Epsilon)
			assert.True(t, s.Contains(p))
		}
	}
	assert.Greater(t, hits, 0)
}

func TestParallelSegmentsNeverIntersect(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		x1, y1 := rng.Float64()*50, rng.Float64()*50
		dx, dy := rng.Float64()*20+1, rng.Float64()*20-10
		shift := rng.Float64() * 5

		a := Seg(x1, y1, x1+dx, y1+dy)
		// Same direction, offset along the line itself (collinear overlap).
		b := Seg(x1+dx/2, y1+dy/2, x1+dx/2+dx, y1+dy/2+dy)
		// Same direction, shifted off the line.
		c := Seg(x1, y1+shift+1, x1+dx, y1+dy+shift+1)

		assert.False(t, a.Intersects(b))
		assert.False(t, a.Intersects(c))

		va := Seg(x1, y1, x1, y1+dx)
		vb := Seg(x1, y1+dx/2, x1, y1+2*dx)
		assert.False(t, va.Intersects(vb))
	}
}

func TestMutuallyIntersecting(t *testing.T) {
	a := Seg(0, 0, 10, 0)
	b := Seg(10, 0, 5, 10)
	c := Seg(5, 10, 0, 0)
	assert.True(t, MutuallyIntersecting(a, b, c))
	assert.True(t, a.IntersectsBoth(b, c))

	far := Seg(100, 100, 110, 120)
	assert.False(t, MutuallyIntersecting(a, b, far))
	assert.False(t, a.IntersectsBoth(b, far))
}

func TestRectangleEdges(t *testing.T) {
	r := Rect(5, -5, 10, 10)
	assert.Equal(t, 5.0, r.Left())
	assert.Equal(t, 15.0, r.Right())
	assert.Equal(t, -5.0, r.Top())
	assert.Equal(t, 5.0, r.Bottom())

	edges := r.Edges()
	assert.True(t, edges[0].Equal(Seg(5, -5, 15, -5)), "top")
	assert.True(t, edges[1].Equal(Seg(15, -5, 15, 5)), "right")
	assert.True(t, edges[2].Equal(Seg(15, 5, 5, 5)), "bottom")
	assert.True(t, edges[3].Equal(Seg(5, 5, 5, -5)), "left")

	moved := r.MoveTo(Pt(0, 0))
	assert.Equal(t, Pt(0, 0), moved.UpperLeft())
	assert.Equal(t, Pt(5, -5), r.UpperLeft(), "MoveTo returns a copy")
}

func TestRectangleIntersectionPoints(t *testing.T) {
	r := Rect(5, -5, 10, 10)

	t.Run("hits left edge only", func(t *testing.T) {
		points := r.IntersectionPoints(Seg(0, 0, 10, 0))
		require.Len(t, points, 1)
		assert.True(t, points[0].Equal(Pt(5, 0)))
	})

	t.Run("passes through", func(t *testing.T) {
		points := r.IntersectionPoints(Seg(0, 0, 20, 0))
		assert.Len(t, points, 2)
	})

	t.Run("misses", func(t *testing.T) {
		assert.Empty(t, r.IntersectionPoints(Seg(0, 20, 30, 20)))
	})

	t.Run("corner hit reported once", func(t *testing.T) {
		sq := Rect(0, 0, 10, 10)
		points := sq.IntersectionPoints(Seg(-5, -5, 5, 5))
		require.Len(t, points, 1)
		assert.True(t, points[0].Equal(Pt(0, 0)))
	})

	t.Run("diagonal through opposite corners", func(t *testing.T) {
		sq := Rect(0, 0, 10, 10)
		points := sq.IntersectionPoints(Seg(-5, -5, 15, 15))
		require.Len(t, points, 2)
		assert.True(t, points[0].Equal(Pt(0, 0)))
		assert.True(t, points[1].Equal(Pt(10, 10)))
	})
}

func TestClosestIntersectionToStart(t *testing.T) {
	r := Rect(5, -5, 10, 10)

	p, ok := Seg(0, 0, 20, 0).ClosestIntersectionToStart(r)
	require.True(t, ok)
	assert.True(t, p.Equal(Pt(5, 0)))

	p, ok = Seg(20, 0, 0, 0).ClosestIntersectionToStart(r)
	require.True(t, ok)
	assert.True(t, p.Equal(Pt(15, 0)))

	_, ok = Seg(0, 20, 30, 20).ClosestIntersectionToStart(r)
	assert.False(t, ok)

	// Start inside the rectangle: only the exit point is reported.
	p, ok = Seg(10, 0, 10, 20).ClosestIntersectionToStart(r)
	require.True(t, ok)
	assert.True(t, p.Equal(Pt(10, 5)))
}

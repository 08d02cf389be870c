package physics

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/vovakirdan/tui-breakout/internal/geom"
)

// boundsSlack pads every box given to the R-tree. The tree treats touching
// boxes as disjoint and rejects zero-length sides, while the narrowphase
// accepts hits exactly on an edge.
const boundsSlack = 1.0

// CollisionFinder answers nearest-collision queries for a trajectory.
type CollisionFinder interface {
	ClosestCollision(trajectory geom.Segment) (CollisionInfo, bool)
}

// envEntry is one registered collidable. seq records registration order and
// decides ties.
type envEntry struct {
	c       Collidable
	seq     uint64
	indexed bool
	bounds  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *envEntry) Bounds() rtreego.Rect {
	return e.bounds
}

// Environment holds every collidable of a session and finds the closest
// collision along a trajectory.
//
// By default each query scans all collidables. With WithBroadphase, static
// collidables are kept in an R-tree and only those whose box overlaps the
// trajectory are tested; moving ones are always tested. Both modes return
// the same answer.
type Environment struct {
	entries []*envEntry
	nextSeq uint64
	tree    *rtreego.Rtree
}

// EnvironmentOption configures an Environment.
type EnvironmentOption func(*Environment)

// WithBroadphase indexes static collidables in an R-tree.
func WithBroadphase() EnvironmentOption {
	return func(e *Environment) {
		e.tree = rtreego.NewTree(2, 4, 16)
	}
}

// NewEnvironment creates an empty environment.
func NewEnvironment(opts ...EnvironmentOption) *Environment {
	e := &Environment{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Add registers c after every collidable already present.
func (e *Environment) Add(c Collidable) {
	entry := &envEntry{c: c, seq: e.nextSeq}
	e.nextSeq++

	if e.tree != nil && isStatic(c) {
		if bounds, err := boxAround(c.CollisionRectangle()); err == nil {
			entry.bounds = bounds
			entry.indexed = true
			e.tree.Insert(entry)
		}
	}
	e.entries = append(e.entries, entry)
}

// Remove unregisters the first occurrence of c. It reports whether c was
// present.
func (e *Environment) Remove(c Collidable) bool {
	for i, entry := range e.entries {
		if entry.c != c {
			continue
		}
		if entry.indexed {
			e.tree.Delete(entry)
		}
		e.entries = append(e.entries[:i], e.entries[i+1:]...)
		return true
	}
	return false
}

// Len returns the number of registered collidables.
func (e *Environment) Len() int {
	return len(e.entries)
}

// Collidables returns the registered collidables in registration order.
func (e *Environment) Collidables() []Collidable {
	out := make([]Collidable, len(e.entries))
	for i, entry := range e.entries {
		out[i] = entry.c
	}
	return out
}

// ClosestCollision returns the collidable whose boundary the trajectory
// crosses nearest to its start, and that crossing point. When two hits are
// equally distant within geom.Epsilon, the earlier registered collidable
// wins.
func (e *Environment) ClosestCollision(trajectory geom.Segment) (CollisionInfo, bool) {
	var (
		best     CollisionInfo
		bestDist float64
		found    bool
	)

	start := trajectory.Start()
	for _, entry := range e.candidates(trajectory) {
		p, ok := trajectory.ClosestIntersectionToStart(entry.c.CollisionRectangle())
		if !ok {
			continue
		}
		d := start.Distance(p)
		if !found || geom.Less(d, bestDist) {
			best = CollisionInfo{Point: p, Object: entry.c}
			bestDist = d
			found = true
		}
	}
	return best, found
}

// candidates returns the entries worth testing, in registration order.
func (e *Environment) candidates(trajectory geom.Segment) []*envEntry {
	if e.tree == nil {
		return e.entries
	}

	query, err := boxAround(boundingRect(trajectory))
	if err != nil {
		return e.entries
	}

	out := make([]*envEntry, 0, len(e.entries))
	for _, s := range e.tree.SearchIntersect(query) {
		out = append(out, s.(*envEntry))
	}
	for _, entry := range e.entries {
		if !entry.indexed {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

func boundingRect(s geom.Segment) geom.Rectangle {
	a, b := s.Start(), s.End()
	minX, maxX := minMax(a.X, b.X)
	minY, maxY := minMax(a.Y, b.Y)
	return geom.Rect(minX, minY, maxX-minX, maxY-minY)
}

func boxAround(r geom.Rectangle) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{r.Left() - boundsSlack, r.Top() - boundsSlack},
		[]float64{r.Width() + 2*boundsSlack, r.Height() + 2*boundsSlack},
	)
}

func minMax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}

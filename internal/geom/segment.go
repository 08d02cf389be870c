package geom

import "math"

// verticalSlope is what Slope reports for vertical segments. It is a stand-in,
// not a slope: callers branch on IsVertical first.
const verticalSlope = -1

// Segment is an immutable line segment from start to end.
type Segment struct {
	start Point
	end   Point
}

// NewSegment returns the segment from start to end.
func NewSegment(start, end Point) Segment {
	return Segment{start: start, end: end}
}

// Seg builds a segment from raw coordinates.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{start: Pt(x1, y1), end: Pt(x2, y2)}
}

// Start returns the first endpoint.
func (s Segment) Start() Point {
	return s.start
}

// End returns the second endpoint.
func (s Segment) End() Point {
	return s.end
}

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return s.start.Distance(s.end)
}

// Middle returns the midpoint.
func (s Segment) Middle() Point {
	return Pt((s.start.X+s.end.X)/2, (s.start.Y+s.end.Y)/2)
}

// IsVertical reports whether |Δx| < Epsilon.
func (s Segment) IsVertical() bool {
	return math.Abs(s.start.X-s.end.X) < Epsilon
}

// Slope returns Δy/Δx. Vertical segments report -1, which is not a real
// slope; check IsVertical before using the result.
func (s Segment) Slope() float64 {
	if s.IsVertical() {
		return verticalSlope
	}
	return (s.start.Y - s.end.Y) / (s.start.X - s.end.X)
}

// YIntercept returns b in y = m*x + b. Meaningless for vertical segments.
func (s Segment) YIntercept() float64 {
	return s.start.Y - s.Slope()*s.start.X
}

// onInfiniteLine reports whether p lies on the line through s.
func (s Segment) onInfiniteLine(p Point) bool {
	if s.IsVertical() {
		return math.Abs(p.X-s.start.X) <= Epsilon
	}
	return math.Abs(p.Y-(s.Slope()*p.X+s.YIntercept())) <= Epsilon
}

// Contains reports whether p lies on the finite segment.
func (s Segment) Contains(p Point) bool {
	if !s.onInfiniteLine(p) {
		return false
	}
	return between(s.start.X, p.X, s.end.X) && between(s.start.Y, p.Y, s.end.Y)
}

// Intersection returns the single point where s and other cross.
//
// Parallel segments never intersect, including collinear overlapping ones,
// and two vertical segments never intersect. The second return value is
// false when there is no intersection.
func (s Segment) Intersection(other Segment) (Point, bool) {
	v1, v2 := s.IsVertical(), other.IsVertical()

	var p Point
	switch {
	case v1 && v2:
		return Point{}, false
	case v1:
		x := s.start.X
		p = Pt(x, other.Slope()*x+other.YIntercept())
	case v2:
		x := other.start.X
		p = Pt(x, s.Slope()*x+s.YIntercept())
	default:
		m1, m2 := s.Slope(), other.Slope()
		if ApproxEqual(m1, m2) {
			return Point{}, false
		}
		b1, b2 := s.YIntercept(), other.YIntercept()
		x := (b2 - b1) / (m1 - m2)
		p = Pt(x, m1*x+b1)
	}

	if !s.Contains(p) || !other.Contains(p) {
		return Point{}, false
	}
	return p, true
}

// Intersects reports whether Intersection finds a point.
func (s Segment) Intersects(other Segment) bool {
	_, ok := s.Intersection(other)
	return ok
}

// IntersectsBoth reports whether s crosses both a and b.
func (s Segment) IntersectsBoth(a, b Segment) bool {
	return s.Intersects(a) && s.Intersects(b)
}

// MutuallyIntersecting reports whether each of the three segments crosses
// the other two.
func MutuallyIntersecting(a, b, c Segment) bool {
	return a.IntersectsBoth(b, c) && b.IntersectsBoth(a, c)
}

// Equal reports whether both segments have the same endpoints in any order.
func (s Segment) Equal(other Segment) bool {
	return (s.start.Equal(other.start) && s.end.Equal(other.end)) ||
		(s.start.Equal(other.end) && s.end.Equal(other.start))
}

// ClosestIntersectionToStart returns the intersection of s with r's boundary
// nearest to s.Start(). On ties the first point in edge order wins.
func (s Segment) ClosestIntersectionToStart(r Rectangle) (Point, bool) {
	points := r.IntersectionPoints(s)
	if len(points) == 0 {
		return Point{}, false
	}

	closest := points[0]
	minDist := s.start.Distance(closest)
	for _, p := range points[1:] {
		if d := s.start.Distance(p); Less(d, minDist) {
			closest, minDist = p, d
		}
	}
	return closest, true
}

package geom

// Rectangle is an immutable axis-aligned rectangle.
type Rectangle struct {
	upperLeft Point
	width     float64
	height    float64
}

// NewRectangle returns the rectangle with the given upper-left corner.
// Negative dimensions are the caller's problem.
func NewRectangle(upperLeft Point, width, height float64) Rectangle {
	return Rectangle{upperLeft: upperLeft, width: width, height: height}
}

// Rect builds a rectangle from raw coordinates.
func Rect(x, y, width, height float64) Rectangle {
	return NewRectangle(Pt(x, y), width, height)
}

func (r Rectangle) UpperLeft() Point { return r.upperLeft }
func (r Rectangle) Width() float64   { return r.width }
func (r Rectangle) Height() float64  { return r.height }
func (r Rectangle) Left() float64    { return r.upperLeft.X }
func (r Rectangle) Right() float64   { return r.upperLeft.X + r.width }
func (r Rectangle) Top() float64     { return r.upperLeft.Y }
func (r Rectangle) Bottom() float64  { return r.upperLeft.Y + r.height }

// MoveTo returns a copy of r with its upper-left corner at p.
func (r Rectangle) MoveTo(p Point) Rectangle {
	return NewRectangle(p, r.width, r.height)
}

// Edges returns the boundary as top, right, bottom, left.
func (r Rectangle) Edges() [4]Segment {
	ul := r.upperLeft
	ur := Pt(r.Right(), r.Top())
	br := Pt(r.Right(), r.Bottom())
	bl := Pt(r.Left(), r.Bottom())
	return [4]Segment{
		NewSegment(ul, ur),
		NewSegment(ur, br),
		NewSegment(br, bl),
		NewSegment(bl, ul),
	}
}

// IntersectionPoints returns every point where s crosses the boundary of r.
// A hit on a corner satisfies two edges but is reported once.
func (r Rectangle) IntersectionPoints(s Segment) []Point {
	var points []Point
	for _, edge := range r.Edges() {
		p, ok := edge.Intersection(s)
		if !ok || containsPoint(points, p) {
			continue
		}
		points = append(points, p)
	}
	return points
}

func containsPoint(points []Point, p Point) bool {
	for _, q := range points {
		if q.Equal(p) {
			return true
		}
	}
	return false
}

package geom

import "math"

// LineSegment is an oriented straight connection between two points.
type LineSegment struct {
	V1 Point2
	V2 Point2
}

// NewLineSegment constructs a LineSegment from two endpoints.
func NewLineSegment(x1, y1, x2, y2 float64) LineSegment {
	return LineSegment{V1: Point2{X: x1, Y: y1}, V2: Point2{X: x2, Y: y2}}
}

// Length returns the Euclidean length of the segment.
func (s LineSegment) Length() float64 {
	return s.V1.DistanceTo(s.V2)
}

// Start returns the first endpoint.
func (s LineSegment) Start() Point2 { return s.V1 }

// End returns the second endpoint.
func (s LineSegment) End() Point2 { return s.V2 }

// Reversed returns a segment with swapped endpoints.
func (s LineSegment) Reversed() LineSegment {
	return LineSegment{V1: s.V2, V2: s.V1}
}

// Sample discretises the segment into points with spacing no larger than
// maxSpacing: ceil(length/maxSpacing) points p_i = start +
// i*(end-start)/n for i in [0,n). The points are returned in start->end
// order; the caller reverses them when the entity is chained in reverse.
func (s LineSegment) Sample(maxSpacing float64) []Point2 {
	n := int(math.Ceil(s.Length() / maxSpacing))
	if n < 1 {
		n = 1
	}
	pts := make([]Point2, n)
	dx := (s.V2.X - s.V1.X) / float64(n)
	dy := (s.V2.Y - s.V1.Y) / float64(n)
	for i := 0; i < n; i++ {
		pts[i] = Point2{X: s.V1.X + float64(i)*dx, Y: s.V1.Y + float64(i)*dy}
	}
	return pts
}

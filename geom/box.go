package geom

// Box is an axis-aligned bounding box, inclusive on all sides.
//
// Example:
//
//	box := geom.Box{
//	    Min: geom.Point2{X: 0, Y: 0},
//	    Max: geom.Point2{X: 10, Y: 10},
//	}
type Box struct {
	Min Point2
	Max Point2
}

// BoundingBox computes the axis-aligned bounding box of a set of points.
// It panics if pts is empty; callers are expected to guard against empty
// input (the mesher never calls this with zero vertices).
func BoundingBox(pts []Point2) Box {
	b := Box{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
	}
	return b
}

// Width returns the box extent along X.
func (b Box) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the box extent along Y.
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }

// Center returns the box's midpoint.
func (b Box) Center() Point2 {
	return Point2{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

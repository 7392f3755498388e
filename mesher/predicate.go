package mesher

import "github.com/RaysceneNS/femcore/geom"

// circumcircleDegenerateEps is the tolerance used to detect a degenerate
// (collinear) triple of points when computing a circumcenter. Fixed
// constant, not a tunable.
const circumcircleDegenerateEps = 1e-6

// inCircle implements the InCircle predicate: given face vertices
// p1,p2,p3 and test point v, returns whether v lies inside (or on) the
// circumcircle of p1,p2,p3.
//
// This deliberately uses plain floating point with a fixed tolerance, not
// adaptive/exact arithmetic.
func inCircle(p1, p2, p3, v geom.Point2) bool {
	if samY(p1, p2, p3) {
		return false
	}
	xc, yc, ok := circumcenter(p1, p2, p3)
	if !ok {
		return false
	}
	dvx, dvy := v.X-xc, v.Y-yc
	dpx, dpy := p2.X-xc, p2.Y-yc
	return dvx*dvx+dvy*dvy <= dpx*dpx+dpy*dpy
}

// samY reports whether all three y-coordinates are within
// circumcircleDegenerateEps of each other.
func samY(p1, p2, p3 geom.Point2) bool {
	return abs(p1.Y-p2.Y) < circumcircleDegenerateEps &&
		abs(p2.Y-p3.Y) < circumcircleDegenerateEps &&
		abs(p1.Y-p3.Y) < circumcircleDegenerateEps
}

// circumcenter computes the circumcenter of triangle (p1,p2,p3) via
// perpendicular-bisector intersection. It uses the p1-p2 edge's bisector
// when that edge is not near-horizontal and the p2-p3 edge otherwise, so
// the bisector slope is never taken across a near-zero Δy.
func circumcenter(p1, p2, p3 geom.Point2) (xc, yc float64, ok bool) {
	switch {
	case abs(p2.Y-p1.Y) < circumcircleDegenerateEps:
		if abs(p3.Y-p2.Y) < circumcircleDegenerateEps {
			return 0, 0, false
		}
		m2 := -(p3.X - p2.X) / (p3.Y - p2.Y)
		mx2, my2 := (p2.X+p3.X)/2, (p2.Y+p3.Y)/2
		xc = (p2.X + p1.X) / 2
		yc = m2*(xc-mx2) + my2
		return xc, yc, true
	case abs(p3.Y-p2.Y) < circumcircleDegenerateEps:
		m1 := -(p2.X - p1.X) / (p2.Y - p1.Y)
		mx1, my1 := (p1.X+p2.X)/2, (p1.Y+p2.Y)/2
		xc = (p3.X + p2.X) / 2
		yc = m1*(xc-mx1) + my1
		return xc, yc, true
	default:
		m1 := -(p2.X - p1.X) / (p2.Y - p1.Y)
		m2 := -(p3.X - p2.X) / (p3.Y - p2.Y)
		mx1, my1 := (p1.X+p2.X)/2, (p1.Y+p2.Y)/2
		mx2, my2 := (p2.X+p3.X)/2, (p2.Y+p3.Y)/2
		if abs(m1-m2) < 1e-12 {
			return 0, 0, false
		}
		xc = (m1*mx1 - m2*mx2 + my2 - my1) / (m1 - m2)
		yc = m1*(xc-mx1) + my1
		return xc, yc, true
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

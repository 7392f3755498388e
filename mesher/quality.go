package mesher

import "github.com/RaysceneNS/femcore/geom"

// minQualityScore is the default shape-quality threshold below which a
// triangle is flagged for refinement.
const minQualityScore = 0.1

// minRefinementArea is the minimum triangle area a flagged triangle must
// exceed to be refined; triangles smaller than this are left alone so
// refinement cannot spiral on already-tiny slivers.
const minRefinementArea = 1e-6

// triangleQuality scores the shape of triangle (p1,p2,p3) by edge lengths
// a,b,c with a the longest: (b+c-a)(c+a-b)(a+b-c)/(a*b*c). The score is
// positive for well-shaped triangles and approaches zero as a triangle
// degenerates toward a sliver.
func triangleQuality(p1, p2, p3 geom.Point2) float64 {
	e1 := p1.DistanceTo(p2)
	e2 := p2.DistanceTo(p3)
	e3 := p3.DistanceTo(p1)

	a, b, c := e1, e2, e3
	if b > a {
		a, b = b, a
	}
	if c > a {
		a, c = c, a
	}
	return (b + c - a) * (c + a - b) * (a + b - c) / (a * b * c)
}

// needsRefinement reports whether the triangle (p1,p2,p3) should
// contribute its centroid as an improvement point: its quality score is
// below minQualityScore and its area exceeds minRefinementArea.
func needsRefinement(p1, p2, p3 geom.Point2) bool {
	area := p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y)
	if area < 0 {
		area = -area
	}
	area /= 2
	if area <= minRefinementArea {
		return false
	}
	return triangleQuality(p1, p2, p3) < minQualityScore
}

package mesher

import (
	"math"
	"testing"

	"github.com/RaysceneNS/femcore/geom"
)

func TestTriangleQualityEquilateralIsHigh(t *testing.T) {
	p1 := geom.Point2{X: 0, Y: 0}
	p2 := geom.Point2{X: 1, Y: 0}
	p3 := geom.Point2{X: 0.5, Y: math.Sqrt(3) / 2}
	q := triangleQuality(p1, p2, p3)
	if q <= minQualityScore {
		t.Fatalf("equilateral triangle quality = %v, want > %v", q, minQualityScore)
	}
}

func TestTriangleQualitySliverIsLow(t *testing.T) {
	p1 := geom.Point2{X: 0, Y: 0}
	p2 := geom.Point2{X: 1, Y: 0}
	p3 := geom.Point2{X: 0.5, Y: 0.01}
	q := triangleQuality(p1, p2, p3)
	if q >= minQualityScore {
		t.Fatalf("sliver triangle quality = %v, want < %v", q, minQualityScore)
	}
}

func TestNeedsRefinementIgnoresTinyTriangles(t *testing.T) {
	p1 := geom.Point2{X: 0, Y: 0}
	p2 := geom.Point2{X: 1e-4, Y: 0}
	p3 := geom.Point2{X: 0, Y: 1e-6}
	if needsRefinement(p1, p2, p3) {
		t.Fatal("tiny sliver below minRefinementArea should not be flagged")
	}
}

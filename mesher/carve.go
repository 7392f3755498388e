package mesher

import "github.com/RaysceneNS/femcore/geom"

// windingCount accumulates the winding-number parity contribution of a
// single polygon (closed, without the repeated first point) toward a test
// point:
//
//	if p1.y > test.y && p2.y <= test.y && cross <= 0: decrement
//	else if p2.y > test.y && cross >= 0: increment
func windingCount(polygon []geom.Point2, test geom.Point2) int {
	count := 0
	n := len(polygon)
	for i := 0; i < n; i++ {
		p1 := polygon[i]
		p2 := polygon[(i+1)%n]
		cross := (p2.X-p1.X)*(test.Y-p1.Y) - (test.X-p1.X)*(p2.Y-p1.Y)
		if p1.Y > test.Y && p2.Y <= test.Y && cross <= 0 {
			count--
		} else if p2.Y > test.Y && cross >= 0 {
			count++
		}
	}
	return count
}

// isInsideRegion reports whether test lies inside the region described by
// loops (outer boundary first, holes after): the sum of windingCount
// across all loops equals exactly 1. This single rule
// correctly includes the outer-only area and excludes holes.
func isInsideRegion(loops [][]geom.Point2, test geom.Point2) bool {
	sum := 0
	for _, l := range loops {
		sum += windingCount(l, test)
	}
	return sum == 1
}

// carveInterior keeps only faces whose centroid lies inside the region
// bounded by loops.
func carveInterior(faces []face, allVerts []geom.Point2, loops [][]geom.Point2) []face {
	out := faces[:0]
	for _, f := range faces {
		p1, p2, p3 := allVerts[f.V1], allVerts[f.V2], allVerts[f.V3]
		c := geom.Centroid(p1, p2, p3)
		if isInsideRegion(loops, c) {
			out = append(out, f)
		}
	}
	return out
}

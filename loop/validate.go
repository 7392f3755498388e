package loop

import (
	"fmt"

	"github.com/RaysceneNS/femcore/geom"
)

// Validate checks the structural invariants a built Loop must satisfy
// before the mesher accepts it as a boundary: at least 3 distinct points,
// closure, and no self-intersection between non-adjacent edges. It uses
// the same floating-point (non-exact) segment intersection test as the
// rest of this pipeline; robust/exact predicates are out of scope.
func Validate(l Loop) error {
	pts := l.Points()
	distinct := 0
	for i, p := range pts {
		unique := true
		for j := 0; j < i; j++ {
			if p.Equal(pts[j]) {
				unique = false
				break
			}
		}
		if unique {
			distinct++
		}
	}
	if distinct < 3 {
		return fmt.Errorf("%w: got %d distinct points", ErrTooFewPoints, distinct)
	}
	if !l.IsClosed() {
		return ErrNotClosed
	}
	if err := checkSelfIntersection(pts); err != nil {
		return err
	}
	return nil
}

func checkSelfIntersection(pts []geom.Point2) error {
	n := len(pts)
	for i := 0; i < n; i++ {
		a1, a2 := pts[i], pts[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue
			}
			b1, b2 := pts[j], pts[(j+1)%n]
			if segmentsIntersect(a1, a2, b1, b2) {
				return fmt.Errorf("%w: edges (%d,%d) and (%d,%d)", ErrSelfIntersecting, i, (i+1)%n, j, (j+1)%n)
			}
		}
	}
	return nil
}

// segmentsIntersect reports whether open segments a1-a2 and b1-b2 properly
// cross, using plain floating-point orientation tests (no exact/adaptive
// arithmetic — see Validate).
func segmentsIntersect(a1, a2, b1, b2 geom.Point2) bool {
	o1 := orient(a1, a2, b1)
	o2 := orient(a1, a2, b2)
	o3 := orient(b1, b2, a1)
	o4 := orient(b1, b2, a2)
	return o1*o2 < 0 && o3*o4 < 0
}

func orient(a, b, c geom.Point2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

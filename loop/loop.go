package loop

import "github.com/RaysceneNS/femcore/geom"

// Loop is a closed, oriented polygon of sample points. By convention the
// first point is repeated as the last point.
type Loop []geom.Point2

// SignedArea computes the polygon's signed area via the shoelace formula.
// A closed loop (first point repeated at the end) is expected; the
// repeated point contributes zero extra area.
//
// Negative area indicates clockwise winding; positive indicates
// counter-clockwise.
func (l Loop) SignedArea() float64 {
	if len(l) < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < len(l)-1; i++ {
		p := l[i]
		q := l[i+1]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// IsClockwise reports whether the loop winds clockwise (signed area < 0).
func (l Loop) IsClockwise() bool {
	return l.SignedArea() < 0
}

// IsClosed reports whether the first and last points coincide within
// geom.PointEpsilon.
func (l Loop) IsClosed() bool {
	if len(l) < 2 {
		return false
	}
	return l[0].Equal(l[len(l)-1])
}

// Reversed returns a copy of the loop with point order reversed. Because
// the loop is closed (first point repeated at the end), reversal preserves
// closure.
func (l Loop) Reversed() Loop {
	out := make(Loop, len(l))
	for i, p := range l {
		out[len(l)-1-i] = p
	}
	return out
}

// Points returns the loop's points without the closing repeat of the first
// point — the set an algorithm walks as `polygon[i], polygon[i+1 mod n]`.
func (l Loop) Points() []geom.Point2 {
	if len(l) == 0 {
		return nil
	}
	return l[:len(l)-1]
}

package loop

import "github.com/RaysceneNS/femcore/geom"

// entityKind tags which geometric primitive an entity wraps.
type entityKind int

const (
	kindSegment entityKind = iota
	kindArc
)

// entity is one link in the chain the builder assembles, tagged by kind
// rather than stored as an interface{}; see DESIGN.md for the rationale.
type entity struct {
	kind   entityKind
	seg    geom.LineSegment
	arc    geom.Arc
	revert bool
}

// rawStart returns the entity's natural (un-reverted) starting point.
func (e entity) rawStart() geom.Point2 {
	switch e.kind {
	case kindArc:
		return e.arc.Start()
	default:
		return e.seg.Start()
	}
}

// rawEnd returns the entity's natural (un-reverted) ending point.
func (e entity) rawEnd() geom.Point2 {
	switch e.kind {
	case kindArc:
		return e.arc.End()
	default:
		return e.seg.End()
	}
}

// sample discretises the entity at the given spacing, honoring revert.
func (e entity) sample(maxSpacing float64) []geom.Point2 {
	var pts []geom.Point2
	switch e.kind {
	case kindArc:
		pts = e.arc.Sample(maxSpacing)
	default:
		pts = e.seg.Sample(maxSpacing)
	}
	if e.revert {
		reversePoints(pts)
	}
	return pts
}

func reversePoints(pts []geom.Point2) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

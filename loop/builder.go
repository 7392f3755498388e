// Package loop welds an ordered sequence of line segments and circular arcs
// into a closed, oriented polygon of sampled points, ready to hand to the
// mesher.
package loop

import (
	"github.com/RaysceneNS/femcore/geom"
	"github.com/rs/zerolog/log"
)

// Builder accumulates segments and arcs and discretises them into a Loop.
//
// Entities are expected to chain end-to-end; Builder determines each new
// entity's orientation (its "revert" flag) by comparing its endpoints
// against the previously stored entity. An entity whose endpoints don't
// connect to the previous one is silently dropped; callers that want to
// know about it can watch the logged warning.
type Builder struct {
	entities []entity
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddLineSegment appends a straight segment from (x1,y1) to (x2,y2).
func (b *Builder) AddLineSegment(x1, y1, x2, y2 float64) {
	b.add(entity{kind: kindSegment, seg: geom.NewLineSegment(x1, y1, x2, y2)})
}

// AddArc appends a circular arc centered at (cx,cy) with radius r, sweeping
// from startDeg to endDeg (degrees).
func (b *Builder) AddArc(cx, cy, r, startDeg, endDeg float64) {
	b.add(entity{kind: kindArc, arc: geom.NewArc(cx, cy, r, startDeg, endDeg)})
}

// AddCircle appends a full circle, equivalent to AddArc(cx,cy,r,0,360).
func (b *Builder) AddCircle(cx, cy, r float64) {
	b.AddArc(cx, cy, r, 0, 360)
}

// AddRectangle appends four CCW segments around the box centered at
// (cx,cy) with corners at (cx±w, cy±h) — w and h are
// half-extents, not a full width/height.
func (b *Builder) AddRectangle(cx, cy, w, h float64) {
	x0, x1 := cx-w, cx+w
	y0, y1 := cy-h, cy+h
	b.AddLineSegment(x0, y0, x1, y0)
	b.AddLineSegment(x1, y0, x1, y1)
	b.AddLineSegment(x1, y1, x0, y1)
	b.AddLineSegment(x0, y1, x0, y0)
}

// add chooses the new entity's revert flag by chaining its endpoints
// against the previously stored entity, or drops it silently
// when none of the four connection cases apply.
func (b *Builder) add(e entity) {
	if len(b.entities) == 0 {
		b.entities = append(b.entities, e)
		return
	}
	prev := b.entities[len(b.entities)-1]
	switch {
	case e.rawStart().Equal(prev.rawEnd()):
		e.revert = false
	case e.rawEnd().Equal(prev.rawStart()):
		e.revert = true
	case e.rawStart().Equal(prev.rawStart()):
		e.revert = false
	case e.rawEnd().Equal(prev.rawEnd()):
		e.revert = true
	default:
		log.Warn().
			Interface("newEntityStart", e.rawStart()).
			Interface("newEntityEnd", e.rawEnd()).
			Msg("loop builder: entity does not chain to previous entity, dropping")
		return
	}
	b.entities = append(b.entities, e)
}

// Build discretises the accumulated entities into a closed Loop with the
// requested winding and sampling spacing.
func (b *Builder) Build(clockwise bool, maxSpacing float64) Loop {
	if maxSpacing <= 0 {
		maxSpacing = 1
	}
	var pts []geom.Point2
	for _, e := range b.entities {
		pts = append(pts, e.sample(maxSpacing)...)
	}
	if len(pts) == 0 {
		return nil
	}
	pts = append(pts, pts[0])

	l := Loop(pts)
	if l.IsClockwise() != clockwise {
		l = l.Reversed()
	}
	return l
}

package mesher

import "github.com/RaysceneNS/femcore/geom"

// edgeSet is an order-preserving set of directed edges used to collect a
// Watson cavity's boundary: pushing the reverse of an already-present edge
// cancels both.
type edgeSet struct {
	order   []TriangleEdge
	present map[TriangleEdge]bool
}

func newEdgeSet() *edgeSet {
	return &edgeSet{present: make(map[TriangleEdge]bool)}
}

func (s *edgeSet) push(e TriangleEdge) {
	rev := e.Reversed()
	if s.present[rev] {
		delete(s.present, rev)
		for i, x := range s.order {
			if x == rev {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.present[e] = true
	s.order = append(s.order, e)
}

// triangulateAll runs Bowyer-Watson incremental Delaunay insertion over
// verts, starting from a single super-triangle built to contain them all.
// It returns the resulting faces (including any referencing the three
// synthetic super-triangle vertices, appended at the end of allVerts) and
// the combined vertex list.
func triangulateAll(verts []geom.Point2) (faces []face, allVerts []geom.Point2) {
	st := superTriangle(verts)
	allVerts = make([]geom.Point2, 0, len(verts)+3)
	allVerts = append(allVerts, verts...)
	superStart := len(verts)
	allVerts = append(allVerts, st[0], st[1], st[2])

	faces = []face{{TriangleFace: TriangleFace{V1: superStart, V2: superStart + 1, V3: superStart + 2}}}

	for i := 0; i < len(verts); i++ {
		faces = insertPoint(faces, allVerts, i)
	}
	return faces, allVerts
}

// insertPoint performs one Bowyer-Watson insertion of allVerts[vidx] into
// the current face list: every face whose circumcircle contains the new
// point is deleted, the cancelling directed-edge walk over those faces
// yields the cavity boundary, and one new face is added per surviving
// edge.
func insertPoint(faces []face, allVerts []geom.Point2, vidx int) []face {
	v := allVerts[vidx]
	cavity := newEdgeSet()
	anyBad := false
	for i := range faces {
		f := &faces[i]
		if f.deleted {
			continue
		}
		p1, p2, p3 := allVerts[f.V1], allVerts[f.V2], allVerts[f.V3]
		if !inCircle(p1, p2, p3, v) {
			continue
		}
		anyBad = true
		f.deleted = true
		for _, e := range f.edges() {
			cavity.push(e)
		}
	}
	if !anyBad {
		return faces
	}
	for _, e := range cavity.order {
		faces = append(faces, face{TriangleFace: TriangleFace{V1: e.V1, V2: e.V2, V3: vidx}})
	}
	return faces
}

// removeSuperTriangle drops every face that references one of the three
// synthetic super-triangle vertex indices (>= firstSyntheticIndex).
func removeSuperTriangle(faces []face, firstSyntheticIndex int) []face {
	out := faces[:0]
	for _, f := range faces {
		if f.deleted {
			continue
		}
		if f.V1 >= firstSyntheticIndex || f.V2 >= firstSyntheticIndex || f.V3 >= firstSyntheticIndex {
			continue
		}
		out = append(out, f)
	}
	return out
}

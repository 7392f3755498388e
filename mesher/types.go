// Package mesher constructs a constrained Delaunay triangulation of one or
// more nested polygon loops (an outer boundary plus optional hole loops),
// carves away triangles outside the region, and optionally iterates to
// improve triangle quality. It emits a model.Model ready for the solver.
package mesher

// TriangleFace is an unordered triple of vertex indices identifying one
// triangle during triangulation.
type TriangleFace struct {
	V1, V2, V3 int
}

// TriangleEdge is a directed pair of vertex indices, used for Watson
// cavity bookkeeping: two edges with swapped endpoints cancel each other.
type TriangleEdge struct {
	V1, V2 int
}

// Reversed returns the edge with endpoints swapped.
func (e TriangleEdge) Reversed() TriangleEdge {
	return TriangleEdge{V1: e.V2, V2: e.V1}
}

// face is the internal bookkeeping record for a triangle during
// triangulation: a TriangleFace plus a deleted mark. A vector-of-faces
// with a deleted mark swept at phase end stands in for the source's
// doubly linked list with mid-iteration removal.
type face struct {
	TriangleFace
	deleted bool
}

func (f face) vertices() [3]int {
	return [3]int{f.V1, f.V2, f.V3}
}

// edges returns the face's three directed edges, each consistently
// wound (v[i] -> v[i+1 mod 3]).
func (f face) edges() [3]TriangleEdge {
	v := f.vertices()
	return [3]TriangleEdge{
		{V1: v[0], V2: v[1]},
		{V1: v[1], V2: v[2]},
		{V1: v[2], V2: v[0]},
	}
}

// referencesAny reports whether the face uses any of the given vertex
// indices.
func (f face) referencesAny(indices map[int]bool) bool {
	for _, v := range f.vertices() {
		if indices[v] {
			return true
		}
	}
	return false
}

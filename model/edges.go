package model

// ElementEdge is a directed pair of node indices. Two edges with swapped
// endpoints cancel each other during boundary extraction: an edge shared
// by two elements is walked once in each direction, while a true boundary
// edge is walked only once.
type ElementEdge struct {
	V1, V2 int
}

// Reversed returns the edge with endpoints swapped.
func (e ElementEdge) Reversed() ElementEdge {
	return ElementEdge{V1: e.V2, V2: e.V1}
}

// directedEdgeSet is an order-preserving set used to cancel shared
// interior edges during boundary extraction.
type directedEdgeSet struct {
	order   []ElementEdge
	present map[ElementEdge]bool
}

func newDirectedEdgeSet() *directedEdgeSet {
	return &directedEdgeSet{present: make(map[ElementEdge]bool)}
}

func (s *directedEdgeSet) push(e ElementEdge) {
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

// ComputeEdges walks every element's three directed edges and cancels
// pairs whose reverse has already been seen, leaving only the boundary
// loop(s). The result is cached on the Model.
func (m *Model) ComputeEdges() []ElementEdge {
	s := newDirectedEdgeSet()
	for _, e := range m.Elements {
		s.push(ElementEdge{V1: e.N1, V2: e.N2})
		s.push(ElementEdge{V1: e.N2, V2: e.N3})
		s.push(ElementEdge{V1: e.N3, V2: e.N1})
	}
	m.Edges = s.order
	return m.Edges
}

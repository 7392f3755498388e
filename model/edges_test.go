package model

import (
	"testing"

	"github.com/RaysceneNS/femcore/element"
)

// Two triangles sharing edge (1,2): (0,1,2) and (2,1,3). The shared edge
// should cancel, leaving the outer boundary.
func TestComputeEdgesCancelsSharedEdge(t *testing.T) {
	m := New()
	m.Nodes = make([]Node, 4)
	m.Elements = []*element.Element{
		element.NewElement(0, 1, 2),
		element.NewElement(2, 1, 3),
	}

	edges := m.ComputeEdges()
	for _, e := range edges {
		if (e == ElementEdge{V1: 1, V2: 2}) || (e == ElementEdge{V1: 2, V2: 1}) {
			t.Fatalf("shared edge %v should have cancelled", e)
		}
	}
	if len(edges) != 4 {
		t.Fatalf("got %d boundary edges, want 4", len(edges))
	}
	seen := make(map[ElementEdge]bool)
	for _, e := range edges {
		if seen[e.Reversed()] {
			t.Fatalf("edge %v has its reverse still present", e)
		}
		seen[e] = true
	}
}

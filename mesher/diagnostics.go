package mesher

import (
	"github.com/RaysceneNS/femcore/element"
	"github.com/RaysceneNS/femcore/model"
)

// degenerateAreaEps is the triangle-area threshold at or below which a
// retained element is reported as degenerate.
const degenerateAreaEps = 1e-9

// Diagnostics summarizes a triangulated Model, in the spirit of the
// teacher's cdt.Diagnostics/cdt.GetDiagnostics: counts a caller can log or
// assert on without walking the model itself.
type Diagnostics struct {
	NumVertices            int
	NumTriangles            int
	NumDegenerateTriangles int
	NumBoundaryEdges       int
}

// Diagnose computes Diagnostics for a triangulated Model: vertex and
// triangle counts, how many retained triangles have near-zero area, and
// how many boundary edges ComputeEdges finds.
func Diagnose(mdl *model.Model) Diagnostics {
	degenerate := 0
	for _, e := range mdl.Elements {
		p1 := mdl.Nodes[e.N1].Position
		p2 := mdl.Nodes[e.N2].Position
		p3 := mdl.Nodes[e.N3].Position
		area := element.SignedArea(p1, p2, p3)
		if area < 0 {
			area = -area
		}
		if area <= degenerateAreaEps {
			degenerate++
		}
	}
	return Diagnostics{
		NumVertices:           len(mdl.Nodes),
		NumTriangles:          len(mdl.Elements),
		NumDegenerateTriangles: degenerate,
		NumBoundaryEdges:      len(mdl.ComputeEdges()),
	}
}

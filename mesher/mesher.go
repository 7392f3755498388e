package mesher

import (
	"errors"
	"fmt"

	"github.com/RaysceneNS/femcore/element"
	"github.com/RaysceneNS/femcore/geom"
	"github.com/RaysceneNS/femcore/loop"
	"github.com/RaysceneNS/femcore/model"
	"github.com/RaysceneNS/femcore/progress"
)

// ErrNoLoops is returned by Triangulate/TriangulateIteratively when no
// loop has been added.
var ErrNoLoops = errors.New("mesher: no loops added")

// ErrInvalidLoop is returned by Triangulate/TriangulateIteratively when an
// accumulated loop fails structural validation (too few distinct points,
// not closed, or self-intersecting) — the InvalidArgument error kind.
var ErrInvalidLoop = errors.New("mesher: invalid loop")

// maxRefinementPasses bounds TriangulateIteratively so a pathological
// input cannot loop forever chasing ever-thinner slivers.
const maxRefinementPasses = 8

// Mesher accumulates an outer boundary loop plus any number of hole
// loops, then triangulates the enclosed region into a model.Model.
type Mesher struct {
	loops []loop.Loop
}

// New returns an empty Mesher.
func New() *Mesher {
	return &Mesher{}
}

// AddLoop appends a loop to the mesher: the first loop added is the outer
// boundary, every subsequent loop is a hole. Returns the Mesher for
// chaining.
func (m *Mesher) AddLoop(l loop.Loop) *Mesher {
	m.loops = append(m.loops, l)
	return m
}

// pointLoops returns each accumulated loop's points without the closing
// repeat, for use by the winding-parity interior test.
func (m *Mesher) pointLoops() [][]geom.Point2 {
	out := make([][]geom.Point2, len(m.loops))
	for i, l := range m.loops {
		out[i] = l.Points()
	}
	return out
}

// baseVertices concatenates every loop's points (outer first, then holes
// in order), the order in which Model nodes are numbered.
func (m *Mesher) baseVertices() []geom.Point2 {
	var verts []geom.Point2
	for _, l := range m.loops {
		verts = append(verts, l.Points()...)
	}
	return verts
}

// validateLoops runs loop.Validate over every accumulated loop (outer
// boundary and each hole), failing fast on the first invalid one. The
// outer boundary is loop index 0.
func (m *Mesher) validateLoops() error {
	for i, l := range m.loops {
		if err := loop.Validate(l); err != nil {
			return fmt.Errorf("%w: loop %d: %v", ErrInvalidLoop, i, err)
		}
	}
	return nil
}

// Triangulate runs a single Bowyer-Watson pass over the accumulated
// loops' vertices, carves away triangles outside the region, and
// assembles the resulting Model.
func (m *Mesher) Triangulate(p progress.Reporter) (*model.Model, error) {
	if len(m.loops) == 0 {
		return nil, ErrNoLoops
	}
	if err := m.validateLoops(); err != nil {
		return nil, err
	}
	if p == nil {
		p = progress.Discard
	}

	verts := m.baseVertices()
	mdl := m.assemble(verts, p)
	p.Report(progress.TaskProgress{Text: "triangulate", Percent: 100})
	return mdl, nil
}

// TriangulateIteratively runs Triangulate, then repeatedly scores the
// retained triangles' shape quality, appends the centroid of every
// under-quality triangle above the minimum area to the vertex set, and
// re-triangulates — up to maxRefinementPasses times or until a pass flags
// no triangle.
func (m *Mesher) TriangulateIteratively(p progress.Reporter) (*model.Model, error) {
	if len(m.loops) == 0 {
		return nil, ErrNoLoops
	}
	if err := m.validateLoops(); err != nil {
		return nil, err
	}
	if p == nil {
		p = progress.Discard
	}

	verts := m.baseVertices()
	var mdl *model.Model
	for pass := 0; pass < maxRefinementPasses; pass++ {
		mdl = m.assemble(verts, p)

		var improvements []geom.Point2
		for _, e := range mdl.Elements {
			p1 := mdl.Nodes[e.N1].Position
			p2 := mdl.Nodes[e.N2].Position
			p3 := mdl.Nodes[e.N3].Position
			if needsRefinement(p1, p2, p3) {
				improvements = append(improvements, geom.Centroid(p1, p2, p3))
			}
		}

		p.Report(progress.TaskProgress{Text: "refine", Percent: (pass + 1) * 100 / maxRefinementPasses})

		if len(improvements) == 0 {
			break
		}
		verts = append(verts, improvements...)
	}
	return mdl, nil
}

// assemble triangulates verts, carves away the exterior, and builds a
// model.Model whose nodes are exactly verts in order.
func (m *Mesher) assemble(verts []geom.Point2, p progress.Reporter) *model.Model {
	faces, allVerts := triangulateAll(verts)
	faces = removeSuperTriangle(faces, len(verts))
	faces = carveInterior(faces, allVerts, m.pointLoops())

	mdl := model.New()
	mdl.Nodes = make([]model.Node, len(verts))
	for i, v := range verts {
		mdl.Nodes[i] = model.NewNode(v)
	}
	mdl.Elements = make([]*element.Element, 0, len(faces))
	for _, f := range faces {
		mdl.Elements = append(mdl.Elements, element.NewElement(f.V1, f.V2, f.V3))
	}
	mdl.MarkMeshed()
	return mdl
}

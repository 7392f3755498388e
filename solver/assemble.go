package solver

import (
	"github.com/RaysceneNS/femcore/element"
	"github.com/RaysceneNS/femcore/model"
	"github.com/RaysceneNS/femcore/progress"
)

// system is the dense-input/sparse-output state built by assemble: the
// per-DOF fixed flags, prescribed displacements and loads, plus the
// resulting compressed rows.
type system struct {
	dofCount int
	isFixed  []bool
	disp     []float64
	load     []float64
	rows     []SparseRow
}

// nodeLocalIndex returns which of an element's three corners (0,1,2) is
// node, or -1 if the element doesn't reference it.
func nodeLocalIndex(e *element.Element, node int) int {
	switch node {
	case e.N1:
		return 0
	case e.N2:
		return 1
	case e.N3:
		return 2
	default:
		return -1
	}
}

// buildNodeElementIndex returns, for every node, the list of elements
// referencing it.
func buildNodeElementIndex(m *model.Model) [][]*element.Element {
	idx := make([][]*element.Element, len(m.Nodes))
	for _, e := range m.Elements {
		idx[e.N1] = append(idx[e.N1], e)
		idx[e.N2] = append(idx[e.N2], e)
		idx[e.N3] = append(idx[e.N3], e)
	}
	return idx
}

// assemble builds the global system row by row, folding Dirichlet
// constraints by substitution and compressing each row. Element stiffness
// is computed once per element (the source recomputes it once per DOF row
// that touches an element, up to 6 times; recomputation is idempotent
// since geometry never changes mid-solve, so computing once and scattering
// is equivalent and considerably cheaper).
func assemble(m *model.Model, mat *element.Material, thickness float64, p progress.Reporter) *system {
	n := len(m.Nodes)
	dofCount := 2 * n

	for _, e := range m.Elements {
		p1 := m.Nodes[e.N1].Position
		p2 := m.Nodes[e.N2].Position
		p3 := m.Nodes[e.N3].Position
		e.ComputeStiffness(p1, p2, p3, mat, thickness)
	}

	sys := &system{
		dofCount: dofCount,
		isFixed:  make([]bool, dofCount),
		disp:     make([]float64, dofCount),
		load:     make([]float64, dofCount),
		rows:     make([]SparseRow, dofCount),
	}
	for i, node := range m.Nodes {
		sys.isFixed[2*i] = node.FixedX
		sys.isFixed[2*i+1] = node.FixedY
		sys.disp[2*i] = node.DisplacementX
		sys.disp[2*i+1] = node.DisplacementY
		sys.load[2*i] = node.LoadX
		sys.load[2*i+1] = node.LoadY
	}

	nodeElements := buildNodeElementIndex(m)
	s := make([]float64, dofCount)

	for i := 0; i < dofCount; i++ {
		for j := range s {
			s[j] = 0
		}
		node := i / 2
		localDOF := i % 2

		for _, e := range nodeElements[node] {
			la := nodeLocalIndex(e, node)
			rowInK := 2*la + localDOF
			nodes := [3]int{e.N1, e.N2, e.N3}
			for lb, gb := range nodes {
				for ld := 0; ld < 2; ld++ {
					colInK := 2*lb + ld
					j := 2*gb + ld
					s[j] += e.K.At(rowInK, colInK)
				}
			}
		}

		if !sys.isFixed[i] {
			for j := 0; j < dofCount; j++ {
				if sys.isFixed[j] {
					sys.load[i] -= s[j] * sys.disp[j]
					s[j] = 0
				}
			}
		} else {
			diag := s[i]
			for j := range s {
				if j != i {
					s[j] = 0
				}
			}
			s[i] = diag
			sys.load[i] = diag * sys.disp[i]
		}

		sys.rows[i] = compress(s)

		if p != nil {
			p.Report(progress.TaskProgress{Text: "assemble", Percent: (i + 1) * 100 / dofCount})
		}
	}

	return sys
}

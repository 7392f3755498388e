package solver

import (
	"github.com/RaysceneNS/femcore/element"
	"github.com/RaysceneNS/femcore/model"
	"github.com/RaysceneNS/femcore/progress"
	"github.com/rs/zerolog/log"
)

// PlanarStressSolver configures and runs a plane-stress linear solve over
// a meshed model.Model.
type PlanarStressSolver struct {
	Thickness float64
	E         float64
	Nu        float64

	// ConvergenceRatio is the m in the "ρ ≤ m²·ρ₀" stopping test. Zero
	// means use defaultConvergenceRatio.
	ConvergenceRatio float64

	// Converged reports whether the most recent Solve hit its residual
	// target before exhausting the iteration budget. The model's
	// IsSolved flag is set unconditionally on return regardless of this
	// value, matching the source's non-convergence behavior: callers who
	// care about convergence should check this field.
	Converged bool
}

// New returns a PlanarStressSolver with the given thickness, Young's
// modulus and Poisson's ratio.
func New(thickness, e, nu float64) *PlanarStressSolver {
	return &PlanarStressSolver{Thickness: thickness, E: e, Nu: nu}
}

// Solve assembles the global system from m, solves it, and writes
// per-node displacement and per-element stress back into m. It always
// marks m solved, even on non-convergence; check Converged to tell the
// two cases apart.
func (s *PlanarStressSolver) Solve(m *model.Model, p progress.Reporter) {
	if p == nil {
		p = progress.Discard
	}
	mat := element.NewMaterial(s.E, s.Nu)

	log.Debug().Int("nodes", len(m.Nodes)).Int("elements", len(m.Elements)).Msg("solver: assembling")
	sys := assemble(m, mat, s.Thickness, p)

	ratio := s.ConvergenceRatio
	if ratio == 0 {
		ratio = defaultConvergenceRatio
	}

	x := solveIterative(sys.rows, sys.load, ratio)
	s.Converged = residualRatio(sys.rows, sys.load, x) <= ratio*ratio

	for i := range m.Nodes {
		m.Nodes[i].Ux = x[2*i]
		m.Nodes[i].Uy = x[2*i+1]
	}

	for idx, e := range m.Elements {
		var ue [6]float64
		nodes := [3]int{e.N1, e.N2, e.N3}
		for local, n := range nodes {
			ue[2*local] = m.Nodes[n].Ux
			ue[2*local+1] = m.Nodes[n].Uy
		}
		e.RecoverStress(mat, ue)
		if p != nil {
			p.Report(progress.TaskProgress{Text: "stress recovery", Percent: (idx + 1) * 100 / len(m.Elements)})
		}
	}

	if !s.Converged {
		log.Warn().Msg("solver: iteration budget exhausted without reaching target residual ratio")
	}
	m.MarkSolved()
}

// residualRatio computes ||b-Ax||² / ||b||² for reporting convergence
// after the fact; the iterative loop itself stops on rho vs rho0, not on
// this quantity directly.
func residualRatio(rows []SparseRow, b, x []float64) float64 {
	bNormSq := 0.0
	for _, v := range b {
		bNormSq += v * v
	}
	if bNormSq == 0 {
		return 0
	}
	residSq := 0.0
	for i, row := range rows {
		d := b[i] - row.dot(x)
		residSq += d * d
	}
	return residSq / bNormSq
}

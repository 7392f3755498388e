package solver

import "gonum.org/v1/gonum/floats"

// defaultConvergenceRatio is the m in the "ρ ≤ m²·ρ₀" stopping test: a
// fixed constant, not a tunable.
const defaultConvergenceRatio = 1e-3

// solveIterative runs the conjugate-gradient-style iteration against the
// compressed sparse rows and right-hand side b, for at most len(b)
// iterations. β is the ratio of the new residual norm ρ' to the residual
// norm ρ this iteration started from (ρ₀ on the first iteration, else the
// value the previous iteration left), which is the Fletcher–Reeves ratio
// of standard CG.
func solveIterative(rows []SparseRow, b []float64, m float64) []float64 {
	n := len(b)
	x := make([]float64, n)
	r := append([]float64(nil), b...)
	p := append([]float64(nil), b...)
	ap := make([]float64, n)

	rho0 := floats.Dot(r, r)
	rho := rho0

	for k := 0; k < n; k++ {
		if rho0 == 0 || rho <= m*m*rho0 {
			break
		}

		for i, row := range rows {
			ap[i] = row.dot(p)
		}

		pAp := floats.Dot(p, ap)
		if pAp == 0 {
			break
		}
		alpha := rho / pAp

		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, ap)

		rhoNew := floats.Dot(r, r)
		beta := rhoNew / rho

		for i := range p {
			p[i] = r[i] + beta*p[i]
		}
		rho = rhoNew
	}

	return x
}

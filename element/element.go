package element

import (
	"math"

	"github.com/RaysceneNS/femcore/geom"
	"gonum.org/v1/gonum/mat"
)

// Element is a triangular plane-stress element referencing three node
// indices. B, K and Stress are populated by ComputeStiffness and
// RecoverStress respectively; both are overwritten on each call.
type Element struct {
	N1, N2, N3 int

	// B is the 3x6 strain-displacement matrix.
	B *mat.Dense
	// K is the 6x6 local stiffness matrix, t*A*Bᵀ*D*B.
	K *mat.Dense
	// Area is the triangle's signed area.
	Area float64
	// Stress is the recovered (σx, σy, τxy) after RecoverStress.
	Stress [3]float64
}

// NewElement constructs an Element referencing three node indices.
func NewElement(n1, n2, n3 int) *Element {
	return &Element{N1: n1, N2: n2, N3: n3}
}

// SignedArea computes A = (x1(y2-y3) + x2(y3-y1) + x3(y1-y2)) / 2 for the
// triangle (p1,p2,p3).
func SignedArea(p1, p2, p3 geom.Point2) float64 {
	return (p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y)) / 2
}

// strainDisplacement builds the 3x6 B matrix for triangle (p1,p2,p3) with
// signed area a.
func strainDisplacement(p1, p2, p3 geom.Point2, a float64) *mat.Dense {
	inv2A := 1 / (2 * a)
	b := mat.NewDense(3, 6, []float64{
		p2.Y - p3.Y, 0, p3.Y - p1.Y, 0, p1.Y - p2.Y, 0,
		0, p3.X - p2.X, 0, p1.X - p3.X, 0, p2.X - p1.X,
		p3.X - p2.X, p2.Y - p3.Y, p1.X - p3.X, p3.Y - p1.Y, p2.X - p1.X, p1.Y - p2.Y,
	})
	b.Scale(inv2A, b)
	return b
}

// ComputeStiffness computes and caches the element's strain-displacement
// matrix B, signed area, and local stiffness K^e = t·A·Bᵀ·D·B for the
// triangle with the given vertex positions. Safe to call repeatedly: the
// underlying geometry never changes mid-solve, so recomputation is
// idempotent.
func (e *Element) ComputeStiffness(p1, p2, p3 geom.Point2, mat_ *Material, thickness float64) {
	e.Area = SignedArea(p1, p2, p3)
	e.B = strainDisplacement(p1, p2, p3, e.Area)

	var bt mat.Dense
	bt.CloneFrom(e.B.T())

	var db mat.Dense
	db.Mul(mat_.D, e.B)

	var btdb mat.Dense
	btdb.Mul(&bt, &db)

	k := mat.NewDense(6, 6, nil)
	k.Scale(thickness*e.Area, &btdb)
	e.K = k
}

// RecoverStress computes σ = D·B·u^e for the element given its local DOF
// vector u^e (ux1,uy1,ux2,uy2,ux3,uy3), stores it on Stress, and returns it.
func (e *Element) RecoverStress(m *Material, ue [6]float64) [3]float64 {
	u := mat.NewVecDense(6, ue[:])

	var bu mat.VecDense
	bu.MulVec(e.B, u)

	var sigma mat.VecDense
	sigma.MulVec(m.D, &bu)

	e.Stress = [3]float64{sigma.AtVec(0), sigma.AtVec(1), sigma.AtVec(2)}
	return e.Stress
}

// VonMises computes the plane-stress Von Mises equivalent stress for
// (σx, σy, τxy), with σz = τxz = τyz = 0:
//
//	σv = sqrt((σx-σy)² + σx² + σy² + 6τxy²) / sqrt(2)
func VonMises(sigmaX, sigmaY, tauXY float64) float64 {
	d := sigmaX - sigmaY
	return math.Sqrt(d*d+sigmaX*sigmaX+sigmaY*sigmaY+6*tauXY*tauXY) / math.Sqrt2
}

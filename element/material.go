// Package element computes per-triangle strain-displacement and material
// matrices and local stiffness for plane-stress finite elements.
package element

import "gonum.org/v1/gonum/mat"

// Material holds the plane-stress constitutive matrix D shared by every
// element in a solve:
//
//	D = E/(1-ν²) · [ 1 ν 0 ; ν 1 0 ; 0 0 (1-ν)/2 ]
type Material struct {
	E  float64
	Nu float64
	D  *mat.Dense
}

// NewMaterial builds the plane-stress material matrix for Young's modulus
// E and Poisson's ratio nu.
func NewMaterial(e, nu float64) *Material {
	c := e / (1 - nu*nu)
	d := mat.NewDense(3, 3, []float64{
		c, c * nu, 0,
		c * nu, c, 0,
		0, 0, c * (1 - nu) / 2,
	})
	return &Material{E: e, Nu: nu, D: d}
}

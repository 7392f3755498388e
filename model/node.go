// Package model holds the indexed nodes and triangular elements a Mesher
// produces, plus the post-processing passes (boundary-edge extraction,
// averaged Von Mises plotting) that run once a solve completes.
package model

import "github.com/RaysceneNS/femcore/geom"

// Node is a mesh vertex plus everything the solver and post-processors
// attach to it: optional displacement constraints, an applied load, the
// solved displacement, recovered stress, and a derived color index.
//
// Invariant: FixedX implies DisplacementX is meaningful (defaults to 0,
// i.e. a clamped DOF); same for FixedY/DisplacementY.
type Node struct {
	Position geom.Point2

	FixedX, FixedY                 bool
	DisplacementX, DisplacementY   float64
	LoadX, LoadY                   float64

	Ux, Uy             float64
	SigmaX, SigmaY     float64
	TauXY              float64
	VonMises           float64
	ColorIndex         int

	stressSum   [3]float64
	stressCount int
}

// NewNode constructs a Node at the given position with no constraints or
// loads.
func NewNode(p geom.Point2) Node {
	return Node{Position: p}
}

// FixAll clamps both DOFs of the node at its current position (zero
// prescribed displacement).
func (n *Node) FixAll() {
	n.FixedX, n.DisplacementX = true, 0
	n.FixedY, n.DisplacementY = true, 0
}

// ApplyDisplacementAlongX clamps the node's x-DOF to the prescribed value a.
func (n *Node) ApplyDisplacementAlongX(a float64) {
	n.FixedX, n.DisplacementX = true, a
}

// ApplyDisplacementAlongY clamps the node's y-DOF to the prescribed value a.
func (n *Node) ApplyDisplacementAlongY(a float64) {
	n.FixedY, n.DisplacementY = true, a
}

// ApplyLoad adds (lx,ly) to the node's applied load. Loads accumulate
// across multiple calls, matching how multiple load cases are layered
// onto a single node.
func (n *Node) ApplyLoad(lx, ly float64) {
	n.LoadX += lx
	n.LoadY += ly
}

// resetStressAccumulator clears the per-node stress accumulator ahead of
// a PlotAverageVonMises pass.
func (n *Node) resetStressAccumulator() {
	n.stressSum = [3]float64{}
	n.stressCount = 0
}

// accumulateStress folds one element's stress contribution into the
// node's running average.
func (n *Node) accumulateStress(sigma [3]float64) {
	n.stressSum[0] += sigma[0]
	n.stressSum[1] += sigma[1]
	n.stressSum[2] += sigma[2]
	n.stressCount++
}

package model

import "github.com/RaysceneNS/femcore/element"

// State tracks a Model's position in its one-way lifecycle.
type State int

const (
	// Empty is the initial state before meshing.
	Empty State = iota
	// Meshed means the mesher has populated Nodes and Elements.
	Meshed
	// Solved means the solver has run to completion (converged or not).
	Solved
	// Plotted means PlotAverageVonMises has run. ComputeEdges does not
	// change the state.
	Plotted
)

// Model holds the indexed nodes and triangular elements produced by a
// mesh pass, plus the post-processing results layered on after a solve.
// Transitions are monotone: there is no path back to an earlier state.
type Model struct {
	Nodes    []Node
	Elements []*element.Element
	Edges    []ElementEdge

	IsSolved bool

	state State

	MinNode  int
	MaxNode  int
	MinValue float64
	MaxValue float64
}

// New returns an empty Model.
func New() *Model {
	return &Model{state: Empty}
}

// State reports the model's current lifecycle state.
func (m *Model) State() State {
	return m.state
}

// MarkMeshed advances the model to Meshed after nodes and elements have
// been populated.
func (m *Model) MarkMeshed() {
	if m.state < Meshed {
		m.state = Meshed
	}
}

// MarkSolved advances the model to Solved. isSolved is set unconditionally,
// matching the contract that a non-converged solve still leaves usable
// (if suspect) results rather than failing outright.
func (m *Model) MarkSolved() {
	m.IsSolved = true
	if m.state < Solved {
		m.state = Solved
	}
}

// markPlotted advances the model to Plotted.
func (m *Model) markPlotted() {
	if m.state < Plotted {
		m.state = Plotted
	}
}

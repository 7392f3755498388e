package model

import "github.com/RaysceneNS/femcore/element"

// PlotAverageVonMises accumulates each element's recovered stress into its
// three nodes, averages per node, recomputes Von Mises from the averaged
// stress, and normalizes every node's Von Mises into a colorIndex in
// [0,255]: the minimum node maps to 0, the maximum to 255, clamped, and
// zero across the board when every node shares the same value.
func (m *Model) PlotAverageVonMises() {
	for i := range m.Nodes {
		m.Nodes[i].resetStressAccumulator()
	}

	for _, e := range m.Elements {
		sigma := e.Stress
		m.Nodes[e.N1].accumulateStress(sigma)
		m.Nodes[e.N2].accumulateStress(sigma)
		m.Nodes[e.N3].accumulateStress(sigma)
	}

	for i := range m.Nodes {
		n := &m.Nodes[i]
		if n.stressCount > 0 {
			c := float64(n.stressCount)
			n.SigmaX = n.stressSum[0] / c
			n.SigmaY = n.stressSum[1] / c
			n.TauXY = n.stressSum[2] / c
		}
		n.VonMises = element.VonMises(n.SigmaX, n.SigmaY, n.TauXY)
	}

	m.MinNode, m.MaxNode = 0, 0
	m.MinValue, m.MaxValue = m.Nodes[0].VonMises, m.Nodes[0].VonMises
	for i, n := range m.Nodes {
		if n.VonMises < m.MinValue {
			m.MinValue, m.MinNode = n.VonMises, i
		}
		if n.VonMises > m.MaxValue {
			m.MaxValue, m.MaxNode = n.VonMises, i
		}
	}

	valueRange := m.MaxValue - m.MinValue
	for i := range m.Nodes {
		n := &m.Nodes[i]
		if valueRange == 0 {
			n.ColorIndex = 0
			continue
		}
		idx := int((n.VonMises - m.MinValue) / valueRange * 255)
		switch {
		case idx < 0:
			idx = 0
		case idx > 255:
			idx = 255
		}
		n.ColorIndex = idx
	}

	m.markPlotted()
}

package element

import (
	"math"
	"testing"

	"github.com/RaysceneNS/femcore/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedAreaUnitRightTriangle(t *testing.T) {
	p1 := geom.Point2{X: 0, Y: 0}
	p2 := geom.Point2{X: 1, Y: 0}
	p3 := geom.Point2{X: 0, Y: 1}
	assert.InDelta(t, 0.5, SignedArea(p1, p2, p3), 1e-9)
}

func TestComputeStiffnessIsSymmetric(t *testing.T) {
	p1 := geom.Point2{X: 0, Y: 0}
	p2 := geom.Point2{X: 4, Y: 0}
	p3 := geom.Point2{X: 1, Y: 3}

	m := NewMaterial(210e9, 0.3)
	e := NewElement(0, 1, 2)
	e.ComputeStiffness(p1, p2, p3, m, 0.01)

	r, c := e.K.Dims()
	require.Equal(t, 6, r)
	require.Equal(t, 6, c)

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a, b := e.K.At(i, j), e.K.At(j, i)
			denom := math.Max(math.Abs(a), 1)
			assert.LessOrEqualf(t, math.Abs(a-b)/denom, 1e-4,
				"K[%d][%d]=%v != K[%d][%d]=%v beyond tolerance", i, j, a, j, i, b)
		}
	}
}

func TestRigidBodyTranslationProducesZeroStress(t *testing.T) {
	p1 := geom.Point2{X: 0, Y: 0}
	p2 := geom.Point2{X: 2, Y: 0}
	p3 := geom.Point2{X: 0, Y: 2}

	m := NewMaterial(200e9, 0.3)
	e := NewElement(0, 1, 2)
	e.ComputeStiffness(p1, p2, p3, m, 1)

	ue := [6]float64{0.01, 0.02, 0.01, 0.02, 0.01, 0.02}
	sigma := e.RecoverStress(m, ue)
	for i, s := range sigma {
		assert.InDeltaf(t, 0, s, 1e-6, "stress component %d should be ~0 for rigid translation", i)
	}
}

func TestVonMisesUniaxial(t *testing.T) {
	assert.InDelta(t, 100, VonMises(100, 0, 0), 1e-9)
}

func TestVonMisesPureShear(t *testing.T) {
	want := math.Sqrt(3) * 50
	assert.InDelta(t, want, VonMises(0, 0, 50), 1e-9)
}

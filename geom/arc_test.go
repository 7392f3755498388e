package geom

import (
	"math"
	"testing"
)

func TestArcDeltaDeg(t *testing.T) {
	cases := []struct {
		name       string
		start, end float64
		want       float64
	}{
		{"simple quarter", 0, 90, 90},
		{"wraps through zero", 270, 90, 180},
		{"full circle", 0, 360, 360},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewArc(0, 0, 1, c.start, c.end)
			if got := a.DeltaDeg(); math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("DeltaDeg = %v, want %v", got, c.want)
			}
		})
	}
}

func TestArcStartEndPoints(t *testing.T) {
	a := NewArc(0, 0, 1, 0, 90)
	start := a.Start()
	if !start.Equal(Point2{X: 1, Y: 0}) {
		t.Fatalf("Start = %v, want (1,0)", start)
	}
	end := a.End()
	if !end.Equal(Point2{X: 0, Y: 1}) {
		t.Fatalf("End = %v, want (0,1)", end)
	}
}

// TestArcSamplingOnUnitCircle checks that arc(0,0,1,0,90) with
// maxSpacing=0.1 yields at least ceil(pi/2/0.1)=16 points, each within
// 1e-4 of the unit circle.
func TestArcSamplingOnUnitCircle(t *testing.T) {
	a := NewArc(0, 0, 1, 0, 90)
	pts := a.Sample(0.1)
	if len(pts) < 16 {
		t.Fatalf("expected at least 16 points, got %d", len(pts))
	}
	for _, p := range pts {
		r := math.Hypot(p.X, p.Y)
		if math.Abs(r-1) > 1e-4 {
			t.Fatalf("point %v not on unit circle (r=%v)", p, r)
		}
	}
}

func TestCircleIsFullArc(t *testing.T) {
	c := NewCircle(1, 2, 3)
	if got := c.DeltaDeg(); got != 360 {
		t.Fatalf("DeltaDeg = %v, want 360", got)
	}
}

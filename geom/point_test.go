package geom

import "testing"

func TestPoint2Equal(t *testing.T) {
	cases := []struct {
		name string
		p, q Point2
		want bool
	}{
		{"identical", Point2{X: 1, Y: 2}, Point2{X: 1, Y: 2}, true},
		{"within tolerance", Point2{X: 1, Y: 2}, Point2{X: 1.00005, Y: 2}, true},
		{"outside tolerance", Point2{X: 1, Y: 2}, Point2{X: 1.001, Y: 2}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.p.Equal(c.q); got != c.want {
				t.Fatalf("Equal(%v,%v) = %v, want %v", c.p, c.q, got, c.want)
			}
		})
	}
}

func TestPoint2Arithmetic(t *testing.T) {
	a := Point2{X: 3, Y: 4}
	b := Point2{X: 1, Y: 1}
	if got := a.Sub(b); got != (Point2{X: 2, Y: 3}) {
		t.Fatalf("Sub = %v", got)
	}
	if got := a.Add(b); got != (Point2{X: 4, Y: 5}) {
		t.Fatalf("Add = %v", got)
	}
	if got := a.Scale(2); got != (Point2{X: 6, Y: 8}) {
		t.Fatalf("Scale = %v", got)
	}
}

func TestPoint2DistanceTo(t *testing.T) {
	a := Point2{X: 0, Y: 0}
	b := Point2{X: 3, Y: 4}
	if got := a.DistanceTo(b); got != 5 {
		t.Fatalf("DistanceTo = %v, want 5", got)
	}
}

func TestCentroid(t *testing.T) {
	c := Centroid(Point2{X: 0, Y: 0}, Point2{X: 3, Y: 0}, Point2{X: 0, Y: 3})
	want := Point2{X: 1, Y: 1}
	if !c.Equal(want) {
		t.Fatalf("Centroid = %v, want %v", c, want)
	}
}

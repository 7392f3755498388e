package geom

import "testing"

func TestBoundingBox(t *testing.T) {
	pts := []Point2{{X: -1, Y: 2}, {X: 3, Y: -4}, {X: 0, Y: 0}}
	b := BoundingBox(pts)
	if b.Min != (Point2{X: -1, Y: -4}) {
		t.Fatalf("Min = %v", b.Min)
	}
	if b.Max != (Point2{X: 3, Y: 2}) {
		t.Fatalf("Max = %v", b.Max)
	}
}

func TestBoxDimensions(t *testing.T) {
	b := Box{Min: Point2{X: 0, Y: 0}, Max: Point2{X: 4, Y: 2}}
	if b.Width() != 4 {
		t.Fatalf("Width = %v", b.Width())
	}
	if b.Height() != 2 {
		t.Fatalf("Height = %v", b.Height())
	}
	if b.Center() != (Point2{X: 2, Y: 1}) {
		t.Fatalf("Center = %v", b.Center())
	}
}

package loop

import (
	"math"
	"testing"
)

func TestBuildRectangleClosure(t *testing.T) {
	b := NewBuilder()
	b.AddRectangle(2, 2, 1, 1)
	l := b.Build(true, 1)
	if !l.IsClosed() {
		t.Fatalf("loop should be closed")
	}
}

// TestBuildWindingMatchesRequest covers the loop-winding invariant:
// clockwise=true must yield signed area <= 0; clockwise=false must yield >= 0.
func TestBuildWindingMatchesRequest(t *testing.T) {
	for _, cw := range []bool{true, false} {
		b := NewBuilder()
		b.AddRectangle(2, 2, 1, 1)
		l := b.Build(cw, 1)
		area := l.SignedArea()
		if cw && area > 0 {
			t.Fatalf("clockwise=true: signed area = %v, want <= 0", area)
		}
		if !cw && area < 0 {
			t.Fatalf("clockwise=false: signed area = %v, want >= 0", area)
		}
	}
}

func TestBuildCircleAreaWithinBounds(t *testing.T) {
	b := NewBuilder()
	b.AddCircle(0, 0, 1)
	l := b.Build(false, 0.1)
	area := math.Abs(l.SignedArea())
	if area < 3.0 || area > math.Pi {
		t.Fatalf("circle polygon area = %v, want in [3.0, pi]", area)
	}
}

func TestBuildDropsDisconnectedEntity(t *testing.T) {
	b := NewBuilder()
	b.AddLineSegment(0, 0, 1, 0)
	b.AddLineSegment(5, 5, 6, 6) // disconnected: should be dropped
	b.AddLineSegment(1, 0, 0, 0)
	l := b.Build(false, 1)
	if !l.IsClosed() {
		t.Fatalf("expected closed loop after dropping disconnected entity")
	}
	for _, p := range l {
		if p.X > 4 {
			t.Fatalf("dropped entity's points leaked into loop: %v", p)
		}
	}
}

func TestAddRectangleCorners(t *testing.T) {
	b := NewBuilder()
	b.AddRectangle(0, 0, 2, 3)
	l := b.Build(false, 100)
	// with a large maxSpacing each edge samples to a single point at its
	// start, so the loop should visit all four corners.
	want := map[[2]float64]bool{
		{-2, -3}: false, {2, -3}: false, {2, 3}: false, {-2, 3}: false,
	}
	for _, p := range l.Points() {
		want[[2]float64{p.X, p.Y}] = true
	}
	for k, seen := range want {
		if !seen {
			t.Fatalf("corner %v not present in built loop", k)
		}
	}
}

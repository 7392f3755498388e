package geom

import "testing"

func TestLineSegmentLength(t *testing.T) {
	s := NewLineSegment(0, 0, 3, 4)
	if got := s.Length(); got != 5 {
		t.Fatalf("Length = %v, want 5", got)
	}
}

func TestLineSegmentSampleCount(t *testing.T) {
	s := NewLineSegment(0, 0, 10, 0)
	pts := s.Sample(1)
	if len(pts) != 10 {
		t.Fatalf("expected 10 samples, got %d", len(pts))
	}
	if !pts[0].Equal(Point2{X: 0, Y: 0}) {
		t.Fatalf("first sample should be start, got %v", pts[0])
	}
}

func TestLineSegmentReversed(t *testing.T) {
	s := NewLineSegment(0, 0, 1, 1)
	r := s.Reversed()
	if r.V1 != s.V2 || r.V2 != s.V1 {
		t.Fatalf("Reversed did not swap endpoints: %v", r)
	}
}

package spatial

import (
	"testing"

	"github.com/RaysceneNS/femcore/geom"
)

func TestHashGridAddAndQuery(t *testing.T) {
	grid := NewHashGrid(1)
	grid.Add(0, geom.Point2{X: 0, Y: 0})
	grid.Add(1, geom.Point2{X: 1.9, Y: 0})

	result := grid.FindNear(geom.Point2{X: 0.1, Y: 0.2}, 0.5)
	if len(result) != 1 || result[0] != 0 {
		t.Fatalf("expected to find point 0, got %v", result)
	}

	result = grid.FindNear(geom.Point2{X: 1.9, Y: 0}, 0.2)
	if len(result) == 0 {
		t.Fatalf("expected non-empty result")
	}
}

func TestHashGridZeroRadius(t *testing.T) {
	grid := NewHashGrid(1)
	grid.Add(0, geom.Point2{X: 0.1, Y: 0.2})
	result := grid.FindNear(geom.Point2{X: 0.1, Y: 0.2}, 0)
	if len(result) != 1 || result[0] != 0 {
		t.Fatalf("expected match at same cell")
	}
}

func TestHashGridNearest(t *testing.T) {
	grid := NewHashGrid(2)
	grid.Add(0, geom.Point2{X: 0, Y: 0})
	grid.Add(1, geom.Point2{X: 10, Y: 0})
	grid.Add(2, geom.Point2{X: 3, Y: 4})

	id, dist, ok := grid.Nearest(geom.Point2{X: 2.5, Y: 3.5})
	if !ok {
		t.Fatalf("expected a nearest result")
	}
	if id != 2 {
		t.Fatalf("expected nearest id 2, got %d (dist %v)", id, dist)
	}
}

func TestHashGridNearestEmpty(t *testing.T) {
	grid := NewHashGrid(1)
	if _, _, ok := grid.Nearest(geom.Point2{X: 0, Y: 0}); ok {
		t.Fatalf("expected no result from an empty index")
	}
}

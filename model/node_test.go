package model

import (
	"testing"

	"github.com/RaysceneNS/femcore/geom"
)

func TestFixAllClampsBothDOFsToZero(t *testing.T) {
	n := NewNode(geom.Point2{X: 1, Y: 2})
	n.FixAll()
	if !n.FixedX || !n.FixedY {
		t.Fatalf("FixAll did not set both fixed flags")
	}
	if n.DisplacementX != 0 || n.DisplacementY != 0 {
		t.Fatalf("FixAll did not zero displacements")
	}
}

func TestApplyLoadAccumulates(t *testing.T) {
	n := NewNode(geom.Point2{})
	n.ApplyLoad(1, 2)
	n.ApplyLoad(3, -1)
	if n.LoadX != 4 || n.LoadY != 1 {
		t.Fatalf("load = (%v,%v), want (4,1)", n.LoadX, n.LoadY)
	}
}

func TestApplyDisplacementAlongAxes(t *testing.T) {
	n := NewNode(geom.Point2{})
	n.ApplyDisplacementAlongX(0.5)
	if !n.FixedX || n.DisplacementX != 0.5 {
		t.Fatalf("ApplyDisplacementAlongX did not clamp x to 0.5")
	}
	if n.FixedY {
		t.Fatalf("ApplyDisplacementAlongX should not touch y")
	}
	n.ApplyDisplacementAlongY(-0.25)
	if !n.FixedY || n.DisplacementY != -0.25 {
		t.Fatalf("ApplyDisplacementAlongY did not clamp y to -0.25")
	}
}

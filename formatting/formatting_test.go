package formatting

import (
	"bytes"
	"testing"

	"github.com/RaysceneNS/femcore/geom"
	"github.com/RaysceneNS/femcore/mesher"
	"github.com/RaysceneNS/femcore/model"
)

func TestFormattingHelpers(t *testing.T) {
	pt := geom.Point2{X: 1.2345, Y: -9.876}
	if s := PointString(pt); s == "" {
		t.Fatalf("point string should not be empty")
	}

	box := geom.Box{Min: geom.Point2{X: 0, Y: 0}, Max: geom.Point2{X: 1, Y: 1}}
	if s := BoxString(box); s == "" {
		t.Fatalf("box string should not be empty")
	}

	if EdgeString(model.ElementEdge{V1: 1, V2: 2}) != "Edge{1, 2}" {
		t.Fatalf("unexpected edge string")
	}

	if TriangleString(mesher.TriangleFace{V1: 1, V2: 2, V3: 3}) == "" {
		t.Fatalf("triangle string should not be empty")
	}

	n := model.NewNode(pt)
	n.Ux, n.Uy = 0.5, -0.25
	if s := NodeString(n); s == "" {
		t.Fatalf("node string should not be empty")
	}

	buf := &bytes.Buffer{}
	if err := WritePoint(buf, pt); err != nil {
		t.Fatalf("write point failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected output for WritePoint")
	}
}

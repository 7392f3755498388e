package formatting

import (
	"fmt"
	"io"

	"github.com/RaysceneNS/femcore/mesher"
)

// TriangleString renders a triangle face's node indices.
func TriangleString(t mesher.TriangleFace) string {
	return fmt.Sprintf("Triangle{%d, %d, %d}", t.V1, t.V2, t.V3)
}

// WriteTriangle writes a triangle face to a writer.
func WriteTriangle(w io.Writer, t mesher.TriangleFace) error {
	_, err := fmt.Fprintf(w, "Triangle{%d, %d, %d}", t.V1, t.V2, t.V3)
	return err
}

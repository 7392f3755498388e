package formatting

import (
	"fmt"
	"io"

	"github.com/RaysceneNS/femcore/model"
)

// EdgeString renders a boundary edge's node indices in canonical
// directed form.
func EdgeString(e model.ElementEdge) string {
	return fmt.Sprintf("Edge{%d, %d}", e.V1, e.V2)
}

// WriteEdge writes an edge to a writer.
func WriteEdge(w io.Writer, e model.ElementEdge) error {
	_, err := fmt.Fprintf(w, "Edge{%d, %d}", e.V1, e.V2)
	return err
}

package formatting

import (
	"fmt"
	"io"

	"github.com/RaysceneNS/femcore/model"
)

// NodeString renders a node's position and, once solved, its displacement
// and Von Mises stress.
func NodeString(n model.Node) string {
	return fmt.Sprintf("Node{pos: %s, u: (%.6g, %.6g), vonMises: %.6g}",
		PointString(n.Position), n.Ux, n.Uy, n.VonMises)
}

// WriteNode writes a node's summary to a writer.
func WriteNode(w io.Writer, n model.Node) error {
	_, err := io.WriteString(w, NodeString(n))
	return err
}

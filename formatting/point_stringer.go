// Package formatting renders the core domain types as human-readable
// strings, for debug logging and CLI reports where %v's struct dump is
// too noisy to scan.
package formatting

import (
	"fmt"
	"io"

	"github.com/RaysceneNS/femcore/geom"
)

// PointString returns a concise string representation of a point.
func PointString(p geom.Point2) string {
	return fmt.Sprintf("(%.6g, %.6g)", p.X, p.Y)
}

// WritePoint writes a verbose representation of a point to a writer.
func WritePoint(w io.Writer, p geom.Point2) error {
	_, err := fmt.Fprintf(w, "Point2{X: %v, Y: %v}", p.X, p.Y)
	return err
}

// BoxString returns a concise string for a bounding box.
func BoxString(b geom.Box) string {
	return fmt.Sprintf("[%s-%s]", PointString(b.Min), PointString(b.Max))
}

package mesher

import "github.com/RaysceneNS/femcore/geom"

// superTriangle computes the three synthetic vertices of the bounding
// super-triangle: bounding box of all input vertices, the
// larger extent L, center (mx,my), and vertices
// (mx-2L, my-L), (mx, my+2L), (mx+2L, my-L).
func superTriangle(verts []geom.Point2) [3]geom.Point2 {
	box := geom.BoundingBox(verts)
	l := box.Width()
	if box.Height() > l {
		l = box.Height()
	}
	center := box.Center()
	mx, my := center.X, center.Y
	return [3]geom.Point2{
		{X: mx - 2*l, Y: my - l},
		{X: mx, Y: my + 2*l},
		{X: mx + 2*l, Y: my - l},
	}
}

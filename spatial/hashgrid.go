// Package spatial provides nearest-neighbor lookup over meshed node
// positions, for mapping a user-specified coordinate (a load or
// constraint region, a probe point) onto the node actually present in a
// solved model.
package spatial

import (
	"math"

	"github.com/RaysceneNS/femcore/geom"
)

// Index answers proximity queries over a fixed set of (id, position) pairs.
type Index interface {
	// FindNear returns the ids of every point within radius of p. A zero
	// radius returns only ids sharing p's grid cell.
	FindNear(p geom.Point2, radius float64) []int
	// Nearest returns the id closest to p and its distance. ok is false
	// when the index holds no points.
	Nearest(p geom.Point2) (id int, dist float64, ok bool)
	// Add registers a point under id.
	Add(id int, p geom.Point2)
}

// HashGrid implements Index with a uniform spatial hash: points are
// bucketed into cellSize x cellSize cells, so a query only has to inspect
// the handful of cells overlapping its radius rather than every point.
type HashGrid struct {
	cellSize float64
	cells    map[[2]int][]int
	points   map[int]geom.Point2
}

// NewHashGrid creates a hash grid index with the given cell size. Pick a
// cell size near the typical spacing between queried points; too small
// and most queries touch many cells, too large and each cell holds most
// of the point set.
func NewHashGrid(cellSize float64) *HashGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &HashGrid{
		cellSize: cellSize,
		cells:    make(map[[2]int][]int),
		points:   make(map[int]geom.Point2),
	}
}

// Add registers point p under id.
func (h *HashGrid) Add(id int, p geom.Point2) {
	cell := h.pointToCell(p)
	h.cells[cell] = append(h.cells[cell], id)
	h.points[id] = p
}

// FindNear returns ids within radius of p.
func (h *HashGrid) FindNear(p geom.Point2, radius float64) []int {
	if radius < 0 {
		radius = 0
	}
	if radius == 0 {
		cell := h.pointToCell(p)
		return append([]int(nil), h.cells[cell]...)
	}

	min := h.pointToCell(geom.Point2{X: p.X - radius, Y: p.Y - radius})
	max := h.pointToCell(geom.Point2{X: p.X + radius, Y: p.Y + radius})

	var result []int
	for cy := min[1]; cy <= max[1]; cy++ {
		for cx := min[0]; cx <= max[0]; cx++ {
			for _, id := range h.cells[[2]int{cx, cy}] {
				if p.DistanceTo(h.points[id]) <= radius {
					result = append(result, id)
				}
			}
		}
	}
	return result
}

// Nearest returns the id of the registered point closest to p, searching
// outward from p's cell in expanding rings until a candidate is found and
// no closer one can remain in an unsearched ring.
func (h *HashGrid) Nearest(p geom.Point2) (id int, dist float64, ok bool) {
	if len(h.points) == 0 {
		return 0, 0, false
	}

	best := -1
	bestDist := math.Inf(1)
	center := h.pointToCell(p)

	for ring := 0; ; ring++ {
		found := false
		for cy := center[1] - ring; cy <= center[1]+ring; cy++ {
			for cx := center[0] - ring; cx <= center[0]+ring; cx++ {
				if ring > 0 && cx != center[0]-ring && cx != center[0]+ring &&
					cy != center[1]-ring && cy != center[1]+ring {
					continue // interior of the box, already visited in a prior ring
				}
				ids, okCell := h.cells[[2]int{cx, cy}]
				if !okCell {
					continue
				}
				found = true
				for _, candidate := range ids {
					d := p.DistanceTo(h.points[candidate])
					if d < bestDist {
						bestDist = d
						best = candidate
					}
				}
			}
		}
		// Once a candidate is found, keep searching until the rings cover
		// bestDist plus one more ring, so nothing closer lurks just across
		// a cell boundary, then stop.
		if best != -1 && (found || ring > 0) {
			safeRing := int(math.Ceil(bestDist/h.cellSize)) + 1
			if ring >= safeRing {
				break
			}
		}
		if ring > 1<<20 {
			break // defensive bound; never reached in practice
		}
	}
	if best == -1 {
		return 0, 0, false
	}
	return best, bestDist, true
}

func (h *HashGrid) pointToCell(p geom.Point2) [2]int {
	return [2]int{
		int(math.Floor(p.X / h.cellSize)),
		int(math.Floor(p.Y / h.cellSize)),
	}
}

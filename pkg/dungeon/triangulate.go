package dungeon

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"dungen/pkg/engine/geometry"
)

// triangle holds three indices into a point slice.
type triangle struct {
	a, b, c int
}

// bowyerWatson incrementally builds a Delaunay triangulation over
// points[:realCount]. The points slice must end with three synthetic
// super-triangle points that strictly enclose all real ones; the returned
// triangles may still reference them.
func bowyerWatson(points []geometry.Vec, realCount int) []triangle {
	super := realCount
	triangles := []triangle{{super, super + 1, super + 2}}

	var bad []int

	for pointIndex := 0; pointIndex < realCount; pointIndex++ {
		point := points[pointIndex]

		bad = bad[:0]
		for triangleIndex, t := range triangles {
			if geometry.InCircumcircle(point, points[t.a], points[t.b], points[t.c]) {
				bad = append(bad, triangleIndex)
			}
		}

		// The cavity polygon is accumulated by XOR: an edge shared by two
		// bad triangles is added once and removed again, so only the outer
		// boundary of the cavity survives.
		polygon := mapset.New[Edge]()
		toggle := func(e Edge) {
			if polygon.Has(e) {
				polygon.Remove(e)
			} else {
				polygon.Put(e)
			}
		}
		for _, triangleIndex := range bad {
			t := triangles[triangleIndex]
			toggle(MakeEdge(t.a, t.b))
			toggle(MakeEdge(t.a, t.c))
			toggle(MakeEdge(t.b, t.c))
		}

		// Swap-remove is O(1) but renumbers the tail, so the bad indices
		// must be consumed in reverse. They are ascending by construction.
		for i := len(bad) - 1; i >= 0; i-- {
			triangles[bad[i]] = triangles[len(triangles)-1]
			triangles = triangles[:len(triangles)-1]
		}

		// Re-triangulate the cavity by fanning its edges to the new point.
		polygon.Each(func(e Edge) {
			triangles = append(triangles, triangle{e.A, e.B, pointIndex})
		})
	}

	return triangles
}

// Triangulate returns the edges of a Delaunay triangulation over the
// dungeon's doorway points, built with the Bowyer-Watson algorithm. The
// candidate graph it forms is pruned by PickCorridors.
//
// With fewer than three doorways the result degenerates to an empty or
// single-edge list, which downstream stages accept.
func Triangulate(dims geometry.Vec, d *Dungeon) []Edge {
	points := make([]geometry.Vec, 0, len(d.Doorways)+3)
	for _, doorway := range d.Doorways {
		points = append(points, doorway.Position)
	}

	// A right triangle over (-1,-1) with doubled legs strictly encloses
	// every cell of the grid.
	super := len(points)
	points = append(points,
		geometry.Vec{X: -1, Y: -1},
		geometry.Vec{X: -1, Y: 2*dims.Y + 1},
		geometry.Vec{X: 2*dims.X + 1, Y: -1},
	)

	triangles := bowyerWatson(points, super)

	// Flatten the surviving triangles into a deduplicated edge set,
	// discarding everything that touches a super-triangle point.
	edgeSet := mapset.New[Edge]()
	for _, t := range triangles {
		if t.a >= super || t.b >= super || t.c >= super {
			continue
		}
		edgeSet.Put(MakeEdge(t.a, t.b))
		edgeSet.Put(MakeEdge(t.a, t.c))
		edgeSet.Put(MakeEdge(t.b, t.c))
	}

	edges := make([]Edge, 0, edgeSet.Size())
	edgeSet.Each(func(e Edge) {
		edges = append(edges, e)
	})
	// Set iteration order is unspecified; sort so the same dungeon always
	// yields the same edge list and seeded runs stay reproducible.
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})

	return edges
}

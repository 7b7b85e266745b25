package dungeon

import (
	"sort"

	"dungen/pkg/engine/collections"
	"dungen/pkg/engine/random"
)

// minimumSpanningTree runs Kruskal's algorithm over the doorway graph. It
// stable-sorts edges in place by squared Euclidean length between their
// doorway endpoints and returns the indices of the edges accepted into the
// tree, in ascending order.
func minimumSpanningTree(doorways []Doorway, edges []Edge) []int {
	sort.SliceStable(edges, func(i, j int) bool {
		a := doorways[edges[i].A].Position.Sub(doorways[edges[i].B].Position).LengthSq()
		b := doorways[edges[j].A].Position.Sub(doorways[edges[j].B].Position).LengthSq()
		return a < b
	})

	set := collections.NewDisjointSet(len(doorways))
	var tree []int
	for edgeIndex, edge := range edges {
		if set.Find(edge.A) == set.Find(edge.B) {
			continue
		}
		tree = append(tree, edgeIndex)
		set.Union(edge.A, edge.B)
	}

	return tree
}

// PickCorridors selects the triangulation edges that will become corridors:
// the minimum spanning tree plus a configurable fraction of the remaining
// edges, reintroduced so dungeons are not purely tree-shaped. Edges whose
// doorways belong to the same room are geometric artifacts and never appear
// in the result. The output lists tree edges first, then accepted residual
// edges, each group in its sorted relative order.
func PickCorridors(cfg *Configuration, d *Dungeon, edges []Edge, rng random.Source) []Edge {
	// Sorting must not surprise the caller, who may still hold the
	// triangulation.
	edges = append([]Edge(nil), edges...)

	tree := minimumSpanningTree(d.Doorways, edges)

	// The tree indices are ascending, so the residual edges fall out of a
	// single linear merge pass.
	var residual []int
	treePos := 0
	for edgeIndex := range edges {
		if treePos < len(tree) && edgeIndex == tree[treePos] {
			treePos++
			continue
		}
		residual = append(residual, edgeIndex)
	}

	corridors := make([]Edge, 0, len(tree))

	for _, edgeIndex := range tree {
		edge := edges[edgeIndex]
		if d.Doorways[edge.A].RoomIndex != d.Doorways[edge.B].RoomIndex {
			corridors = append(corridors, edge)
		}
	}

	// One draw per usable residual edge; a shuffle would consume the source
	// differently and could not be scripted per edge in tests.
	density := cfg.ReintroducedCorridorDensity
	for _, edgeIndex := range residual {
		edge := edges[edgeIndex]
		if d.Doorways[edge.A].RoomIndex == d.Doorways[edge.B].RoomIndex {
			continue
		}
		if rng.Range(1, density.Denominator) <= density.Numerator {
			corridors = append(corridors, edge)
		}
	}

	return corridors
}

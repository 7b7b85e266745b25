package dungeon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungen/pkg/engine/geometry"
	"dungen/pkg/engine/random"
)

func doorwayAt(x, y, roomIndex int) Doorway {
	return Doorway{RoomIndex: roomIndex, Position: geometry.Vec{X: x, Y: y}}
}

func edgeWeight(doorways []Doorway, e Edge) int {
	return doorways[e.A].Position.Sub(doorways[e.B].Position).LengthSq()
}

// primTreeWeight computes the minimum spanning tree weight of the complete
// graph over the doorway positions with Prim's algorithm, as an independent
// cross-check of the Kruskal implementation.
func primTreeWeight(doorways []Doorway) int {
	n := len(doorways)
	inTree := make([]bool, n)
	best := make([]int, n)
	for i := range best {
		best[i] = int(^uint(0) >> 1)
	}
	best[0] = 0

	total := 0
	for added := 0; added < n; added++ {
		next := -1
		for i := 0; i < n; i++ {
			if !inTree[i] && (next == -1 || best[i] < best[next]) {
				next = i
			}
		}
		inTree[next] = true
		total += best[next]

		for i := 0; i < n; i++ {
			if inTree[i] {
				continue
			}
			w := doorways[next].Position.Sub(doorways[i].Position).LengthSq()
			if w < best[i] {
				best[i] = w
			}
		}
	}
	return total
}

func TestMinimumSpanningTreeOfRightTriangle(t *testing.T) {
	doorways := []Doorway{doorwayAt(1, 1, 0), doorwayAt(4, 1, 0), doorwayAt(1, 3, 0)}

	for _, input := range [][]Edge{
		{{0, 1}, {1, 2}, {0, 2}},
		{{0, 2}, {0, 1}, {1, 2}},
	} {
		edges := append([]Edge(nil), input...)
		tree := minimumSpanningTree(doorways, edges)

		require.Equal(t, []int{0, 1}, tree,
			"the tree should be the two short sides of the right triangle, shortest first")
		assert.Equal(t, []Edge{{0, 2}, {0, 1}, {1, 2}}, edges,
			"edges should be sorted by squared length")
	}
}

func TestMinimumSpanningTreeMatchesPrim(t *testing.T) {
	for _, size := range []int{10, 100, 1000} {
		rng := random.New(int64(size))
		positions := uniquePoints(size, geometry.Vec{X: 2000, Y: 2000}, rng)

		doorways := make([]Doorway, size)
		for i, p := range positions {
			doorways[i] = Doorway{RoomIndex: i, Position: p}
		}

		edges := make([]Edge, 0, size*(size-1)/2)
		for i := 0; i < size; i++ {
			for j := i + 1; j < size; j++ {
				edges = append(edges, Edge{i, j})
			}
		}

		tree := minimumSpanningTree(doorways, edges)
		require.Len(t, tree, size-1)

		total := 0
		for _, edgeIndex := range tree {
			total += edgeWeight(doorways, edges[edgeIndex])
		}
		assert.Equal(t, primTreeWeight(doorways), total,
			"Kruskal and Prim disagree on %d points", size)
	}
}

func TestPickCorridorsDropsSameRoomEdges(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.ReintroducedCorridorDensity = Ratio{1, 1}

	d := Dungeon{Doorways: []Doorway{
		doorwayAt(1, 1, 0), doorwayAt(4, 1, 0), doorwayAt(1, 3, 0), doorwayAt(4, 3, 0),
	}}
	edges := []Edge{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}}

	corridors := PickCorridors(&cfg, &d, edges, random.NewScripted(1))
	assert.Empty(t, corridors,
		"all doorways belong to one room, so no corridor can be picked")
}

func TestPickCorridorsZeroDensityKeepsOnlyTreeEdges(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.ReintroducedCorridorDensity = Ratio{0, 1}

	d := Dungeon{Doorways: []Doorway{
		doorwayAt(1, 1, 1), doorwayAt(4, 1, 2), doorwayAt(1, 3, 3), doorwayAt(4, 3, 4),
	}}
	edges := []Edge{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}}

	corridors := PickCorridors(&cfg, &d, edges, random.NewScripted(1))
	require.Len(t, corridors, 3)
	for _, want := range []Edge{{0, 2}, {0, 1}, {1, 3}} {
		assert.Contains(t, corridors, want)
	}
}

func TestPickCorridorsFullDensityKeepsEveryCrossRoomEdge(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.ReintroducedCorridorDensity = Ratio{1, 1}

	d := Dungeon{Doorways: []Doorway{
		doorwayAt(1, 1, 1), doorwayAt(4, 1, 2), doorwayAt(1, 3, 3), doorwayAt(4, 3, 4),
	}}
	edges := []Edge{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}}

	corridors := PickCorridors(&cfg, &d, edges, random.NewScripted(1))
	assert.Len(t, corridors, 5)
}

func TestPickCorridorsDoesNotReorderInput(t *testing.T) {
	cfg := DefaultConfiguration()

	d := Dungeon{Doorways: []Doorway{
		doorwayAt(1, 1, 1), doorwayAt(4, 1, 2), doorwayAt(1, 3, 3), doorwayAt(4, 3, 4),
	}}
	edges := []Edge{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}}
	snapshot := append([]Edge(nil), edges...)

	PickCorridors(&cfg, &d, edges, random.NewScripted(1))
	assert.Equal(t, snapshot, edges, "the caller's triangulation must stay intact")
}

package dungeon

import (
	"math"
	"slices"

	"dungen/pkg/engine/collections"
)

// Half of MaxInt is effectively infinity for the grid sizes involved and
// still leaves headroom for one addition.
const unreachedScore = math.MaxInt / 2

// diff returns the absolute difference of two integers.
func diff(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}

// manhattan returns the Manhattan distance between two row-major indices of
// a grid with the given width.
func manhattan(width, a, b int) int {
	return diff(a/width, b/width) + diff(a%width, b%width)
}

// makesSquare reports whether the four indices form a 2x2 block of grid
// cells.
func makesSquare(width int, nodes [4]int) bool {
	slices.Sort(nodes[:])
	return nodes[0]+1 == nodes[1] &&
		nodes[0]+width == nodes[2] &&
		nodes[0]+width+1 == nodes[3]
}

// pathfinder owns the reusable buffers for corridor searches. Carving runs
// one search per corridor edge, so allocating the open set and score arrays
// once and clearing them per search keeps the loop allocation-free.
type pathfinder struct {
	openSet *collections.Heap[int, int]
	gScores []int
	parent  []int
	path    []int
}

func newPathfinder(tileCount int) *pathfinder {
	return &pathfinder{
		openSet: collections.NewHeap[int, int](tileCount),
		gScores: make([]int, 0, tileCount),
		parent:  make([]int, 0, tileCount),
	}
}

// findPath runs A* from start to end over the tiles and returns the path as
// row-major indices from end back to start, or an empty slice when no path
// exists. The returned slice is only valid until the next call.
//
// The search carves to corridor-shape rules: Blocker and Room tiles are
// impassable, a corridor-neighbor cell never steps onto another
// corridor-neighbor cell, and no move may complete a 2x2 block with the
// current cell's parent chain. The heuristic is the Manhattan distance to
// the goal times the minimum cost, which assumes travel at the cheapest
// possible rate and is therefore admissible and consistent.
//
// Neighbor indices are computed with unchecked arithmetic; the caller must
// guarantee the Blocker margin so the search can never reach the grid edge.
func (p *pathfinder) findPath(cfg *Configuration, start, end, width int, tiles []Tile) []int {
	corridorCost := cfg.CorridorCost
	straightCost := cfg.StraightCost
	standardCost := cfg.StandardCost
	minCost := min(corridorCost, straightCost, standardCost)

	p.openSet.Clear()
	p.gScores = p.gScores[:0]
	p.parent = p.parent[:0]
	for i := range tiles {
		p.gScores = append(p.gScores, unreachedScore)
		p.parent = append(p.parent, i)
	}
	p.path = p.path[:0]

	p.gScores[start] = 0
	p.openSet.Insert(manhattan(width, start, end)*minCost, start)

	for {
		fScore, current, ok := p.openSet.ExtractMin()
		if !ok {
			break
		}

		// The heap holds stale entries for cells that were re-reached more
		// cheaply later; recover the g-score and skip those.
		gScore := fScore - manhattan(width, current, end)*minCost
		if gScore > p.gScores[current] {
			continue
		}

		if current == end {
			p.path = append(p.path, current)
			for current != p.parent[current] {
				current = p.parent[current]
				p.path = append(p.path, current)
			}
			return p.path
		}

		for _, neighbor := range [4]int{
			current + width, // south
			current - width, // north
			current + 1,     // east
			current - 1,     // west
		} {
			if tiles[neighbor] == TileBlocker || tiles[neighbor] == TileRoom {
				continue
			}
			if tiles[current] == TileCorridorNeighbor && tiles[neighbor] == TileCorridorNeighbor {
				continue
			}
			if makesSquare(width, [4]int{neighbor, current, p.parent[current], p.parent[p.parent[current]]}) {
				continue
			}

			var cost int
			switch {
			case tiles[neighbor] == TileCorridor:
				cost = corridorCost
			case diff(current, p.parent[current]) == diff(neighbor, current):
				cost = straightCost
			default:
				cost = standardCost
			}

			tentative := p.gScores[current] + cost
			if tentative < p.gScores[neighbor] {
				p.parent[neighbor] = current
				p.gScores[neighbor] = tentative
				p.openSet.Insert(tentative+manhattan(width, neighbor, end)*minCost, neighbor)
			}
		}
	}

	return p.path
}

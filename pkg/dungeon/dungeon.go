// Package dungeon generates 2D dungeon layouts: non-overlapping rectangular
// rooms connected by corridors carved through a tile grid, with optional
// maze-like interiors inside some rooms.
//
// The pipeline runs in five stages, each consuming the previous stage's
// output plus a shared Configuration and a random source:
//
//	GenerateRooms -> Triangulate -> PickCorridors -> MakeGrid -> MakeMazes
//
// Every stage is total over well-formed input and deterministic for a given
// random source; independent runs with distinct sources may execute in
// parallel since no state is shared between them.
package dungeon

import (
	"dungen/pkg/engine/geometry"
	"dungen/pkg/engine/random"
)

// Room is an axis-aligned rectangle of grid cells. Immutable once placed.
type Room struct {
	Bounds geometry.Rect
}

// Doorway is a corridor attachment point on the one-cell-inflated outline
// of its owning room. RoomIndex equal to the room count is the sentinel used
// for synthetic points during triangulation.
type Doorway struct {
	RoomIndex int
	Position  geometry.Vec
}

// Dungeon is the set of placed rooms plus all their doorways in discovery
// order. It is owned exclusively by the pipeline run that created it.
type Dungeon struct {
	Rooms    []Room
	Doorways []Doorway
}

// Edge is an unordered pair of doorway indices, normalized so A < B. Edge
// lists represent both the triangulation and the final corridor graph.
type Edge struct {
	A int
	B int
}

// MakeEdge normalizes the two doorway indices into an Edge.
func MakeEdge(a, b int) Edge {
	if a < b {
		return Edge{a, b}
	}
	return Edge{b, a}
}

// Generate runs the whole pipeline and returns the dungeon together with its
// carved tile grid. It is a convenience wrapper; callers that want the
// intermediate graphs run the stages themselves.
func Generate(cfg *Configuration, dims geometry.Vec, targetRoomCount int, rng random.Source) (Dungeon, Grid) {
	d := GenerateRooms(cfg, dims, targetRoomCount, rng)
	edges := Triangulate(dims, &d)
	corridors := PickCorridors(cfg, &d, edges, rng)
	grid := MakeGrid(cfg, dims, &d, corridors)
	MakeMazes(rng, cfg, &grid, &d)
	return d, grid
}

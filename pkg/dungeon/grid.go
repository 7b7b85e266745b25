package dungeon

import (
	"dungen/pkg/engine/geometry"
)

// Tile classifies one grid cell.
type Tile uint8

const (
	// TileBlocker is permanently impassable: the map border and the
	// one-cell margin around every room. It is the zero value so fresh
	// buffers default to impassable.
	TileBlocker Tile = iota
	// TileWall is unclaimed space between structures; carving may convert
	// it into corridor or corridor-neighbor cells.
	TileWall
	// TileRoom is room interior.
	TileRoom
	// TileDoorway is a corridor attachment cell on a room's margin ring.
	TileDoorway
	// TileCorridor is a carved corridor cell.
	TileCorridor
	// TileCorridorNeighbor marks a cell adjacent to a corridor. A corridor
	// must never run through two such cells in a row, which is what keeps
	// corridors from merging into 2x2 blocks.
	TileCorridorNeighbor
	// TileEmpty is a cell with no assigned meaning.
	TileEmpty
)

// Grid is a flat row-major tile array of length Width * height. The
// outermost ring and the one-cell margin around every room are always
// TileBlocker, so four-neighbor index arithmetic inside the carving
// algorithms never needs bounds checks.
type Grid struct {
	Width int
	Tiles []Tile
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	if g.Width == 0 {
		return 0
	}
	return len(g.Tiles) / g.Width
}

// At returns the tile at the given cell.
func (g *Grid) At(v geometry.Vec) Tile {
	return g.Tiles[geometry.ToIndex(v, g.Width)]
}

// Set replaces the tile at the given cell.
func (g *Grid) Set(v geometry.Vec, t Tile) {
	g.Tiles[geometry.ToIndex(v, g.Width)] = t
}

// MakeGrid rasterizes the dungeon into a tile grid and carves a corridor
// for every selected edge. Rooms are stamped with their one-cell Blocker
// margin, the outer boundary becomes a Blocker ring, and each corridor is
// found with A* under the configured costs.
//
// Carving is two-phase: all edges are attempted on a scratch copy first and
// promoted only when every one of them connects. If any edge fails, the
// whole batch is retried with the default-configuration costs, this time
// keeping whatever connects; edges that still fail are skipped, leaving
// their rooms disconnected, which callers must tolerate.
func MakeGrid(cfg *Configuration, dims geometry.Vec, d *Dungeon, corridors []Edge) Grid {
	width, height := dims.X, dims.Y
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = TileWall
	}

	// Map border.
	for x := 0; x < width; x++ {
		tiles[x] = TileBlocker
		tiles[(height-1)*width+x] = TileBlocker
	}
	for y := 0; y < height; y++ {
		tiles[y*width] = TileBlocker
		tiles[y*width+width-1] = TileBlocker
	}

	// Room interiors plus their margin rings. Placement keeps rooms at
	// least MinPadding cells apart, so rings never touch another interior.
	for _, room := range d.Rooms {
		b := room.Bounds
		for y := b.Y - 1; y <= b.Y+b.Height; y++ {
			for x := b.X - 1; x <= b.X+b.Width; x++ {
				if b.Contains(geometry.Vec{X: x, Y: y}) {
					tiles[y*width+x] = TileRoom
				} else {
					tiles[y*width+x] = TileBlocker
				}
			}
		}
	}

	grid := Grid{Width: width, Tiles: tiles}

	carved, ok := carveCorridors(cfg, &grid, d, corridors, false)
	if !ok {
		// The configured cost ratio could not connect every edge; retry the
		// whole batch once with the known-safe default costs and accept
		// whatever connects.
		fallback := *cfg
		defaults := DefaultConfiguration()
		fallback.CorridorCost = defaults.CorridorCost
		fallback.StraightCost = defaults.StraightCost
		fallback.StandardCost = defaults.StandardCost
		carved, _ = carveCorridors(&fallback, &grid, d, corridors, true)
	}
	grid.Tiles = carved

	return grid
}

// carveCorridors attempts to carve every corridor edge on a scratch copy of
// the grid's tiles. When skipFailures is false the first unreachable edge
// aborts the attempt and the boolean result is false; when true, failed
// edges are skipped and the partial result is kept.
func carveCorridors(cfg *Configuration, g *Grid, d *Dungeon, corridors []Edge, skipFailures bool) ([]Tile, bool) {
	tiles := append([]Tile(nil), g.Tiles...)
	finder := newPathfinder(len(tiles))

	for _, edge := range corridors {
		start := geometry.ToIndex(d.Doorways[edge.A].Position, g.Width)
		end := geometry.ToIndex(d.Doorways[edge.B].Position, g.Width)

		// Doorways participating in corridors punch through the margin ring.
		tiles[start] = TileDoorway
		tiles[end] = TileDoorway

		path := finder.findPath(cfg, start, end, g.Width, tiles)
		if len(path) == 0 {
			if !skipFailures {
				return nil, false
			}
			continue
		}

		materializePath(tiles, g.Width, path)
	}

	return tiles, true
}

// materializePath commits a found path to the tiles. Wall cells next to the
// new corridor become corridor neighbors so later searches respect the
// shape rule; room cells next to it become doorways; a neighbor that is
// already a corridor neighbor (the corridor just turned a corner inside
// existing corridor influence) hardens into a blocker.
func materializePath(tiles []Tile, width int, path []int) {
	for _, index := range path {
		for _, neighbor := range [4]int{index - width, index + width, index - 1, index + 1} {
			switch tiles[neighbor] {
			case TileWall:
				tiles[neighbor] = TileCorridorNeighbor
			case TileRoom:
				tiles[neighbor] = TileDoorway
			case TileCorridorNeighbor:
				tiles[neighbor] = TileBlocker
			}
		}
		if tiles[index] != TileDoorway {
			tiles[index] = TileCorridor
		}
	}
}

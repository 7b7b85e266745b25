package dungeon

import (
	"github.com/zyedidia/generic/mapset"

	"dungen/pkg/engine/collections"
	"dungen/pkg/engine/geometry"
	"dungen/pkg/engine/random"
)

// mazeEdge is an adjacency between two maze cells together with the wall
// tile separating them.
type mazeEdge struct {
	a, b int
	wall geometry.Vec
}

// MakeMazes overlays a randomized perfect maze inside each room whose width
// and height both reach cfg.MinMazeDimension, with probability
// cfg.MazeChance per qualifying room. The overlay is purely aesthetic: it
// never touches tiles outside room interiors and never walls off a doorway,
// so the connectivity established by the carving stage is preserved.
func MakeMazes(rng random.Source, cfg *Configuration, g *Grid, d *Dungeon) {
	// The random capability only hands out integers, so the chance is
	// applied at 1/1000 resolution.
	threshold := int(cfg.MazeChance * 1000)

	for _, room := range d.Rooms {
		b := room.Bounds
		if b.Width < cfg.MinMazeDimension || b.Height < cfg.MinMazeDimension {
			continue
		}
		if rng.Range(0, 999) >= threshold {
			continue
		}
		carveMaze(rng, g, b)
	}
}

// carveMaze partitions the room interior into 2x2 tile cells (odd
// dimensions round up, leaving a partial last row or column), picks a
// spanning set of cell adjacencies with randomized Kruskal, and forces
// every remaining internal wall position to TileWall. Wall positions are
// the tiles at an odd row or column offset within the room: the ones
// between cells carry an adjacency edge, the ones on an even final row or
// column of the room do not and always become walls, which avoids an open
// seam along those sides.
func carveMaze(rng random.Source, g *Grid, b geometry.Rect) {
	cellsX := (b.Width + 1) / 2
	cellsY := (b.Height + 1) / 2

	var edges []mazeEdge
	for cy := 0; cy < cellsY; cy++ {
		for cx := 0; cx < cellsX; cx++ {
			cell := cy*cellsX + cx
			if cx+1 < cellsX {
				edges = append(edges, mazeEdge{
					a:    cell,
					b:    cell + 1,
					wall: geometry.Vec{X: b.X + 2*cx + 1, Y: b.Y + 2*cy},
				})
			}
			if cy+1 < cellsY {
				edges = append(edges, mazeEdge{
					a:    cell,
					b:    cell + cellsX,
					wall: geometry.Vec{X: b.X + 2*cx, Y: b.Y + 2*cy + 1},
				})
			}
		}
	}

	// Fisher-Yates over the shared random capability; the rand library's
	// shuffle would consume the source through a different call pattern and
	// break scripted substitution.
	for i := len(edges) - 1; i > 0; i-- {
		j := rng.Range(0, i)
		edges[i], edges[j] = edges[j], edges[i]
	}

	// Randomized Kruskal: edges joining two previously unconnected cells
	// become passages, everything else stays a wall candidate.
	set := collections.NewDisjointSet(cellsX * cellsY)
	passages := mapset.New[geometry.Vec]()
	for _, edge := range edges {
		if set.Find(edge.a) == set.Find(edge.b) {
			continue
		}
		set.Union(edge.a, edge.b)
		passages.Put(edge.wall)
	}

	for y := b.Y; y < b.Y+b.Height; y++ {
		for x := b.X; x < b.X+b.Width; x++ {
			// Cells at even/even offsets are the open maze floor.
			if (x-b.X)%2 == 0 && (y-b.Y)%2 == 0 {
				continue
			}
			wall := geometry.Vec{X: x, Y: y}
			if passages.Has(wall) {
				continue
			}
			placeMazeWall(g, wall)
		}
	}
}

// placeMazeWall sets the tile to TileWall unless that would block an
// adjacent doorway; doorway accessibility always wins over maze strictness.
func placeMazeWall(g *Grid, v geometry.Vec) {
	for _, dir := range geometry.AllDirections() {
		if g.At(v.Add(dir.Delta())) == TileDoorway {
			return
		}
	}
	g.Set(v, TileWall)
}

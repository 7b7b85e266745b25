package dungeon

import "strings"

// Grid text format, one character per tile and one newline per row. Used by
// tests and debug dumps only; it is not a persistence format.
const (
	charBlocker          = '%'
	charWall             = '#'
	charRoom             = '_'
	charDoorway          = 'd'
	charCorridor         = 'c'
	charCorridorNeighbor = '@'
	charEmpty            = '.'
)

// Rune returns the tile's text-format character.
func (t Tile) Rune() rune {
	switch t {
	case TileBlocker:
		return charBlocker
	case TileWall:
		return charWall
	case TileRoom:
		return charRoom
	case TileDoorway:
		return charDoorway
	case TileCorridor:
		return charCorridor
	case TileCorridorNeighbor:
		return charCorridorNeighbor
	default:
		return charEmpty
	}
}

// tileFromRune maps a text-format character back to a tile. Unrecognized
// characters become TileEmpty, which makes parsing lossy only for inputs
// that were never produced by String.
func tileFromRune(r rune) Tile {
	switch r {
	case charBlocker:
		return TileBlocker
	case charWall:
		return TileWall
	case charRoom:
		return TileRoom
	case charDoorway:
		return TileDoorway
	case charCorridor:
		return TileCorridor
	case charCorridorNeighbor:
		return TileCorridorNeighbor
	default:
		return TileEmpty
	}
}

// String renders the grid in the text format.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.Tiles) + g.Height())
	for i, t := range g.Tiles {
		b.WriteRune(t.Rune())
		if (i+1)%g.Width == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// ParseGrid builds a grid from its text format. The width is taken from the
// first line; lines must all have equal length.
func ParseGrid(s string) Grid {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return Grid{}
	}

	width := len(lines[0])
	tiles := make([]Tile, 0, width*len(lines))
	for _, line := range lines {
		for _, r := range line {
			tiles = append(tiles, tileFromRune(r))
		}
	}

	return Grid{Width: width, Tiles: tiles}
}

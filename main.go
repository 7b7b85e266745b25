package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"

	"dungen/pkg/dungeon"
	"dungen/pkg/engine/geometry"
	"dungen/pkg/engine/random"
	"dungen/pkg/engine/terminal"
)

// densityResolution converts the density flag into the ratio the pipeline
// consumes, matching the 1/1000 resolution of the maze chance.
const densityResolution = 1000

var (
	styleBlocker  color.Style
	styleWall     color.Style
	styleRoom     color.Style
	styleDoorway  color.Style
	styleCorridor color.Style
	styleNeighbor color.Style
)

// initColors initializes the per-tile color styles.
func initColors() {
	styleBlocker = color.Style{color.FgBlack, color.OpBold}
	styleWall = color.Style{color.FgGray}
	styleRoom = color.Style{color.FgYellow}
	styleDoorway = color.Style{color.FgBlue, color.OpBold}
	styleCorridor = color.Style{color.FgGreen}
	styleNeighbor = color.Style{color.FgGray, color.OpBold}
}

// tileStyle returns the color style for a tile.
func tileStyle(t dungeon.Tile) color.Style {
	switch t {
	case dungeon.TileBlocker:
		return styleBlocker
	case dungeon.TileRoom:
		return styleRoom
	case dungeon.TileDoorway:
		return styleDoorway
	case dungeon.TileCorridor:
		return styleCorridor
	case dungeon.TileCorridorNeighbor:
		return styleNeighbor
	default:
		return styleWall
	}
}

// printGrid writes the grid to stdout, one character per tile.
func printGrid(grid *dungeon.Grid, plain bool) {
	if plain {
		fmt.Print(grid.String())
		return
	}

	var row strings.Builder
	for i, t := range grid.Tiles {
		row.WriteString(tileStyle(t).Sprint(string(t.Rune())))
		if (i+1)%grid.Width == 0 {
			fmt.Println(row.String())
			row.Reset()
		}
	}
}

func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(2)
}

func main() {
	width := flag.Int("width", 100, "grid width in tiles")
	height := flag.Int("height", 100, "grid height in tiles")
	rooms := flag.Int("rooms", 30, "target room count (0 = as many as fit)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	density := flag.Float64("density", 0.5, "fraction of extra corridors reintroduced, 0..1")
	mazeChance := flag.Float64("maze-chance", 0.1, "probability of a maze overlay per qualifying room, 0..1")
	mazes := flag.Bool("mazes", true, "carve maze interiors inside qualifying rooms")
	plain := flag.Bool("plain", false, "disable colored output")
	flag.Parse()

	cfg := dungeon.DefaultConfiguration()
	cfg.ReintroducedCorridorDensity = dungeon.Ratio{
		Numerator:   int(*density * densityResolution),
		Denominator: densityResolution,
	}
	cfg.MazeChance = *mazeChance
	if !*mazes {
		cfg.MazeChance = 0
	}

	if !cfg.IsValid() {
		fail("invalid configuration: density and maze-chance must be within 0..1")
	}
	minSide := cfg.MinRoomDimension + 2*cfg.MinPadding
	if *width < minSide || *height < minSide {
		fail("grid must be at least %dx%d to fit a room with padding", minSide, minSide)
	}

	dims := geometry.Vec{X: *width, Y: *height}
	rng := random.New(*seed)
	_, grid := dungeon.Generate(&cfg, dims, *rooms, rng)

	if termWidth := terminal.GetWidth(); grid.Width > termWidth {
		fmt.Fprintf(os.Stderr, "warning: grid is wider than the terminal (%d > %d)\n", grid.Width, termWidth)
	}

	initColors()
	printGrid(&grid, *plain)
}

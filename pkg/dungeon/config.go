package dungeon

// Ratio is a rational probability expressed as Numerator out of Denominator.
type Ratio struct {
	Numerator   int
	Denominator int
}

// Configuration holds the tunables for one pipeline run. It is read-only
// while the pipeline executes; an invalid configuration is a caller
// precondition violation, not a recoverable error.
type Configuration struct {
	// MinRoomDimension is the minimum tile length of a room. Valid for both
	// width and height.
	MinRoomDimension int
	// MaxRoomDimension is the maximum tile length of a room. Must be greater
	// than or equal to the minimum.
	MaxRoomDimension int
	// MinPadding is the minimum distance between rooms and the map border,
	// guaranteeing that doorways stay accessible.
	MinPadding int
	// DoorwayOffset is the inset of doorways from room corners. Aesthetic
	// option.
	DoorwayOffset int
	// MaxFailCount is the number of consecutive failed placement attempts
	// before room generation gives up. The bigger the number the higher the
	// likelihood that the target room count is reached.
	MaxFailCount int
	// ReintroducedCorridorDensity is the proportion of non-tree triangulation
	// edges that are kept as extra corridors on average.
	ReintroducedCorridorDensity Ratio
	// CorridorCost is the A* cost for moving through an already placed
	// corridor. The relationship between this value and the other two costs
	// determines the shape of the corridors.
	CorridorCost int
	// StraightCost is the A* cost for moving in the same direction from
	// which the current tile was reached. When lower than the standard cost
	// it keeps the corridors straight, hence the name.
	StraightCost int
	// StandardCost is the default A* cost. Corridors only move horizontally
	// or vertically.
	StandardCost int
	// MinMazeDimension is the smallest room side that still qualifies for a
	// maze overlay.
	MinMazeDimension int
	// MazeChance is the probability in [0, 1] that a qualifying room
	// receives a maze overlay.
	MazeChance float64
}

// DefaultConfiguration returns the known-safe default tunables. The carving
// stage also falls back to these costs when the configured ones fail to
// connect an edge.
func DefaultConfiguration() Configuration {
	return Configuration{
		MinRoomDimension:            5,
		MaxRoomDimension:            20,
		MinPadding:                  3,
		DoorwayOffset:               2,
		MaxFailCount:                10,
		ReintroducedCorridorDensity: Ratio{1, 2},
		CorridorCost:                1,
		StraightCost:                2,
		StandardCost:                3,
		MinMazeDimension:            5,
		MazeChance:                  0.1,
	}
}

// IsValid reports whether every field is inside its allowed range. Callers
// must validate before invoking the pipeline.
func (c *Configuration) IsValid() bool {
	return c.MinRoomDimension >= 5 &&
		c.MinRoomDimension <= c.MaxRoomDimension &&
		c.MinPadding >= 3 &&
		c.DoorwayOffset >= 1 &&
		// Both offsets must fit on a minimum-length side with at least one
		// cell left in between.
		c.DoorwayOffset*2 < c.MinRoomDimension &&
		c.MaxFailCount >= 1 &&
		c.ReintroducedCorridorDensity.Numerator >= 0 &&
		c.ReintroducedCorridorDensity.Numerator <= c.ReintroducedCorridorDensity.Denominator &&
		c.ReintroducedCorridorDensity.Denominator >= 1 &&
		c.CorridorCost >= 1 &&
		c.StraightCost >= 1 &&
		c.StandardCost >= 1 &&
		c.MinMazeDimension >= 5 &&
		c.MazeChance >= 0 &&
		c.MazeChance <= 1
}

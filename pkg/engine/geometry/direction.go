package geometry

// Direction represents a cardinal direction.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration. The order is
// fixed; callers that draw random values per direction rely on it.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the column and row offsets for this direction.
func (d Direction) Delta() Vec {
	switch d {
	case North:
		return Vec{0, -1}
	case East:
		return Vec{1, 0}
	case South:
		return Vec{0, 1}
	case West:
		return Vec{-1, 0}
	default:
		return Vec{}
	}
}

// Bit returns the direction's bit in a 4-bit side mask.
func (d Direction) Bit() int {
	return 1 << d
}

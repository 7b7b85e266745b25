package dungeon

import (
	"dungen/pkg/engine/geometry"
	"dungen/pkg/engine/random"
)

// generateDoorways places between one and four doorways on the one-cell
// inflated outline of bounds. A single non-zero 4-bit mask decides which
// sides get a doorway; the position along each chosen side is drawn
// uniformly, inset at least cfg.DoorwayOffset cells from the corners.
func generateDoorways(cfg *Configuration, bounds geometry.Rect, roomIndex int, rng random.Source) []Doorway {
	mask := rng.Range(1, 15)
	doorways := make([]Doorway, 0, 4)

	for _, side := range geometry.AllDirections() {
		if mask&side.Bit() == 0 {
			continue
		}

		var position geometry.Vec
		switch side {
		case geometry.North:
			position = geometry.Vec{
				X: bounds.X + rng.Range(cfg.DoorwayOffset, bounds.Width-1-cfg.DoorwayOffset),
				Y: bounds.Y - 1,
			}
		case geometry.South:
			position = geometry.Vec{
				X: bounds.X + rng.Range(cfg.DoorwayOffset, bounds.Width-1-cfg.DoorwayOffset),
				Y: bounds.Y + bounds.Height,
			}
		case geometry.West:
			position = geometry.Vec{
				X: bounds.X - 1,
				Y: bounds.Y + rng.Range(cfg.DoorwayOffset, bounds.Height-1-cfg.DoorwayOffset),
			}
		case geometry.East:
			position = geometry.Vec{
				X: bounds.X + bounds.Width,
				Y: bounds.Y + rng.Range(cfg.DoorwayOffset, bounds.Height-1-cfg.DoorwayOffset),
			}
		}

		doorways = append(doorways, Doorway{RoomIndex: roomIndex, Position: position})
	}

	return doorways
}

// GenerateRooms places up to targetRoomCount non-overlapping rooms inside a
// dims.X by dims.Y grid by rejection sampling. A candidate is rejected when
// its bounds, padded by cfg.MinPadding, intersect any accepted room's padded
// bounds; cfg.MaxFailCount consecutive rejections abort the loop. Producing
// fewer rooms than requested is a valid outcome, not an error.
//
// targetRoomCount <= 0 means unbounded: keep placing until the fail budget
// runs out. The grid must be at least MinRoomDimension + 2*MinPadding cells
// in each dimension; smaller grids are a precondition violation.
func GenerateRooms(cfg *Configuration, dims geometry.Vec, targetRoomCount int, rng random.Source) Dungeon {
	if targetRoomCount <= 0 {
		targetRoomCount = dims.X * dims.Y
	}

	var result Dungeon
	failCount := 0

placement:
	for len(result.Rooms) < targetRoomCount {
		if failCount >= cfg.MaxFailCount {
			break
		}

		// Keeping MinPadding to every border leaves room for the one-cell
		// Blocker ring plus corridor clearance around each room.
		x := rng.Range(cfg.MinPadding, dims.X-cfg.MinRoomDimension-cfg.MinPadding)
		y := rng.Range(cfg.MinPadding, dims.Y-cfg.MinRoomDimension-cfg.MinPadding)

		width := rng.Range(cfg.MinRoomDimension, min(cfg.MaxRoomDimension, dims.X-x-cfg.MinPadding))
		height := rng.Range(cfg.MinRoomDimension, min(cfg.MaxRoomDimension, dims.Y-y-cfg.MinPadding))

		bounds := geometry.Rect{X: x, Y: y, Width: width, Height: height}

		for _, previous := range result.Rooms {
			if geometry.PaddedOverlap(previous.Bounds, bounds, cfg.MinPadding) {
				failCount++
				continue placement
			}
		}

		failCount = 0
		roomIndex := len(result.Rooms)
		result.Rooms = append(result.Rooms, Room{Bounds: bounds})
		result.Doorways = append(result.Doorways, generateDoorways(cfg, bounds, roomIndex, rng)...)
	}

	return result
}

package dungeon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungen/pkg/engine/geometry"
	"dungen/pkg/engine/random"
)

// strictlyInCircumcircle is an exact integer version of the circumcircle
// predicate with the boundary excluded, for checking the Delaunay property;
// cocircular point sets admit several valid triangulations.
func strictlyInCircumcircle(p, a, b, c geometry.Vec) bool {
	px, py := p.X-a.X, p.Y-a.Y
	bx, by := b.X-a.X, b.Y-a.Y
	cx, cy := c.X-a.X, c.Y-a.Y

	bLen := bx*bx + by*by
	cLen := cx*cx + cy*cy

	ux := cy*bLen - by*cLen
	uy := bx*cLen - cx*bLen
	d := (bx*cy - by*cx) * 2

	px *= d
	py *= d

	dx, dy := px-ux, py-uy
	return dx*dx+dy*dy < ux*ux+uy*uy
}

// uniquePoints draws count distinct positions inside dims.
func uniquePoints(count int, dims geometry.Vec, rng random.Source) []geometry.Vec {
	seen := make(map[geometry.Vec]bool, count)
	points := make([]geometry.Vec, 0, count)
	for len(points) < count {
		p := geometry.Vec{X: rng.Range(0, dims.X-1), Y: rng.Range(0, dims.Y-1)}
		if seen[p] {
			continue
		}
		seen[p] = true
		points = append(points, p)
	}
	return points
}

func dungeonFromPoints(points []geometry.Vec) Dungeon {
	d := Dungeon{}
	for i, p := range points {
		// One synthetic room per point keeps every edge cross-room.
		d.Rooms = append(d.Rooms, Room{Bounds: geometry.Rect{X: p.X, Y: p.Y, Width: 1, Height: 1}})
		d.Doorways = append(d.Doorways, Doorway{RoomIndex: i, Position: p})
	}
	return d
}

func TestTriangulateDegenerateInputs(t *testing.T) {
	dims := geometry.Vec{X: 50, Y: 50}

	empty := Triangulate(dims, &Dungeon{})
	assert.Empty(t, empty)

	one := dungeonFromPoints([]geometry.Vec{{X: 5, Y: 5}})
	assert.Empty(t, Triangulate(dims, &one))

	// Two points cannot form a triangle that survives super-point removal.
	two := dungeonFromPoints([]geometry.Vec{{X: 5, Y: 5}, {X: 20, Y: 20}})
	assert.Empty(t, Triangulate(dims, &two))
}

func TestTriangulateTriangle(t *testing.T) {
	dims := geometry.Vec{X: 50, Y: 50}
	d := dungeonFromPoints([]geometry.Vec{{X: 5, Y: 5}, {X: 30, Y: 7}, {X: 12, Y: 25}})

	edges := Triangulate(dims, &d)
	assert.ElementsMatch(t, []Edge{{0, 1}, {0, 2}, {1, 2}}, edges)
}

func TestTriangulateSatisfiesDelaunayProperty(t *testing.T) {
	dims := geometry.Vec{X: 100, Y: 100}

	for seed := int64(0); seed < 5; seed++ {
		rng := random.New(seed)
		points := uniquePoints(40, dims, rng)

		// Run the incremental construction directly so the intermediate
		// triangles are visible to the property check.
		withSuper := append(append([]geometry.Vec(nil), points...),
			geometry.Vec{X: -1, Y: -1},
			geometry.Vec{X: -1, Y: 2*dims.Y + 1},
			geometry.Vec{X: 2*dims.X + 1, Y: -1},
		)
		triangles := bowyerWatson(withSuper, len(points))

		for _, tri := range triangles {
			if tri.a >= len(points) || tri.b >= len(points) || tri.c >= len(points) {
				continue
			}
			a, b, c := points[tri.a], points[tri.b], points[tri.c]
			for i, p := range points {
				if i == tri.a || i == tri.b || i == tri.c {
					continue
				}
				assert.False(t, strictlyInCircumcircle(p, a, b, c),
					"seed %d: point %v violates the empty-circumcircle property of triangle (%v %v %v)",
					seed, p, a, b, c)
			}
		}
	}
}

func TestTriangulateEdgesAreNormalizedAndDeduplicated(t *testing.T) {
	dims := geometry.Vec{X: 100, Y: 100}
	d := dungeonFromPoints(uniquePoints(25, dims, random.New(17)))

	edges := Triangulate(dims, &d)
	require.NotEmpty(t, edges)

	seen := make(map[Edge]bool)
	for _, e := range edges {
		assert.Less(t, e.A, e.B, "edge %v is not normalized", e)
		assert.Less(t, e.B, len(d.Doorways), "edge %v references a synthetic point", e)
		assert.False(t, seen[e], "edge %v appears twice", e)
		seen[e] = true
	}
}

func TestTriangulateIsDeterministic(t *testing.T) {
	dims := geometry.Vec{X: 100, Y: 100}
	d := dungeonFromPoints(uniquePoints(30, dims, random.New(23)))

	first := Triangulate(dims, &d)
	second := Triangulate(dims, &d)
	assert.Equal(t, first, second)
}

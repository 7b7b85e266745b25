// Package geometry provides the integer-grid primitives shared by the
// generation pipeline: 2D vectors, axis-aligned rectangles, cardinal
// directions and the circumcircle predicate used by triangulation.
package geometry

// Vec is a 2D point or offset in grid-cell units.
type Vec struct {
	X int
	Y int
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// LengthSq returns the squared Euclidean length of v.
func (v Vec) LengthSq() int {
	return v.X*v.X + v.Y*v.Y
}

// ToIndex converts a point to a row-major index into a flat grid array.
// Grids are stored as single-dimension slices to avoid per-row allocation.
func ToIndex(v Vec, gridWidth int) int {
	return v.Y*gridWidth + v.X
}

// FromIndex converts a row-major index back into a point.
func FromIndex(index, gridWidth int) Vec {
	return Vec{index % gridWidth, index / gridWidth}
}

// InCircumcircle reports whether p lies inside or on the circle through
// a, b and c. The circumcenter is kept in its doubled, unnormalized form
// and p is scaled to match, so no division (and no zero-divisor check)
// is needed. Reference: the circumcenter coordinate formulas at
// https://en.wikipedia.org/wiki/Circumcircle#Circumcenter_coordinates
func InCircumcircle(p, a, b, c Vec) bool {
	// Translate the points so that a is the origin.
	px := float64(p.X - a.X)
	py := float64(p.Y - a.Y)
	bx := float64(b.X - a.X)
	by := float64(b.Y - a.Y)
	cx := float64(c.X - a.X)
	cy := float64(c.Y - a.Y)

	bLen := bx*bx + by*by
	cLen := cx*cx + cy*cy

	// Unnormalized circumcenter; the true center is u / d.
	ux := cy*bLen - by*cLen
	uy := bx*cLen - cx*bLen
	d := (bx*cy - by*cx) * 2

	// Scale p by d instead of dividing u by it.
	px *= d
	py *= d

	dx := px - ux
	dy := py - uy
	return dx*dx+dy*dy <= ux*ux+uy*uy
}

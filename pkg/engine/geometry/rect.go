package geometry

// Rect is an axis-aligned rectangle of grid cells. It covers the columns
// [X, X+Width) and the rows [Y, Y+Height).
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the cell at v lies inside the rectangle.
func (r Rect) Contains(v Vec) bool {
	return v.X >= r.X && v.X < r.X+r.Width && v.Y >= r.Y && v.Y < r.Y+r.Height
}

// Overlaps reports whether the two rectangles share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// PaddedOverlap reports whether a and b, each grown by pad cells in width
// and height, intersect. Growing only the far sides of both rectangles
// keeps a minimum gap of pad cells between the originals, which is the
// separation the room placer enforces.
func PaddedOverlap(a, b Rect, pad int) bool {
	a.Width += pad
	a.Height += pad
	b.Width += pad
	b.Height += pad
	return a.Overlaps(b)
}

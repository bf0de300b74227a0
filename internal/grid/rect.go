package grid

// Rect is a rectangular block of cells anchored at its top-left corner.
type Rect struct {
	Start Coord
	Cols  int
	Rows  int
}

// Contains returns true if the given cell is inside the rectangle.
func (r Rect) Contains(c Coord) bool {
	return c.Col >= r.Start.Col && c.Col < r.Start.Col+r.Cols &&
		c.Row >= r.Start.Row && c.Row < r.Start.Row+r.Rows
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	return r.Start.Col < other.Start.Col+other.Cols &&
		r.Start.Col+r.Cols > other.Start.Col &&
		r.Start.Row < other.Start.Row+other.Rows &&
		r.Start.Row+r.Rows > other.Start.Row
}

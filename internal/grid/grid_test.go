package grid

import "testing"

func TestCoordAdd(t *testing.T) {
	tests := []struct {
		name string
		from Coord
		dir  Direction
		want Coord
	}{
		{"north", Coord{2, 2}, North, Coord{2, 1}},
		{"south", Coord{2, 2}, South, Coord{2, 3}},
		{"east", Coord{2, 2}, East, Coord{3, 2}},
		{"west", Coord{2, 2}, West, Coord{1, 2}},
		{"north saturates", Coord{4, 0}, North, Coord{4, 0}},
		{"west saturates", Coord{0, 4}, West, Coord{0, 4}},
		{"unknown direction", Coord{1, 1}, Direction(42), Coord{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.Add(tt.dir); got != tt.want {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.from, tt.dir, got, tt.want)
			}
		})
	}
}

func TestCoordNeverUnderflows(t *testing.T) {
	c := Coord{}
	for i := 0; i < 10; i++ {
		c = c.Add(West).Add(North)
	}
	if c != (Coord{}) {
		t.Errorf("repeated west/north from origin = %v, want (0,0)", c)
	}
}

func TestDistance(t *testing.T) {
	a := Coord{Col: 3, Row: 7}
	b := Coord{Col: 10, Row: 2}

	if got := Distance(a, a); got != 0 {
		t.Errorf("Distance(a, a) = %d, want 0", got)
	}
	if got := Distance(a, b); got != 12 {
		t.Errorf("Distance(a, b) = %d, want 12", got)
	}
	if Distance(a, b) != Distance(b, a) {
		t.Errorf("Distance is not symmetric: %d != %d", Distance(a, b), Distance(b, a))
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{North, "north"},
		{South, "south"},
		{East, "east"},
		{West, "west"},
		{Direction(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestRect(t *testing.T) {
	r := Rect{Start: Coord{Col: 10, Row: 5}, Cols: 4, Rows: 2}

	if !r.Contains(Coord{Col: 10, Row: 5}) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(Coord{Col: 14, Row: 5}) {
		t.Error("column past the right edge should be outside")
	}
	if r.Contains(Coord{Col: 11, Row: 7}) {
		t.Error("row past the bottom edge should be outside")
	}

	adjacent := Rect{Start: Coord{Col: 14, Row: 5}, Cols: 4, Rows: 2}
	overlapping := Rect{Start: Coord{Col: 13, Row: 6}, Cols: 4, Rows: 2}
	if r.Intersects(adjacent) {
		t.Error("side-by-side rects should not intersect")
	}
	if !r.Intersects(overlapping) {
		t.Error("overlapping rects should intersect")
	}
}

// Package grid provides cell coordinates and compass directions for the
// tile world and the screen layout.
package grid

import "fmt"

// Coord is a cell position. Both axes are kept non-negative.
type Coord struct {
	Col int
	Row int
}

// Add returns the coordinate one cell away in direction d.
// Axes saturate at zero, so stepping past the minimum edge leaves the
// coordinate unchanged on that axis.
func (c Coord) Add(d Direction) Coord {
	switch d {
	case North:
		return Coord{Col: c.Col, Row: saturatingDec(c.Row)}
	case South:
		return Coord{Col: c.Col, Row: c.Row + 1}
	case East:
		return Coord{Col: c.Col + 1, Row: c.Row}
	case West:
		return Coord{Col: saturatingDec(c.Col), Row: c.Row}
	default:
		return c
	}
}

// String formats the coordinate as (col,row).
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Distance returns the Manhattan distance between a and b.
func Distance(a, b Coord) int {
	return abs(a.Col-b.Col) + abs(a.Row-b.Row)
}

func saturatingDec(v int) int {
	if v <= 0 {
		return 0
	}
	return v - 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package grid

// Direction is one of the four compass directions.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

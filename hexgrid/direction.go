package hexgrid

// Direction identifies one of the six neighbor slots of a hex tile.
type Direction uint8

const (
	Right Direction = iota
	UpRight
	UpLeft
	Left
	DownLeft
	DownRight
)

// NumDirections is the fixed neighbor fan-out of the hex grid.
const NumDirections = 6

// Directions lists all directions in slot order, for iteration.
var Directions = [NumDirections]Direction{Right, UpRight, UpLeft, Left, DownLeft, DownRight}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case UpRight:
		return "up-right"
	case UpLeft:
		return "up-left"
	case Left:
		return "left"
	case DownLeft:
		return "down-left"
	case DownRight:
		return "down-right"
	}
	return "invalid"
}

// Opposite returns the direction pointing back at the origin tile.
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case UpRight:
		return DownLeft
	case UpLeft:
		return DownRight
	case Left:
		return Right
	case DownLeft:
		return UpRight
	default:
		return UpLeft
	}
}

// Priority returns the fixed tie-breaking id of the direction; lower wins.
// Downward directions take precedence so growth settles before it climbs.
func (d Direction) Priority() int {
	switch d {
	case DownRight:
		return 0
	case DownLeft:
		return 1
	case Right:
		return 2
	case Left:
		return 3
	case UpRight:
		return 4
	default:
		return 5
	}
}

// IsUp reports whether the direction points at the row above.
func (d Direction) IsUp() bool {
	return d == UpRight || d == UpLeft
}

// IsDown reports whether the direction points at the row below.
func (d Direction) IsDown() bool {
	return d == DownRight || d == DownLeft
}

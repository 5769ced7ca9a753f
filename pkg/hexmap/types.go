package hexmap

import "fmt"

// Hex is a cell on the staggered hex grid. X is the column, Y the row.
type Hex struct {
	X int
	Y int
}

// NoHex is returned by lookups that did not land on the map.
var NoHex = Hex{X: -1, Y: -1}

func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d)", h.X, h.Y)
}

func (h Hex) Add(other Hex) Hex {
	return Hex{
		X: h.X + other.X,
		Y: h.Y + other.Y,
	}
}

// Point is a position in screen space.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(other Point) Point {
	return Point{
		X: p.X + other.X,
		Y: p.Y + other.Y,
	}
}

type Size struct {
	Width  int
	Height int
}

// Offset is an integer pixel shift, used for per-instance shifts and
// prototype anchors.
type Offset struct {
	X int
	Y int
}

type Direction byte

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", byte(d))
}

func ParseDirection(value string) (Direction, error) {
	for _, dir := range []Direction{Up, Down, Left, Right} {
		if dir.String() == value {
			return dir, nil
		}
	}
	return Up, fmt.Errorf("unknown direction %q", value)
}

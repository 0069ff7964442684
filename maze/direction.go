package maze

// Direction identifies one of the four cardinal moves on the grid.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

const dirCount = 4

// Directions lists all four directions in a fixed order for iteration.
var Directions = [dirCount]Direction{Up, Down, Left, Right}

// Opposite returns the direction that points back the way d came.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the unit coordinate offset for one step in direction d.
// The y axis grows downward, so Up is (0, -1).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// CellPosition is an (x, y) cell coordinate inside a maze grid.
type CellPosition struct {
	X int
	Y int
}

// Step returns the coordinate one cell away from p in direction d.
func (p CellPosition) Step(d Direction) CellPosition {
	dx, dy := d.Delta()
	return CellPosition{X: p.X + dx, Y: p.Y + dy}
}

func inBounds(x, y, width, height int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}

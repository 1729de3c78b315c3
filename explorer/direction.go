package explorer

import "fmt"

// Step granularities in the doubled coordinate system. A wall step lands
// on the wall segment between two cells, a cell step lands on the
// neighboring cell.
const (
	WallStep = 1
	CellStep = 2
)

// Direction is one of the four compass directions, cyclically ordered so
// that Right is the next value and Left the previous one.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{"North", "East", "South", "West"}

// Left returns the direction 90 degrees counter-clockwise of d.
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// Right returns the direction 90 degrees clockwise of d.
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Behind returns the direction opposite to d.
func (d Direction) Behind() Direction {
	return (d + 2) % 4
}

// Offset converts d into a coordinate delta of the given step size.
// Positive y grows southward, matching the row-major world map layout.
func (d Direction) Offset(step int) (dx, dy int) {
	switch d {
	case North:
		return 0, -step
	case South:
		return 0, step
	case East:
		return step, 0
	default:
		return -step, 0
	}
}

// String returns the direction's compass name.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

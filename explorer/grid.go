package explorer

import (
	"errors"
	"fmt"
)

// Grid-related errors. Both indicate programming faults rather than
// recoverable conditions: an out-of-bounds index means broken geometry,
// a conflicting record means the oracle and the map have diverged.
var (
	ErrOutOfBounds        = errors.New("grid index out of bounds")
	ErrInconsistentRecord = errors.New("conflicting record for a known slot")
	ErrInvalidStart       = errors.New("start pose is not a traversable cell")
	ErrInvalidSize        = errors.New("invalid maze size")
)

const maxMazeDimenssion = 20

// Slot is the state of one position in the doubled-coordinate grid.
// Unknown is the only discoverable state: a slot leaves it at most once
// and never returns.
type Slot uint8

const (
	SlotUnknown Slot = iota
	SlotIntersection
	SlotWall
	SlotNoWall
	SlotCell
	SlotPit
	SlotGoal
)

// KnowledgeGrid is the agent's partial map of a size x size cell maze,
// stored as a (2*size+1) x (2*size+1) doubled-coordinate grid. Even/even
// slots are wall intersections, mixed-parity slots are wall segments and
// odd/odd slots are traversable cells. Knowledge only grows: slots move
// from Unknown to a concrete value and stay there.
type KnowledgeGrid struct {
	size   int // cells per side
	extent int // doubled-coordinate side length, 2*size+1
	slots  [][]Slot
}

// NewKnowledgeGrid creates the initial map for a size x size maze with
// the enclosing boundary ring already known and the start cell marked.
func NewKnowledgeGrid(size int, start Pose) (*KnowledgeGrid, error) {
	if size <= 0 || size > maxMazeDimenssion {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	extent := 2*size + 1
	slots := make([][]Slot, extent)
	for y := range slots {
		slots[y] = make([]Slot, extent)
		for x := range slots[y] {
			switch {
			case x%2 == 0 && y%2 == 0:
				slots[y][x] = SlotIntersection
			case x == 0 || y == 0 || x == extent-1 || y == extent-1:
				// The maze is enclosed, so the boundary ring is known
				// before any scanning happens.
				slots[y][x] = SlotWall
			default:
				slots[y][x] = SlotUnknown
			}
		}
	}

	g := &KnowledgeGrid{size: size, extent: extent, slots: slots}
	if !g.isCellSlot(start.X, start.Y) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrInvalidStart, start.X, start.Y)
	}
	g.slots[start.Y][start.X] = SlotCell
	return g, nil
}

// Size returns the number of cells per maze side.
func (g *KnowledgeGrid) Size() int {
	return g.size
}

// Extent returns the doubled-coordinate side length.
func (g *KnowledgeGrid) Extent() int {
	return g.extent
}

// At returns the slot at doubled coordinates (x, y).
func (g *KnowledgeGrid) At(x, y int) (Slot, error) {
	if !g.inBound(x, y) {
		return SlotUnknown, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return g.slots[y][x], nil
}

// WallBetween reads the wall segment between the cell at (x, y) and its
// neighbor in the given direction.
func (g *KnowledgeGrid) WallBetween(x, y int, dir Direction) (Slot, error) {
	dx, dy := dir.Offset(WallStep)
	return g.At(x+dx, y+dy)
}

// CellAt reads the cell slot one cell step from (x, y) in the given
// direction.
func (g *KnowledgeGrid) CellAt(x, y int, dir Direction) (Slot, error) {
	dx, dy := dir.Offset(CellStep)
	return g.At(x+dx, y+dy)
}

// RecordWall writes the scanned wall segment next to (x, y). Repeating
// an identical record is a no-op; contradicting an earlier one fails
// with ErrInconsistentRecord.
func (g *KnowledgeGrid) RecordWall(x, y int, dir Direction, present bool) error {
	value := SlotNoWall
	if present {
		value = SlotWall
	}
	dx, dy := dir.Offset(WallStep)
	return g.record(x+dx, y+dy, value)
}

// RecordCell writes the scanned neighbor cell next to (x, y). The goal
// cell is never recorded through this path: finding the goal ends the
// run before any record is made.
func (g *KnowledgeGrid) RecordCell(x, y int, dir Direction, pit bool) error {
	value := SlotCell
	if pit {
		value = SlotPit
	}
	dx, dy := dir.Offset(CellStep)
	return g.record(x+dx, y+dy, value)
}

func (g *KnowledgeGrid) record(x, y int, value Slot) error {
	current, err := g.At(x, y)
	if err != nil {
		return err
	}
	if current == value {
		return nil
	}
	if current != SlotUnknown {
		return fmt.Errorf("%w: (%d,%d) is %d, tried %d", ErrInconsistentRecord, x, y, current, value)
	}
	g.slots[y][x] = value
	return nil
}

// IsPathOpen reports whether the agent may commit to moving from (x, y)
// in the given direction: the wall must be known absent and the cell
// behind it known and not a pit. An unknown wall is treated as closed so
// the agent never moves before scanning.
func (g *KnowledgeGrid) IsPathOpen(x, y int, dir Direction) bool {
	wall, err := g.WallBetween(x, y, dir)
	if err != nil || wall != SlotNoWall {
		return false
	}
	cell, err := g.CellAt(x, y, dir)
	if err != nil {
		return false
	}
	return cell != SlotPit
}

// DirectionRecorded reports whether there is nothing left to learn about
// the given direction from (x, y): either the wall is known present, or
// it is known absent and the cell behind it is known too.
func (g *KnowledgeGrid) DirectionRecorded(x, y int, dir Direction) bool {
	wall, err := g.WallBetween(x, y, dir)
	if err != nil || wall == SlotUnknown {
		return false
	}
	if wall == SlotWall {
		return true
	}
	cell, err := g.CellAt(x, y, dir)
	if err != nil {
		return false
	}
	return cell != SlotUnknown
}

func (g *KnowledgeGrid) inBound(x, y int) bool {
	return x >= 0 && x < g.extent && y >= 0 && y < g.extent
}

func (g *KnowledgeGrid) isCellSlot(x, y int) bool {
	return g.inBound(x, y) && x%2 == 1 && y%2 == 1
}

/*
Package worldmaze holds ground-truth mazes for exploration runs.

A WorldMaze lives in the same doubled coordinate system as the agent's
knowledge grid and answers the explorer's percept queries. Mazes come
from the textual notation below, or from the random generator in this
package.

Notation, one token per slot:

	+ wall intersection    - or | wall    . no wall
	o empty cell           x pit          w goal
*/
package worldmaze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/maze-explorer-api/explorer"
)

// Parsing and generation errors.
var (
	ErrNotSquare    = errors.New("world map is not square")
	ErrBadExtent    = errors.New("world map extent must be odd and at least 3")
	ErrBadToken     = errors.New("unexpected token in world map")
	ErrOpenBoundary = errors.New("world map boundary is not fully walled")
	ErrNoGoal       = errors.New("world map has no goal cell")
)

// WorldMaze is the ground truth for one run: a fully known
// doubled-coordinate grid. It is read-only after construction and
// implements the explorer's Oracle.
type WorldMaze struct {
	size   int // cells per side
	extent int
	slots  [][]explorer.Slot
}

// Parse builds a WorldMaze from the textual notation. The map must be
// square, enclosed and contain a goal.
func Parse(text string) (*WorldMaze, error) {
	var slots [][]explorer.Slot
	for _, line := range strings.Split(strings.Trim(text, "\n"), "\n") {
		var row []explorer.Slot
		for _, ch := range line {
			if ch == ' ' || ch == '\t' {
				continue
			}
			slot, err := slotForToken(ch)
			if err != nil {
				return nil, err
			}
			row = append(row, slot)
		}
		if len(row) > 0 {
			slots = append(slots, row)
		}
	}

	extent := len(slots)
	if extent < 3 || extent%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadExtent, extent)
	}
	for _, row := range slots {
		if len(row) != extent {
			return nil, ErrNotSquare
		}
	}

	m := &WorldMaze{size: extent / 2, extent: extent, slots: slots}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func slotForToken(ch rune) (explorer.Slot, error) {
	switch ch {
	case '+':
		return explorer.SlotIntersection, nil
	case '-', '|':
		return explorer.SlotWall, nil
	case '.':
		return explorer.SlotNoWall, nil
	case 'o':
		return explorer.SlotCell, nil
	case 'x':
		return explorer.SlotPit, nil
	case 'w':
		return explorer.SlotGoal, nil
	default:
		return explorer.SlotUnknown, fmt.Errorf("%w: %q", ErrBadToken, ch)
	}
}

func (m *WorldMaze) validate() error {
	goals := 0
	for y := 0; y < m.extent; y++ {
		for x := 0; x < m.extent; x++ {
			onBoundary := x == 0 || y == 0 || x == m.extent-1 || y == m.extent-1
			if onBoundary && x%2 != y%2 && m.slots[y][x] != explorer.SlotWall {
				return fmt.Errorf("%w: (%d,%d)", ErrOpenBoundary, x, y)
			}
			if m.slots[y][x] == explorer.SlotGoal {
				goals++
			}
		}
	}
	if goals == 0 {
		return ErrNoGoal
	}
	return nil
}

// Size returns the number of cells per maze side.
func (m *WorldMaze) Size() int {
	return m.size
}

// StartPose returns the conventional starting pose: the bottom-left
// cell, facing east.
func (m *WorldMaze) StartPose() explorer.Pose {
	return explorer.Pose{X: 1, Y: 2*m.size - 1, Facing: explorer.East}
}

// At returns the slot at doubled coordinates (x, y), or SlotWall outside
// the grid so that everything beyond the boundary reads as solid.
func (m *WorldMaze) At(x, y int) explorer.Slot {
	if x < 0 || x >= m.extent || y < 0 || y >= m.extent {
		return explorer.SlotWall
	}
	return m.slots[y][x]
}

// WallAhead reports a wall one wall step ahead of the pose.
func (m *WorldMaze) WallAhead(p explorer.Pose) bool {
	x, y := p.Ahead(explorer.WallStep)
	return m.At(x, y) == explorer.SlotWall
}

// PitAhead reports a pit one cell step ahead of the pose.
func (m *WorldMaze) PitAhead(p explorer.Pose) bool {
	x, y := p.Ahead(explorer.CellStep)
	return m.At(x, y) == explorer.SlotPit
}

// GoalAhead reports the goal one cell step ahead of the pose.
func (m *WorldMaze) GoalAhead(p explorer.Pose) bool {
	x, y := p.Ahead(explorer.CellStep)
	return m.At(x, y) == explorer.SlotGoal
}

// String renders the ground truth in the map notation.
func (m *WorldMaze) String() string {
	var b strings.Builder
	for y := 0; y < m.extent; y++ {
		for x := 0; x < m.extent; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(tokenForSlot(m.slots[y][x], y))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func tokenForSlot(s explorer.Slot, y int) string {
	switch s {
	case explorer.SlotIntersection:
		return "+"
	case explorer.SlotWall:
		if y%2 == 0 {
			return "-"
		}
		return "|"
	case explorer.SlotNoWall:
		return "."
	case explorer.SlotCell:
		return "o"
	case explorer.SlotPit:
		return "x"
	case explorer.SlotGoal:
		return "w"
	default:
		return "?"
	}
}

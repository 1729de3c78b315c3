package explorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// startOf returns the conventional bottom-left start cell for a size
// cells per side maze.
func startOf(size int) Pose {
	return Pose{X: 1, Y: 2*size - 1, Facing: East}
}

func TestNewKnowledgeGrid(t *testing.T) {
	t.Run("rejects bad sizes", func(t *testing.T) {
		_, err := NewKnowledgeGrid(0, Pose{})
		assert.ErrorIs(t, err, ErrInvalidSize)

		_, err = NewKnowledgeGrid(21, Pose{X: 1, Y: 1})
		assert.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("rejects non-cell start slots", func(t *testing.T) {
		for _, start := range []Pose{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 1}, {X: 9, Y: 1}} {
			_, err := NewKnowledgeGrid(3, start)
			assert.ErrorIs(t, err, ErrInvalidStart, start.String())
		}
	})

	t.Run("initial layout", func(t *testing.T) {
		g, err := NewKnowledgeGrid(3, startOf(3))
		assert.NoError(t, err)
		assert.Equal(t, 7, g.Extent())

		for y := 0; y < g.Extent(); y++ {
			for x := 0; x < g.Extent(); x++ {
				slot, err := g.At(x, y)
				assert.NoError(t, err)

				onBoundary := x == 0 || y == 0 || x == g.Extent()-1 || y == g.Extent()-1
				switch {
				case x%2 == 0 && y%2 == 0:
					assert.Equal(t, SlotIntersection, slot)
				case x == 1 && y == 5:
					assert.Equal(t, SlotCell, slot)
				case onBoundary:
					assert.Equal(t, SlotWall, slot)
				default:
					assert.Equal(t, SlotUnknown, slot)
				}
			}
		}
	})
}

func TestGridBounds(t *testing.T) {
	g, err := NewKnowledgeGrid(2, startOf(2))
	assert.NoError(t, err)

	_, err = g.At(-1, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = g.At(0, g.Extent())
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// Reading a cell past the boundary through grid operations fails
	// the same way.
	_, err = g.CellAt(1, 1, North)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestRecordMonotonicity(t *testing.T) {
	g, err := NewKnowledgeGrid(3, startOf(3))
	assert.NoError(t, err)
	start := startOf(3)

	t.Run("records discover unknown slots", func(t *testing.T) {
		assert.NoError(t, g.RecordWall(start.X, start.Y, North, false))
		wall, err := g.WallBetween(start.X, start.Y, North)
		assert.NoError(t, err)
		assert.Equal(t, SlotNoWall, wall)

		assert.NoError(t, g.RecordCell(start.X, start.Y, North, false))
		cell, err := g.CellAt(start.X, start.Y, North)
		assert.NoError(t, err)
		assert.Equal(t, SlotCell, cell)
	})

	t.Run("identical re-records are no-ops", func(t *testing.T) {
		assert.NoError(t, g.RecordWall(start.X, start.Y, North, false))
		assert.NoError(t, g.RecordCell(start.X, start.Y, North, false))
	})

	t.Run("conflicting re-records are fatal", func(t *testing.T) {
		assert.ErrorIs(t, g.RecordWall(start.X, start.Y, North, true), ErrInconsistentRecord)
		assert.ErrorIs(t, g.RecordCell(start.X, start.Y, North, true), ErrInconsistentRecord)

		// The slots keep their first value.
		wall, _ := g.WallBetween(start.X, start.Y, North)
		assert.Equal(t, SlotNoWall, wall)
		cell, _ := g.CellAt(start.X, start.Y, North)
		assert.Equal(t, SlotCell, cell)
	})

	t.Run("known boundary cannot be contradicted", func(t *testing.T) {
		assert.ErrorIs(t, g.RecordWall(start.X, start.Y, West, false), ErrInconsistentRecord)
		assert.NoError(t, g.RecordWall(start.X, start.Y, West, true))
	})
}

func TestIsPathOpen(t *testing.T) {
	g, err := NewKnowledgeGrid(3, startOf(3))
	assert.NoError(t, err)
	start := startOf(3)

	t.Run("unknown wall is treated as closed", func(t *testing.T) {
		assert.False(t, g.IsPathOpen(start.X, start.Y, North))
	})

	t.Run("open wall with unknown cell is open", func(t *testing.T) {
		assert.NoError(t, g.RecordWall(start.X, start.Y, North, false))
		assert.True(t, g.IsPathOpen(start.X, start.Y, North))
	})

	t.Run("pit closes the path", func(t *testing.T) {
		assert.NoError(t, g.RecordCell(start.X, start.Y, North, true))
		assert.False(t, g.IsPathOpen(start.X, start.Y, North))
	})

	t.Run("boundary wall closes the path", func(t *testing.T) {
		assert.False(t, g.IsPathOpen(start.X, start.Y, West))
	})
}

func TestDirectionRecorded(t *testing.T) {
	g, err := NewKnowledgeGrid(3, startOf(3))
	assert.NoError(t, err)
	start := startOf(3)

	t.Run("unscanned direction is not recorded", func(t *testing.T) {
		assert.False(t, g.DirectionRecorded(start.X, start.Y, North))
	})

	t.Run("a known wall settles the direction", func(t *testing.T) {
		assert.True(t, g.DirectionRecorded(start.X, start.Y, West))
	})

	t.Run("an open wall needs the cell too", func(t *testing.T) {
		assert.NoError(t, g.RecordWall(start.X, start.Y, East, false))
		assert.False(t, g.DirectionRecorded(start.X, start.Y, East))

		assert.NoError(t, g.RecordCell(start.X, start.Y, East, false))
		assert.True(t, g.DirectionRecorded(start.X, start.Y, East))
	})
}

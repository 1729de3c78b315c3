package explorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionRotation(t *testing.T) {
	allDirections := []Direction{North, East, South, West}

	t.Run("left and right invert each other", func(t *testing.T) {
		for _, d := range allDirections {
			assert.Equal(t, d, d.Left().Right())
			assert.Equal(t, d, d.Right().Left())
		}
	})

	t.Run("four rotations are the identity", func(t *testing.T) {
		for _, d := range allDirections {
			assert.Equal(t, d, d.Left().Left().Left().Left())
			assert.Equal(t, d, d.Right().Right().Right().Right())
		}
	})

	t.Run("behind is two rotations either way", func(t *testing.T) {
		for _, d := range allDirections {
			assert.Equal(t, d.Behind(), d.Left().Left())
			assert.Equal(t, d.Behind(), d.Right().Right())
		}
	})

	t.Run("cycle order", func(t *testing.T) {
		assert.Equal(t, East, North.Right())
		assert.Equal(t, South, East.Right())
		assert.Equal(t, West, South.Right())
		assert.Equal(t, North, West.Right())
	})
}

func TestDirectionOffset(t *testing.T) {
	t.Run("exact wall-step offsets", func(t *testing.T) {
		cases := []struct {
			dir    Direction
			dx, dy int
		}{
			{North, 0, -1},
			{South, 0, 1},
			{East, 1, 0},
			{West, -1, 0},
		}
		for _, c := range cases {
			dx, dy := c.dir.Offset(WallStep)
			assert.Equal(t, c.dx, dx, c.dir.String())
			assert.Equal(t, c.dy, dy, c.dir.String())
		}
	})

	t.Run("cell step doubles the wall step", func(t *testing.T) {
		for _, d := range []Direction{North, East, South, West} {
			wx, wy := d.Offset(WallStep)
			cx, cy := d.Offset(CellStep)
			assert.Equal(t, 2*wx, cx)
			assert.Equal(t, 2*wy, cy)
		}
	})

	t.Run("opposite directions cancel", func(t *testing.T) {
		for _, d := range []Direction{North, East, South, West} {
			dx, dy := d.Offset(CellStep)
			bx, by := d.Behind().Offset(CellStep)
			assert.Zero(t, dx+bx)
			assert.Zero(t, dy+by)
		}
	})

	t.Run("rotation composes back to the same offset", func(t *testing.T) {
		for _, d := range []Direction{North, East, South, West} {
			dx, dy := d.Offset(WallStep)
			rx, ry := d.Left().Right().Offset(WallStep)
			assert.Equal(t, dx, rx)
			assert.Equal(t, dy, ry)
		}
	})
}

package explorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionOrders(t *testing.T) {
	t.Run("scanning favors forward, left, behind, right", func(t *testing.T) {
		assert.Equal(t, [4]Direction{East, North, West, South}, scanningOrder(East))
		assert.Equal(t, [4]Direction{North, West, South, East}, scanningOrder(North))
	})

	t.Run("pathfinding is rooted at the pre-scan forward", func(t *testing.T) {
		// A full scan leaves the agent rotated 90 degrees clockwise, so
		// the logical forward is the left of the current facing.
		assert.Equal(t, [4]Direction{North, West, East, South}, pathfindingOrder(East))
		assert.Equal(t, [4]Direction{West, South, North, East}, pathfindingOrder(North))
	})
}

// scannedGrid builds a 2x2 knowledge grid with the start cell fully
// scanned: both interior walls open and the two neighbors recorded as
// cell or pit per the flags.
func scannedGrid(t *testing.T, northPit, eastPit bool) (*KnowledgeGrid, Pose) {
	t.Helper()
	start := startOf(2)
	g, err := NewKnowledgeGrid(2, start)
	assert.NoError(t, err)

	assert.NoError(t, g.RecordWall(start.X, start.Y, North, false))
	assert.NoError(t, g.RecordCell(start.X, start.Y, North, northPit))
	assert.NoError(t, g.RecordWall(start.X, start.Y, East, false))
	assert.NoError(t, g.RecordCell(start.X, start.Y, East, eastPit))
	return g, start
}

func TestUnexploredScore(t *testing.T) {
	g, start := scannedGrid(t, false, false)

	// The north neighbor still has an unknown wall toward its east
	// neighbor and an unknown cell behind it; everything else around it
	// is settled.
	assert.Equal(t, 1, unexploredScore(g, start.X, start.Y-2))

	// The start cell itself has no unknown neighbors left.
	assert.Equal(t, 0, unexploredScore(g, start.X, start.Y))
}

func TestSelectBestMove(t *testing.T) {
	// The scan phase leaves the agent facing East after starting the
	// scan facing East on a fresh cell: forward was scanned first, the
	// rest in turn, ending on the scanning order's last entry.
	postScanFacing := East

	t.Run("ties break by pathfinding order", func(t *testing.T) {
		g, start := scannedGrid(t, false, false)
		pose := Pose{X: start.X, Y: start.Y, Facing: postScanFacing}

		// North and East score equally; North comes first in
		// pathfinding order for an East-facing agent.
		assert.Equal(t, 1, unexploredScore(g, start.X, start.Y-2))
		assert.Equal(t, 1, unexploredScore(g, start.X+2, start.Y))

		dir, err := selectBestMove(g, pose)
		assert.NoError(t, err)
		assert.Equal(t, North, dir)
	})

	t.Run("never selects a closed path", func(t *testing.T) {
		g, start := scannedGrid(t, false, false)
		pose := Pose{X: start.X, Y: start.Y, Facing: postScanFacing}

		dir, err := selectBestMove(g, pose)
		assert.NoError(t, err)
		assert.True(t, g.IsPathOpen(pose.X, pose.Y, dir))
	})

	t.Run("a pit is never a move target", func(t *testing.T) {
		// The north neighbor is the unexplored-maximizing one, but it
		// is a pit; the agent must take east instead.
		g, start := scannedGrid(t, true, false)
		pose := Pose{X: start.X, Y: start.Y, Facing: postScanFacing}

		dir, err := selectBestMove(g, pose)
		assert.NoError(t, err)
		assert.Equal(t, East, dir)
	})

	t.Run("all directions closed is stuck", func(t *testing.T) {
		g, start := scannedGrid(t, true, true)
		pose := Pose{X: start.X, Y: start.Y, Facing: postScanFacing}

		_, err := selectBestMove(g, pose)
		assert.ErrorIs(t, err, ErrStuck)
	})
}

func TestTurnToFace(t *testing.T) {
	cases := []struct {
		name   string
		from   Direction
		to     Direction
		turns  int
		facing Direction
	}{
		{"already facing", East, East, 0, East},
		{"one left", East, North, 1, North},
		{"one right", East, South, 1, South},
		{"two lefts for behind", East, West, 2, West},
		{"wraps around the cycle", North, West, 1, West},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := &Explorer{pose: Pose{X: 1, Y: 1, Facing: c.from}}
			e.turnToFace(c.to)
			assert.Equal(t, c.facing, e.pose.Facing)
			assert.Equal(t, c.turns, e.stats.Turns)
		})
	}
}

package worldmaze

import (
	"testing"

	"github.com/beka-birhanu/maze-explorer-api/explorer"
	"github.com/stretchr/testify/assert"
)

func TestGenerateValidation(t *testing.T) {
	t.Run("rejects out-of-range sizes", func(t *testing.T) {
		_, err := Generate(GenerateConfig{Size: 1})
		assert.ErrorIs(t, err, ErrInvalidDimension)

		_, err = Generate(GenerateConfig{Size: 21})
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("rejects pit counts that crowd out start and goal", func(t *testing.T) {
		_, err := Generate(GenerateConfig{Size: 2, Pits: -1})
		assert.ErrorIs(t, err, ErrTooManyPits)

		_, err = Generate(GenerateConfig{Size: 2, Pits: 3})
		assert.ErrorIs(t, err, ErrTooManyPits)
	})
}

func TestGenerateDeterminism(t *testing.T) {
	cfg := GenerateConfig{Size: 5, Pits: 3, Seed: 42}

	a, err := Generate(cfg)
	assert.NoError(t, err)
	b, err := Generate(cfg)
	assert.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
}

func TestGenerateStructure(t *testing.T) {
	m, err := Generate(GenerateConfig{Size: 6, Pits: 4, Seed: 7})
	assert.NoError(t, err)

	t.Run("parses back as a valid world", func(t *testing.T) {
		again, err := Parse(m.String())
		assert.NoError(t, err)
		assert.Equal(t, 6, again.Size())
	})

	t.Run("slot kinds respect coordinate parity", func(t *testing.T) {
		goals, pits := 0, 0
		for y := 0; y < m.extent; y++ {
			for x := 0; x < m.extent; x++ {
				slot := m.At(x, y)
				switch {
				case x%2 == 0 && y%2 == 0:
					assert.Equal(t, explorer.SlotIntersection, slot)
				case x%2 == 1 && y%2 == 1:
					assert.Contains(t, []explorer.Slot{explorer.SlotCell, explorer.SlotPit, explorer.SlotGoal}, slot)
				default:
					assert.Contains(t, []explorer.Slot{explorer.SlotWall, explorer.SlotNoWall}, slot)
				}
				switch slot {
				case explorer.SlotGoal:
					goals++
				case explorer.SlotPit:
					pits++
				}
			}
		}
		assert.Equal(t, 1, goals)
		assert.Equal(t, 4, pits)
	})

	t.Run("start cell stays free", func(t *testing.T) {
		start := m.StartPose()
		assert.Equal(t, explorer.SlotCell, m.At(start.X, start.Y))
	})
}

// TestGenerateConnectivity floods the maze from the start over open
// walls. Without pits every cell must be reachable.
func TestGenerateConnectivity(t *testing.T) {
	m, err := Generate(GenerateConfig{Size: 8, Pits: 0, Seed: 3})
	assert.NoError(t, err)

	start := m.StartPose()
	type point struct{ x, y int }
	seen := map[point]bool{{start.X, start.Y}: true}
	queue := []point{{start.X, start.Y}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for d := explorer.North; d <= explorer.West; d++ {
			wx, wy := d.Offset(explorer.WallStep)
			if m.At(cur.x+wx, cur.y+wy) == explorer.SlotWall {
				continue
			}
			cx, cy := d.Offset(explorer.CellStep)
			next := point{cur.x + cx, cur.y + cy}
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}

	assert.Len(t, seen, 8*8)
}

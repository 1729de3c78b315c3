package worldmaze

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/beka-birhanu/maze-explorer-api/explorer"
)

const maxMazeDimenssion = 20

var (
	ErrInvalidDimension = errors.New("invalid maze dimension")
	ErrTooManyPits      = errors.New("too many pits for maze size")
)

type cellPos struct {
	row int
	col int
}

type carve struct {
	from cellPos
	to   cellPos
}

// GenerateConfig controls random world generation. The same seed always
// yields the same world, so runs stay reproducible.
type GenerateConfig struct {
	Size int   // cells per side, 2 to 20
	Pits int   // pit cells to place, may be zero
	Seed int64 // rng seed
}

// Generate builds a random world: a perfect maze carved with Wilson's
// algorithm, a goal in a random cell away from the start, and the
// requested number of pits scattered over the remaining cells. Pits may
// wall off the goal; such worlds end runs in the stuck state, which is a
// legal outcome.
func Generate(cfg GenerateConfig) (*WorldMaze, error) {
	if cfg.Size < 2 || cfg.Size > maxMazeDimenssion {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, cfg.Size)
	}
	// One cell is the start, one the goal.
	if cfg.Pits < 0 || cfg.Pits > cfg.Size*cfg.Size-2 {
		return nil, fmt.Errorf("%w: %d", ErrTooManyPits, cfg.Pits)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	extent := 2*cfg.Size + 1
	slots := make([][]explorer.Slot, extent)
	for y := range slots {
		slots[y] = make([]explorer.Slot, extent)
		for x := range slots[y] {
			switch {
			case x%2 == 0 && y%2 == 0:
				slots[y][x] = explorer.SlotIntersection
			case x%2 == 1 && y%2 == 1:
				slots[y][x] = explorer.SlotCell
			default:
				slots[y][x] = explorer.SlotWall
			}
		}
	}

	m := &WorldMaze{size: cfg.Size, extent: extent, slots: slots}
	m.carveWilson(rng)
	m.placeFeatures(rng, cfg.Pits)
	return m, nil
}

// carveWilson opens walls with loop-erased random walks until every
// cell joins the maze.
func (m *WorldMaze) carveWilson(rng *rand.Rand) {
	visited := make(map[cellPos]struct{})
	visited[m.randomCell(rng)] = struct{}{}

	for len(visited) < m.size*m.size {
		for cell, move := range m.randomWalk(rng, visited) {
			m.openWall(move)
			visited[cell] = struct{}{}
		}
	}
}

// randomWalk wanders from an unvisited cell until it hits the visited
// region. Re-visiting a cell overwrites its exit, which erases loops.
func (m *WorldMaze) randomWalk(rng *rand.Rand, visited map[cellPos]struct{}) map[cellPos]carve {
	visits := make(map[cellPos]carve)
	cell := m.randomUnvisitedCell(rng, visited)

	for {
		neighbors := m.neighbors(cell)
		next := neighbors[rng.Intn(len(neighbors))]
		visits[cell] = next
		if _, included := visited[next.to]; included {
			break
		}
		cell = next.to
	}
	return visits
}

func (m *WorldMaze) randomCell(rng *rand.Rand) cellPos {
	return cellPos{row: rng.Intn(m.size), col: rng.Intn(m.size)}
}

func (m *WorldMaze) randomUnvisitedCell(rng *rand.Rand, visited map[cellPos]struct{}) cellPos {
	for {
		pos := m.randomCell(rng)
		if _, included := visited[pos]; !included {
			return pos
		}
	}
}

func (m *WorldMaze) neighbors(pos cellPos) []carve {
	var result []carve
	for _, delta := range [...]cellPos{{row: -1}, {row: 1}, {col: 1}, {col: -1}} {
		neighbor := cellPos{row: pos.row + delta.row, col: pos.col + delta.col}
		if neighbor.row >= 0 && neighbor.row < m.size && neighbor.col >= 0 && neighbor.col < m.size {
			result = append(result, carve{from: pos, to: neighbor})
		}
	}
	return result
}

// openWall clears the wall segment between two adjacent cells.
func (m *WorldMaze) openWall(c carve) {
	x := (c.from.col + c.to.col) + 1
	y := (c.from.row + c.to.row) + 1
	m.slots[y][x] = explorer.SlotNoWall
}

// placeFeatures drops the goal and pits on random cells, never on the
// start cell and never stacking.
func (m *WorldMaze) placeFeatures(rng *rand.Rand, pits int) {
	start := m.StartPose()
	free := make([]cellPos, 0, m.size*m.size-1)
	for row := 0; row < m.size; row++ {
		for col := 0; col < m.size; col++ {
			if 2*col+1 == start.X && 2*row+1 == start.Y {
				continue
			}
			free = append(free, cellPos{row: row, col: col})
		}
	}
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	goal := free[0]
	m.slots[2*goal.row+1][2*goal.col+1] = explorer.SlotGoal
	for _, pit := range free[1 : 1+pits] {
		m.slots[2*pit.row+1][2*pit.col+1] = explorer.SlotPit
	}
}

package explorer

import "errors"

// ErrStuck is returned when no direction out of the current cell is
// open. Surfacing it beats looping forever; no backtracking is
// attempted.
var ErrStuck = errors.New("no open direction from current cell")

// scanningOrder is the rotation plan while inspecting the current cell:
// forward first, then left, then behind, then right. Scanning this way
// always ends with the agent facing 90 degrees clockwise of where it
// started.
func scanningOrder(f Direction) [4]Direction {
	return [4]Direction{f, f.Left(), f.Behind(), f.Right()}
}

// pathfindingOrder ranks candidate moves once scanning is done. Because
// a full scan leaves the agent rotated one step clockwise, the logical
// forward is the left of the current facing; preference runs forward,
// left, right, then back the way it came.
func pathfindingOrder(f Direction) [4]Direction {
	forward := f.Left()
	return [4]Direction{forward, forward.Left(), forward.Right(), forward.Behind()}
}

// unexploredScore counts how many of the cell's four neighbors are still
// worth visiting: the connecting wall is not known present and the
// neighbor cell has not been recorded. Ranges 0 to 4.
func unexploredScore(g *KnowledgeGrid, x, y int) int {
	score := 0
	for dir := North; dir <= West; dir++ {
		wall, err := g.WallBetween(x, y, dir)
		if err != nil || wall == SlotWall {
			continue
		}
		if cell, err := g.CellAt(x, y, dir); err == nil && cell == SlotUnknown {
			score++
		}
	}
	return score
}

// selectBestMove picks the open direction whose destination borders the
// most unexplored cells. Ties go to the direction earliest in
// pathfinding order: the scan tracks a strict best-so-far, so the first
// candidate with the top score wins deterministically.
func selectBestMove(g *KnowledgeGrid, pose Pose) (Direction, error) {
	best := North
	bestScore := -1
	for _, dir := range pathfindingOrder(pose.Facing) {
		if !g.IsPathOpen(pose.X, pose.Y, dir) {
			continue
		}
		dx, dy := dir.Offset(CellStep)
		if score := unexploredScore(g, pose.X+dx, pose.Y+dy); score > bestScore {
			best = dir
			bestScore = score
		}
	}
	if bestScore < 0 {
		return North, ErrStuck
	}
	return best, nil
}

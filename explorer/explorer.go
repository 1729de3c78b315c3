/*
Package explorer implements an autonomous agent that maps an unknown
grid maze from local percepts and walks to the goal cell.

The agent keeps a KnowledgeGrid in doubled coordinates, scans the four
walls around its cell through an Oracle, and repeatedly moves toward the
neighbor bordering the most unexplored cells until the oracle reports
the goal directly ahead.
*/
package explorer

import "errors"

var (
	// ErrNilOracle is returned by New when no oracle is supplied.
	ErrNilOracle = errors.New("oracle is required")

	// ErrExhausted is returned when a scan budget runs out before the
	// goal turns up, which means the goal is unreachable and the agent
	// is pacing explored ground.
	ErrExhausted = errors.New("scan budget exhausted before finding the goal")
)

// Stats counts the work a run performed.
type Stats struct {
	Steps   int // cell moves, including the final move onto the goal
	Turns   int // 90-degree rotations
	Scans   int // completed scan phases
	Queries int // oracle percept queries
}

// Result describes a finished run that reached the goal.
type Result struct {
	Goal Pose // final pose, standing on the goal cell
	Stats
}

// Config assembles an Explorer.
type Config struct {
	Size     int  // cells per maze side
	Start    Pose // starting cell in doubled coordinates, with facing
	Oracle   Oracle
	Renderer Renderer // optional

	// MaxScans caps scan phases as a guard against worlds whose goal
	// is sealed off; zero means no cap.
	MaxScans int
}

// Explorer owns the pose and the knowledge grid and drives the
// scan-then-move loop. It is single-threaded: one Run per instance.
type Explorer struct {
	grid     *KnowledgeGrid
	pose     Pose
	oracle   Oracle
	renderer Renderer
	maxScans int
	stats    Stats
}

// New validates the configuration and builds an explorer with a fresh
// knowledge grid.
func New(cfg Config) (*Explorer, error) {
	if cfg.Oracle == nil {
		return nil, ErrNilOracle
	}
	grid, err := NewKnowledgeGrid(cfg.Size, cfg.Start)
	if err != nil {
		return nil, err
	}
	return &Explorer{
		grid:     grid,
		pose:     cfg.Start,
		oracle:   cfg.Oracle,
		renderer: cfg.Renderer,
		maxScans: cfg.MaxScans,
	}, nil
}

// Pose returns the agent's current pose.
func (e *Explorer) Pose() Pose {
	return e.pose
}

// Grid returns the agent's knowledge grid.
func (e *Explorer) Grid() *KnowledgeGrid {
	return e.grid
}

// Run executes scan-then-move iterations until the goal is found. It
// returns ErrStuck if no direction out of the current cell is open, and
// ErrInconsistentRecord or ErrOutOfBounds only on logic faults.
func (e *Explorer) Run() (*Result, error) {
	e.render()
	for {
		if e.maxScans > 0 && e.stats.Scans >= e.maxScans {
			return nil, ErrExhausted
		}
		found, err := e.scan()
		if err != nil {
			return nil, err
		}
		e.stats.Scans++
		if found {
			e.render()
			return &Result{Goal: e.pose, Stats: e.stats}, nil
		}

		dir, err := selectBestMove(e.grid, e.pose)
		if err != nil {
			return nil, err
		}
		e.turnToFace(dir)
		e.moveForward()
		e.render()
	}
}

// scan records every unknown direction around the current cell in
// scanning order. It reports true when the goal turned up ahead, in
// which case the agent has already advanced onto the goal cell and
// nothing further is recorded.
func (e *Explorer) scan() (bool, error) {
	order := scanningOrder(e.pose.Facing)
	for _, dir := range order {
		if e.grid.DirectionRecorded(e.pose.X, e.pose.Y, dir) {
			continue
		}
		e.turnToFace(dir)

		wall := e.oracle.WallAhead(e.pose)
		e.stats.Queries++
		if err := e.grid.RecordWall(e.pose.X, e.pose.Y, dir, wall); err != nil {
			return false, err
		}
		if wall {
			e.render()
			continue
		}

		e.stats.Queries++
		if e.oracle.GoalAhead(e.pose) {
			e.moveForward()
			return true, nil
		}

		pit := e.oracle.PitAhead(e.pose)
		e.stats.Queries++
		if err := e.grid.RecordCell(e.pose.X, e.pose.Y, dir, pit); err != nil {
			return false, err
		}
		e.render()
	}
	return false, nil
}

// turnToFace rotates the pose to the target direction through the
// minimal number of 90-degree turns. A 180-degree difference resolves as
// two left turns.
func (e *Explorer) turnToFace(target Direction) {
	switch (e.pose.Facing - target + 4) % 4 {
	case 1:
		e.turnLeft()
	case 2:
		e.turnLeft()
		e.turnLeft()
	case 3:
		e.turnRight()
	}
}

func (e *Explorer) turnLeft() {
	e.pose.Facing = e.pose.Facing.Left()
	e.stats.Turns++
}

func (e *Explorer) turnRight() {
	e.pose.Facing = e.pose.Facing.Right()
	e.stats.Turns++
}

// moveForward advances one cell in the facing direction. Callers have
// already validated the path is open, or are stepping onto the goal.
func (e *Explorer) moveForward() {
	dx, dy := e.pose.Facing.Offset(CellStep)
	e.pose.X += dx
	e.pose.Y += dy
	e.stats.Steps++
}

func (e *Explorer) render() {
	if e.renderer != nil {
		e.renderer.Render(e.grid, e.pose)
	}
}

package explorer

// Oracle answers percept queries against ground truth for the slot one
// step ahead of the given pose. Implementations must treat the pose as
// read-only; it is passed by value so they cannot move the agent.
type Oracle interface {
	// WallAhead reports a wall one wall step ahead of the pose.
	WallAhead(p Pose) bool

	// PitAhead reports a pit one cell step ahead of the pose.
	PitAhead(p Pose) bool

	// GoalAhead reports the goal one cell step ahead of the pose.
	GoalAhead(p Pose) bool
}

// Renderer observes exploration progress. It is optional and side-effect
// only; correctness never depends on it.
type Renderer interface {
	Render(g *KnowledgeGrid, p Pose)
}

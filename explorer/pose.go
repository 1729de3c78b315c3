package explorer

import "fmt"

// Pose is the agent's location in doubled coordinates plus its facing
// direction. It is a value type: the explorer owns the single mutable
// pose and hands copies to collaborators, so an oracle can never move
// the agent.
type Pose struct {
	X      int
	Y      int
	Facing Direction
}

// Ahead returns the coordinates one step from the pose in its facing
// direction.
func (p Pose) Ahead(step int) (x, y int) {
	dx, dy := p.Facing.Offset(step)
	return p.X + dx, p.Y + dy
}

// String renders the pose for logs.
func (p Pose) String() string {
	return fmt.Sprintf("(%d,%d) facing %s", p.X, p.Y, p.Facing)
}

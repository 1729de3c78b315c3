package domain

import (
	"time"

	"github.com/google/uuid"
)

// RunStatus is the lifecycle state of an exploration run.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunSucceeded RunStatus = "succeeded" // agent reached the goal
	RunStuck     RunStatus = "stuck"     // no open direction left
	RunFailed    RunStatus = "failed"    // internal logic fault
)

// Run records one exploration session from start to outcome.
type Run struct {
	ID       uuid.UUID `bson:"_id"`
	OwnerID  uuid.UUID `bson:"ownerId"`
	MazeSize int       `bson:"mazeSize"`
	Status   RunStatus `bson:"status"`

	// Work counters, filled in when the run finishes.
	Steps   int `bson:"steps"`
	Turns   int `bson:"turns"`
	Scans   int `bson:"scans"`
	Queries int `bson:"queries"`

	// Goal position in doubled coordinates, set on success.
	GoalX int `bson:"goalX"`
	GoalY int `bson:"goalY"`

	StartedAt  time.Time `bson:"startedAt"`
	FinishedAt time.Time `bson:"finishedAt"`
}

// Package runapi exposes exploration runs and the leaderboard over HTTP.
package runapi

import (
	"time"

	dmn "github.com/beka-birhanu/maze-explorer-api/domain"
)

// StartRunRequest asks for a new exploration run. MapText supplies a
// world in the map notation; when empty a random world is generated from
// the remaining fields.
type StartRunRequest struct {
	MapText string `json:"map_text"`
	Size    int    `json:"size"`
	Pits    int    `json:"pits"`
	Seed    int64  `json:"seed"`
}

// StartRunResponse returns the ID of the launched run.
type StartRunResponse struct {
	ID string `json:"id"`
}

// RunInfoResponse reports the current state of a run.
type RunInfoResponse struct {
	ID         string    `json:"id"`
	MazeSize   int       `json:"maze_size"`
	Status     string    `json:"status"`
	Steps      int       `json:"steps"`
	Turns      int       `json:"turns"`
	Scans      int       `json:"scans"`
	Queries    int       `json:"queries"`
	GoalX      int       `json:"goal_x"`
	GoalY      int       `json:"goal_y"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitempty"`
}

// LeaderboardEntry is one row of a leaderboard response.
type LeaderboardEntry struct {
	RunID string `json:"run_id"`
	Steps int    `json:"steps"`
}

func runInfoFrom(run *dmn.Run) *RunInfoResponse {
	return &RunInfoResponse{
		ID:         run.ID.String(),
		MazeSize:   run.MazeSize,
		Status:     string(run.Status),
		Steps:      run.Steps,
		Turns:      run.Turns,
		Scans:      run.Scans,
		Queries:    run.Queries,
		GoalX:      run.GoalX,
		GoalY:      run.GoalY,
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
	}
}

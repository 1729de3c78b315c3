package i

import (
	"context"

	dmn "github.com/beka-birhanu/maze-explorer-api/domain"
	"github.com/google/uuid"
)

// RunConfig describes the world an exploration run should face. When
// MapText is set it is parsed as a world map and the other fields are
// ignored; otherwise a random world is generated from Size, Pits and
// Seed.
type RunConfig struct {
	MapText string
	Size    int
	Pits    int
	Seed    int64
}

// ExplorationManager starts exploration runs and reports on them.
type ExplorationManager interface {
	// StartRun launches a run for the given owner and returns its ID.
	// The run executes asynchronously; its record is readable at once.
	StartRun(ctx context.Context, ownerID uuid.UUID, cfg RunConfig) (uuid.UUID, error)

	// RunInfo retrieves the current record of a run.
	RunInfo(ctx context.Context, id uuid.UUID) (*dmn.Run, error)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/maze-explorer-api/domain"
	"github.com/beka-birhanu/maze-explorer-api/explorer"
	"github.com/beka-birhanu/maze-explorer-api/service/i"
	"github.com/beka-birhanu/maze-explorer-api/worldmaze"
	"github.com/google/uuid"
)

// Exploration runs autonomous maze explorations for operators. Each run
// gets its own goroutine; the run record in the repository is the
// source of truth for its progress.
type Exploration struct {
	runRepo     i.RunRepo
	leaderboard i.Leaderboard
	logger      i.Logger
	wg          sync.WaitGroup
}

// ExplorationConfig assembles an Exploration service.
type ExplorationConfig struct {
	RunRepo     i.RunRepo
	Leaderboard i.Leaderboard
	Logger      i.Logger
}

// NewExplorationService validates the configuration and creates the
// service.
func NewExplorationService(cfg ExplorationConfig) (*Exploration, error) {
	if cfg.RunRepo == nil || cfg.Leaderboard == nil || cfg.Logger == nil {
		return nil, errors.New("run repo, leaderboard and logger are required")
	}
	return &Exploration{
		runRepo:     cfg.RunRepo,
		leaderboard: cfg.Leaderboard,
		logger:      cfg.Logger,
	}, nil
}

// StartRun builds the ground-truth world, persists a running record and
// launches the exploration in the background.
func (s *Exploration) StartRun(ctx context.Context, ownerID uuid.UUID, cfg i.RunConfig) (uuid.UUID, error) {
	world, err := s.buildWorld(cfg)
	if err != nil {
		return uuid.Nil, err
	}

	run := &dmn.Run{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		MazeSize:  world.Size(),
		Status:    dmn.RunRunning,
		StartedAt: time.Now().UTC(),
	}
	if err := s.runRepo.Save(run); err != nil {
		return uuid.Nil, err
	}

	s.wg.Add(1)
	go s.execute(run, world)

	s.logger.Info(fmt.Sprintf("Started run %s for owner %s on %dx%d world", run.ID, ownerID, world.Size(), world.Size()))
	return run.ID, nil
}

// RunInfo retrieves the current record of a run.
func (s *Exploration) RunInfo(_ context.Context, id uuid.UUID) (*dmn.Run, error) {
	return s.runRepo.ByID(id)
}

// Wait blocks until all launched runs have finished.
func (s *Exploration) Wait() {
	s.wg.Wait()
}

func (s *Exploration) buildWorld(cfg i.RunConfig) (*worldmaze.WorldMaze, error) {
	if cfg.MapText != "" {
		return worldmaze.Parse(cfg.MapText)
	}
	return worldmaze.Generate(worldmaze.GenerateConfig{
		Size: cfg.Size,
		Pits: cfg.Pits,
		Seed: cfg.Seed,
	})
}

// execute drives one exploration to its outcome and records it.
func (s *Exploration) execute(run *dmn.Run, world *worldmaze.WorldMaze) {
	defer s.wg.Done()

	agent, err := explorer.New(explorer.Config{
		Size:   world.Size(),
		Start:  world.StartPose(),
		Oracle: world,
		// Generous bound; only hit when pits seal off the goal.
		MaxScans: 25 * world.Size() * world.Size(),
	})
	if err != nil {
		s.finish(run, dmn.RunFailed)
		s.logger.Error(fmt.Sprintf("Creating explorer for run %s: %s", run.ID, err))
		return
	}

	result, err := agent.Run()
	switch {
	case err == nil:
		run.Steps = result.Steps
		run.Turns = result.Turns
		run.Scans = result.Scans
		run.Queries = result.Queries
		run.GoalX = result.Goal.X
		run.GoalY = result.Goal.Y
		s.finish(run, dmn.RunSucceeded)
		s.recordScore(run)
		s.logger.Info(fmt.Sprintf("Run %s reached the goal at (%d,%d) in %d steps", run.ID, run.GoalX, run.GoalY, run.Steps))
	case errors.Is(err, explorer.ErrStuck), errors.Is(err, explorer.ErrExhausted):
		s.finish(run, dmn.RunStuck)
		s.logger.Warning(fmt.Sprintf("Run %s could not reach the goal: %s", run.ID, err))
	default:
		s.finish(run, dmn.RunFailed)
		s.logger.Error(fmt.Sprintf("Run %s failed: %s", run.ID, err))
	}
}

func (s *Exploration) finish(run *dmn.Run, status dmn.RunStatus) {
	run.Status = status
	run.FinishedAt = time.Now().UTC()
	if err := s.runRepo.Save(run); err != nil {
		s.logger.Error(fmt.Sprintf("Saving run %s: %s", run.ID, err))
	}
}

func (s *Exploration) recordScore(run *dmn.Run) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	board := i.BoardForSize(run.MazeSize)
	if err := s.leaderboard.Record(ctx, board, float64(run.Steps), run.ID.String()); err != nil {
		s.logger.Error(fmt.Sprintf("Recording run %s on leaderboard: %s", run.ID, err))
	}
}

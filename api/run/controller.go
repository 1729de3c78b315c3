package runapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/maze-explorer-api/api/identity"
	"github.com/beka-birhanu/maze-explorer-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultLeaderboardRows = 10

// RunController manages exploration-run operations.
type RunController struct {
	explorations i.ExplorationManager
	leaderboard  i.Leaderboard
}

// NewRunController initializes a RunController.
func NewRunController(em i.ExplorationManager, lb i.Leaderboard) (*RunController, error) {
	return &RunController{
		explorations: em,
		leaderboard:  lb,
	}, nil
}

// RegisterPublic registers public routes.
func (rc *RunController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/leaderboard/:size", rc.leaderboardTops)
}

// RegisterProtected registers protected routes.
func (rc *RunController) RegisterProtected(route *gin.RouterGroup) {
	runs := route.Group("/runs")
	{
		runs.POST("/", rc.startRun)
		runs.GET("/:ID", rc.runInfo)
	}
}

// startRun launches an exploration for the signed-in operator.
func (rc *RunController) startRun(ctx *gin.Context) {
	var request StartRunRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID, ok := claimedUserID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	runID, err := rc.explorations.StartRun(context.Background(), ownerID, i.RunConfig{
		MapText: request.MapText,
		Size:    request.Size,
		Pits:    request.Pits,
		Seed:    request.Seed,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusAccepted, &StartRunResponse{ID: runID.String()})
}

// runInfo retrieves the current record of a run.
func (rc *RunController) runInfo(ctx *gin.Context) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	run, err := rc.explorations.RunInfo(timeoutCtx, ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no such run"})
		return
	}

	ctx.JSON(http.StatusOK, runInfoFrom(run))
}

// leaderboardTops lists the best runs for a maze size.
func (rc *RunController) leaderboardTops(ctx *gin.Context) {
	size, err := strconv.Atoi(ctx.Params.ByName("size"))
	if err != nil || size <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze size"})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	rows, err := rc.leaderboard.Tops(timeoutCtx, i.BoardForSize(size), defaultLeaderboardRows)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading leaderboard"})
		return
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, LeaderboardEntry{RunID: row.Member, Steps: int(row.Score)})
	}
	ctx.JSON(http.StatusOK, entries)
}

// claimedUserID extracts the authenticated user's ID from the claims the
// authorization middleware attached.
func claimedUserID(ctx *gin.Context) (uuid.UUID, bool) {
	raw, exists := ctx.Get(identity.ContextUserClaims)
	if !exists {
		return uuid.Nil, false
	}
	claims, ok := raw.(map[string]interface{})
	if !ok {
		return uuid.Nil, false
	}
	idString, ok := claims["userID"].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idString)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

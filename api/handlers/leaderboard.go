package handlers

import (
	"context"
	"net/http"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/api/auth"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/api/dto"

	"github.com/gin-gonic/gin"
)

// LeaderboardService is what the leaderboard endpoints need.
type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, tournamentID string, dateKey string) (*dto.Leaderboard, error)
	RescoreDay(ctx context.Context, caller *dto.Caller, tournamentID string, dateKey string) (*dto.RescoreResult, error)
}

// LeaderboardHandler is the handler for the leaderboard endpoints.
type LeaderboardHandler struct {
	leaderboardService LeaderboardService
}

type LeaderboardHandlerDependencies struct {
	LeaderboardService LeaderboardService
}

// NewLeaderboardHandler creates a new instance of the leaderboard handler.
func NewLeaderboardHandler(deps *LeaderboardHandlerDependencies) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: deps.LeaderboardService,
	}
}

// GetLeaderboard returns the day standings.
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	dp, err := bindDayParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.leaderboardService.GetLeaderboard(c.Request.Context(), dp.TournamentID, dp.DateKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// PostRescore recomputes the day on demand.
func (h *LeaderboardHandler) PostRescore(c *gin.Context) {
	dp, err := bindDayParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.leaderboardService.RescoreDay(c.Request.Context(), auth.CallerFrom(c), dp.TournamentID, dp.DateKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

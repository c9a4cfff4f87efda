package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/api/auth"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/api/dto"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/api/filters"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/messages"

	"github.com/gin-gonic/gin"
)

// LineupService is what the lineup endpoints need.
type LineupService interface {
	SubmitLineup(ctx context.Context, caller *dto.Caller, tournamentID string, dateKey string, req *dto.LineupRequest) (*dto.SubmitResult, error)
	GetLineup(ctx context.Context, caller *dto.Caller, tournamentID string, dateKey string, ownerID string) (*dto.Lineup, error)
	LockStatus(ctx context.Context, tournamentID string, dateKey string) (*dto.LockStatus, error)
}

// LineupHandler is the handler for the lineup endpoints.
type LineupHandler struct {
	lineupService LineupService
}

type LineupHandlerDependencies struct {
	LineupService LineupService
}

// NewLineupHandler creates a new instance of the lineup handler.
func NewLineupHandler(deps *LineupHandlerDependencies) *LineupHandler {
	return &LineupHandler{
		lineupService: deps.LineupService,
	}
}

// Helper to bind the default URI params for a day.
func bindDayParams(c *gin.Context) (*filters.DayURIParams, error) {
	var dp filters.DayURIParams
	if err := c.ShouldBindUri(&dp); err != nil {
		return nil, fmt.Errorf("%w: %v", messages.ErrInvalidArgument, err)
	}
	return &dp, nil
}

// PutLineup handles lineup submissions.
func (h *LineupHandler) PutLineup(c *gin.Context) {
	dp, err := bindDayParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.LineupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", messages.ErrInvalidArgument, err))
		return
	}

	result, err := h.lineupService.SubmitLineup(c.Request.Context(), auth.CallerFrom(c), dp.TournamentID, dp.DateKey, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GetLineup returns the caller's lineup, or another owner's with ?ownerId=.
func (h *LineupHandler) GetLineup(c *gin.Context) {
	dp, err := bindDayParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var qp filters.LineupQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		respondError(c, fmt.Errorf("%w: %v", messages.ErrInvalidArgument, err))
		return
	}

	result, err := h.lineupService.GetLineup(c.Request.Context(), auth.CallerFrom(c), dp.TournamentID, dp.DateKey, qp.OwnerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GetLockStatus tells whether the day still accepts submissions.
func (h *LineupHandler) GetLockStatus(c *gin.Context) {
	dp, err := bindDayParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.lineupService.LockStatus(c.Request.Context(), dp.TournamentID, dp.DateKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

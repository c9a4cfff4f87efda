package lineupservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/api/dto"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/datekey"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/lockgate"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/messages"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/metrics"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/repositories"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LineupService validates and stores the managers' lineups.
type LineupService struct {
	lineupRepository     repositories.LineupRepository
	tournamentRepository repositories.TournamentRepository
	metrics              *metrics.Metrics
	now                  func() time.Time
}

// LineupServiceDeps is the dependency list for the lineup service.
type LineupServiceDeps struct {
	LineupRepository     repositories.LineupRepository
	TournamentRepository repositories.TournamentRepository
	Metrics              *metrics.Metrics
}

// NewLineupService creates a lineup service.
func NewLineupService(deps *LineupServiceDeps) *LineupService {
	return &LineupService{
		lineupRepository:     deps.LineupRepository,
		tournamentRepository: deps.TournamentRepository,
		metrics:              deps.Metrics,
		now:                  time.Now,
	}
}

// SubmitLineup creates or replaces a lineup for the day.
// Writes after the lock only go through as an admin override.
func (ls *LineupService) SubmitLineup(
	ctx context.Context,
	caller *dto.Caller,
	tournamentID string,
	dateKey string,
	req *dto.LineupRequest,
) (*dto.SubmitResult, error) {
	if caller == nil || caller.ID == "" {
		return nil, messages.ErrUnauthenticated
	}

	if !datekey.Valid(dateKey) {
		return nil, fmt.Errorf("%w: date key %q", messages.ErrInvalidArgument, dateKey)
	}

	ownerID := caller.ID
	if req.OwnerID != "" && req.OwnerID != caller.ID {
		ownerID = req.OwnerID
		if !caller.Admin {
			return nil, fmt.Errorf("%w: writing another manager's lineup", messages.ErrPermissionDenied)
		}
	}
	if req.Override && !caller.Admin {
		return nil, fmt.Errorf("%w: lock override", messages.ErrPermissionDenied)
	}

	tournament, err := ls.getTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	if err := validateRoster(tournament, req); err != nil {
		return nil, err
	}

	locked, err := lockgate.IsLocked(dateKey, tournament.LockHourUTC, ls.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", messages.ErrInvalidArgument, err)
	}

	lineup := &models.Lineup{
		TournamentID: tournamentID,
		DateKey:      dateKey,
		OwnerID:      ownerID,
		DisplayName:  ls.displayName(ctx, caller, ownerID, tournamentID, dateKey, req),
		Captain:      req.Captain,
		Cores:        datatypes.NewJSONSlice(req.Cores),
		Supports:     datatypes.NewJSONSlice(req.Supports),
		TeamCard:     req.TeamCard,
	}

	// Admins writing someone else's lineup always go through the override path.
	if req.Override || ownerID != caller.ID {
		lineup.Locked = locked
		if err := ls.lineupRepository.OverrideLineup(ctx, lineup); err != nil {
			ls.countWrite("error")
			return nil, fmt.Errorf("couldn't override lineup of %s: %w", ownerID, err)
		}
		ls.countWrite("override")
		return &dto.SubmitResult{OK: true, Locked: locked}, nil
	}

	if locked {
		ls.countWrite("locked")
		return nil, fmt.Errorf("%w: lineups for %s are locked", messages.ErrPreconditionFailed, dateKey)
	}

	err = ls.lineupRepository.SaveLineup(ctx, lineup)
	if errors.Is(err, repositories.ErrLineupLocked) {
		ls.countWrite("locked")
		return nil, fmt.Errorf("%w: lineup is locked", messages.ErrPreconditionFailed)
	}
	if err != nil {
		ls.countWrite("error")
		return nil, fmt.Errorf("couldn't save lineup of %s: %w", ownerID, err)
	}

	ls.countWrite("ok")
	return &dto.SubmitResult{OK: true, Locked: false}, nil
}

// GetLineup returns a stored lineup. Reading another manager's lineup before the lock is admin only.
func (ls *LineupService) GetLineup(
	ctx context.Context,
	caller *dto.Caller,
	tournamentID string,
	dateKey string,
	ownerID string,
) (*dto.Lineup, error) {
	if caller == nil || caller.ID == "" {
		return nil, messages.ErrUnauthenticated
	}

	if !datekey.Valid(dateKey) {
		return nil, fmt.Errorf("%w: date key %q", messages.ErrInvalidArgument, dateKey)
	}

	if ownerID == "" {
		ownerID = caller.ID
	}

	if ownerID != caller.ID && !caller.Admin {
		status, err := ls.LockStatus(ctx, tournamentID, dateKey)
		if err != nil {
			return nil, err
		}
		if !status.Locked {
			return nil, fmt.Errorf("%w: lineups are hidden until the lock", messages.ErrPermissionDenied)
		}
	}

	lineup, err := ls.lineupRepository.GetLineup(ctx, tournamentID, dateKey, ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: lineup of %s", messages.ErrNotFound, ownerID)
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't get lineup of %s: %w", ownerID, err)
	}

	return &dto.Lineup{
		TournamentID: lineup.TournamentID,
		DateKey:      lineup.DateKey,
		OwnerID:      lineup.OwnerID,
		DisplayName:  lineup.DisplayName,
		Captain:      lineup.Captain,
		Cores:        []int64(lineup.Cores),
		Supports:     []int64(lineup.Supports),
		TeamCard:     lineup.TeamCard,
		Locked:       lineup.Locked,
		Overridden:   lineup.Overridden,
		UpdatedAt:    lineup.UpdatedAt,
	}, nil
}

// LockStatus reports the lock instant of a day.
func (ls *LineupService) LockStatus(ctx context.Context, tournamentID string, dateKey string) (*dto.LockStatus, error) {
	tournament, err := ls.getTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	lockAt, err := lockgate.LockTimestamp(dateKey, tournament.LockHourUTC)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", messages.ErrInvalidArgument, err)
	}

	return &dto.LockStatus{
		DateKey: dateKey,
		LockAt:  lockAt,
		Locked:  !ls.now().Before(lockAt),
	}, nil
}

func (ls *LineupService) getTournament(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	tournament, err := ls.tournamentRepository.GetTournament(ctx, tournamentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: tournament %s", messages.ErrNotFound, tournamentID)
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't get tournament %s: %w", tournamentID, err)
	}
	return tournament, nil
}

// displayName keeps the stored name when an admin writes for someone else.
func (ls *LineupService) displayName(
	ctx context.Context,
	caller *dto.Caller,
	ownerID string,
	tournamentID string,
	dateKey string,
	req *dto.LineupRequest,
) string {
	if req.DisplayName != "" {
		return req.DisplayName
	}

	if ownerID == caller.ID {
		if caller.Name != "" {
			return caller.Name
		}
		return caller.ID
	}

	if existing, err := ls.lineupRepository.GetLineup(ctx, tournamentID, dateKey, ownerID); err == nil && existing.DisplayName != "" {
		return existing.DisplayName
	}
	return ownerID
}

func (ls *LineupService) countWrite(outcome string) {
	if ls.metrics != nil {
		ls.metrics.LineupWrites.WithLabelValues(outcome).Inc()
	}
}

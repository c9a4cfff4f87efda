package repositories

import (
	"context"
	"errors"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrLineupLocked is returned when a manager write hits a locked lineup.
var ErrLineupLocked = errors.New("lineup is locked")

// Public Interface.
type LineupRepository interface {
	GetLineup(ctx context.Context, tournamentID string, dateKey string, ownerID string) (*models.Lineup, error)
	GetLineupsByDay(ctx context.Context, tournamentID string, dateKey string) ([]*models.Lineup, error)
	LockLineups(ctx context.Context, tournamentID string, dateKey string) (int64, error)
	OverrideLineup(ctx context.Context, lineup *models.Lineup) error
	SaveLineup(ctx context.Context, lineup *models.Lineup) error
}

// Lineup repository structure.
type lineupRepository struct {
	db *gorm.DB
}

// Create a lineup repository.
func NewLineupRepository(db *gorm.DB) LineupRepository {
	return &lineupRepository{db: db}
}

var lineupKeyColumns = []clause.Column{{Name: "tournament_id"}, {Name: "date_key"}, {Name: "owner_id"}}

// Get a single lineup, gorm.ErrRecordNotFound when it doesn't exist.
func (lr *lineupRepository) GetLineup(ctx context.Context, tournamentID string, dateKey string, ownerID string) (*models.Lineup, error) {
	var lineup models.Lineup
	err := lr.db.WithContext(ctx).
		Where("tournament_id = ? AND date_key = ? AND owner_id = ?", tournamentID, dateKey, ownerID).
		Take(&lineup).Error
	if err != nil {
		return nil, err
	}
	return &lineup, nil
}

// Get every lineup of the day ordered by owner.
func (lr *lineupRepository) GetLineupsByDay(ctx context.Context, tournamentID string, dateKey string) ([]*models.Lineup, error) {
	var lineups []*models.Lineup
	err := lr.db.WithContext(ctx).
		Where("tournament_id = ? AND date_key = ?", tournamentID, dateKey).
		Order("owner_id ASC").
		Find(&lineups).Error
	if err != nil {
		return nil, err
	}
	return lineups, nil
}

// SaveLineup creates or replaces the lineup of a manager.
// The update only applies while the stored lineup is open.
func (lr *lineupRepository) SaveLineup(ctx context.Context, lineup *models.Lineup) error {
	lineup.Locked = false
	lineup.Overridden = false

	result := lr.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   lineupKeyColumns,
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "captain", "cores", "supports", "team_card", "updated_at"}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Eq{Column: clause.Column{Table: "lineups", Name: "locked"}, Value: false},
		}},
	}).Create(lineup)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrLineupLocked
	}
	return nil
}

// OverrideLineup writes the lineup regardless of the lock.
// The stored flag can be raised by the write but never lowered.
func (lr *lineupRepository) OverrideLineup(ctx context.Context, lineup *models.Lineup) error {
	lineup.Overridden = true

	updates := clause.AssignmentColumns([]string{"display_name", "captain", "cores", "supports", "team_card", "overridden", "updated_at"})
	updates = append(updates, clause.Assignment{
		Column: clause.Column{Name: "locked"},
		Value:  gorm.Expr("lineups.locked OR excluded.locked"),
	})

	return lr.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   lineupKeyColumns,
		DoUpdates: updates,
	}).Create(lineup).Error
}

// LockLineups flips every open lineup of the day to locked.
func (lr *lineupRepository) LockLineups(ctx context.Context, tournamentID string, dateKey string) (int64, error) {
	result := lr.db.WithContext(ctx).
		Model(&models.Lineup{}).
		Where("tournament_id = ? AND date_key = ? AND locked = ?", tournamentID, dateKey, false).
		Update("locked", true)

	return result.RowsAffected, result.Error
}

package repositories

import (
	"context"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Public Interface.
type PlayerRepository interface {
	GetPlayerNames(ctx context.Context, accountIDs []int64) (map[int64]string, error)
	SavePlayerNames(ctx context.Context, names []*models.PlayerName) error
}

// Player repository structure.
type playerRepository struct {
	db *gorm.DB
}

// Create a player repository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// Get the known display names, unknown ids are absent.
func (pr *playerRepository) GetPlayerNames(ctx context.Context, accountIDs []int64) (map[int64]string, error) {
	result := make(map[int64]string, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}

	var rows []*models.PlayerName
	if err := pr.db.WithContext(ctx).Where("account_id IN ?", accountIDs).Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row.Name != "" {
			result[row.AccountID] = row.Name
		}
	}
	return result, nil
}

// Save the names seen at ingest, blank names are ignored.
func (pr *playerRepository) SavePlayerNames(ctx context.Context, names []*models.PlayerName) error {
	filtered := make([]*models.PlayerName, 0, len(names))
	seen := make(map[int64]bool, len(names))
	for _, name := range names {
		if name.Name == "" || seen[name.AccountID] {
			continue
		}
		seen[name.AccountID] = true
		filtered = append(filtered, name)
	}

	if len(filtered) == 0 {
		return nil
	}

	return pr.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).Create(&filtered).Error
}

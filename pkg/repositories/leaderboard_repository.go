package repositories

import (
	"context"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Public Interface.
type LeaderboardRepository interface {
	GetLeaderboard(ctx context.Context, tournamentID string, dateKey string) (*models.Leaderboard, error)
	SaveLeaderboard(ctx context.Context, leaderboard *models.Leaderboard) error
}

// Leaderboard repository structure.
type leaderboardRepository struct {
	db *gorm.DB
}

// Create a leaderboard repository.
func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

// Get the stored leaderboard, gorm.ErrRecordNotFound when the day was never aggregated.
func (lr *leaderboardRepository) GetLeaderboard(ctx context.Context, tournamentID string, dateKey string) (*models.Leaderboard, error) {
	var leaderboard models.Leaderboard
	err := lr.db.WithContext(ctx).
		Where("tournament_id = ? AND date_key = ?", tournamentID, dateKey).
		Take(&leaderboard).Error
	if err != nil {
		return nil, err
	}
	return &leaderboard, nil
}

// SaveLeaderboard replaces the whole document of the day.
func (lr *leaderboardRepository) SaveLeaderboard(ctx context.Context, leaderboard *models.Leaderboard) error {
	return lr.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tournament_id"}, {Name: "date_key"}},
		UpdateAll: true,
	}).Create(leaderboard).Error
}

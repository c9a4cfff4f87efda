package repositories

import (
	"context"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Public Interface.
type TournamentRepository interface {
	GetActiveTournaments(ctx context.Context) ([]*models.Tournament, error)
	GetTournament(ctx context.Context, tournamentID string) (*models.Tournament, error)
	SaveTournament(ctx context.Context, tournament *models.Tournament) error
}

// Tournament repository structure.
type tournamentRepository struct {
	db *gorm.DB
}

// Create a tournament repository.
func NewTournamentRepository(db *gorm.DB) TournamentRepository {
	return &tournamentRepository{db: db}
}

// Get every tournament the poller should follow.
func (tr *tournamentRepository) GetActiveTournaments(ctx context.Context) ([]*models.Tournament, error) {
	var tournaments []*models.Tournament
	err := tr.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id ASC").
		Find(&tournaments).Error
	if err != nil {
		return nil, err
	}
	return tournaments, nil
}

// Get a tournament, gorm.ErrRecordNotFound when unknown.
func (tr *tournamentRepository) GetTournament(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	var tournament models.Tournament
	if err := tr.db.WithContext(ctx).Where("id = ?", tournamentID).Take(&tournament).Error; err != nil {
		return nil, err
	}
	return &tournament, nil
}

// Create or replace a tournament configuration.
func (tr *tournamentRepository) SaveTournament(ctx context.Context, tournament *models.Tournament) error {
	return tr.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(tournament).Error
}

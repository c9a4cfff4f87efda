package repositories

import (
	"context"
	"fmt"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/models/match"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Public Interface.
type MatchRepository interface {
	DeleteMatchesBefore(ctx context.Context, dateKey string) (int64, error)
	GetMatchesByDay(ctx context.Context, tournamentID string, dateKey string, onlyComplete bool) ([]*models.Match, error)
	GetMatchesByIDs(ctx context.Context, matchIDs []int64) (map[int64]*models.Match, error)
	UpsertMatch(ctx context.Context, incoming *models.Match) (UpsertResult, error)
}

// Outcome of a match upsert, read from the merged row.
type UpsertResult struct {
	BecameComplete bool
	DateKey        string
}

// Match repository structure.
type matchRepository struct {
	db *gorm.DB
}

// Create a match repository.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

// UpsertMatch merges the incoming projection into the cached row.
// BecameComplete is set only on the write that flips the match to complete.
func (mr *matchRepository) UpsertMatch(ctx context.Context, incoming *models.Match) (UpsertResult, error) {
	var result UpsertResult

	err := mr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Make sure a row exists so concurrent writers serialize on its lock.
		placeholder := &models.Match{
			MatchID:    incoming.MatchID,
			Objectives: datatypes.JSONSlice[match.Objective]{},
			Players:    datatypes.JSONSlice[match.PlayerRow]{},
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(placeholder).Error; err != nil {
			return fmt.Errorf("couldn't reserve match %d: %w", incoming.MatchID, err)
		}

		var stored models.Match
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("match_id = ?", incoming.MatchID).
			Take(&stored).Error; err != nil {
			return fmt.Errorf("couldn't lock match %d: %w", incoming.MatchID, err)
		}

		merged := stored.Merge(incoming)
		if err := tx.Save(merged).Error; err != nil {
			return err
		}

		result = UpsertResult{
			BecameComplete: !stored.Complete && merged.Complete,
			DateKey:        merged.DateKey,
		}
		return nil
	})
	if err != nil {
		return UpsertResult{}, err
	}

	return result, nil
}

// Get the cached matches by id, missing ids are simply absent from the map.
func (mr *matchRepository) GetMatchesByIDs(ctx context.Context, matchIDs []int64) (map[int64]*models.Match, error) {
	const batchSize = 1000
	result := make(map[int64]*models.Match, len(matchIDs))

	for start := 0; start < len(matchIDs); start += batchSize {
		end := min(start+batchSize, len(matchIDs))

		var rows []*models.Match
		if err := mr.db.WithContext(ctx).
			Where("match_id IN ?", matchIDs[start:end]).
			Find(&rows).Error; err != nil {
			return nil, err
		}

		for _, row := range rows {
			result[row.MatchID] = row
		}
	}

	return result, nil
}

// Get every match of a tournament day, ordered by start time.
func (mr *matchRepository) GetMatchesByDay(ctx context.Context, tournamentID string, dateKey string, onlyComplete bool) ([]*models.Match, error) {
	var rows []*models.Match

	query := mr.db.WithContext(ctx).
		Where("tournament_id = ? AND date_key = ?", tournamentID, dateKey)
	if onlyComplete {
		query = query.Where("complete = ?", true)
	}

	if err := query.Order("start_time ASC, match_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// Remove every match whose day is strictly before the given key.
func (mr *matchRepository) DeleteMatchesBefore(ctx context.Context, dateKey string) (int64, error) {
	result := mr.db.WithContext(ctx).
		Where("date_key <> '' AND date_key < ?", dateKey).
		Delete(&models.Match{})

	return result.RowsAffected, result.Error
}

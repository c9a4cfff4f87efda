package mocks

import (
	"context"
	"testing"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/repositories"
	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(mock.TestingT) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Repository mocks.
// ============================================================================

// Match mock implementations.
type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) DeleteMatchesBefore(ctx context.Context, dateKey string) (int64, error) {
	args := m.Called(ctx, dateKey)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMatchRepository) GetMatchesByDay(ctx context.Context, tournamentID string, dateKey string, onlyComplete bool) ([]*models.Match, error) {
	args := m.Called(ctx, tournamentID, dateKey, onlyComplete)
	return args.Get(0).([]*models.Match), args.Error(1)
}

func (m *MockMatchRepository) GetMatchesByIDs(ctx context.Context, matchIDs []int64) (map[int64]*models.Match, error) {
	args := m.Called(ctx, matchIDs)
	return args.Get(0).(map[int64]*models.Match), args.Error(1)
}

func (m *MockMatchRepository) UpsertMatch(ctx context.Context, incoming *models.Match) (repositories.UpsertResult, error) {
	args := m.Called(ctx, incoming)
	return args.Get(0).(repositories.UpsertResult), args.Error(1)
}

// Lineup mock implementations.
type MockLineupRepository struct {
	mock.Mock
}

func (m *MockLineupRepository) GetLineup(ctx context.Context, tournamentID string, dateKey string, ownerID string) (*models.Lineup, error) {
	args := m.Called(ctx, tournamentID, dateKey, ownerID)
	return args.Get(0).(*models.Lineup), args.Error(1)
}

func (m *MockLineupRepository) GetLineupsByDay(ctx context.Context, tournamentID string, dateKey string) ([]*models.Lineup, error) {
	args := m.Called(ctx, tournamentID, dateKey)
	return args.Get(0).([]*models.Lineup), args.Error(1)
}

func (m *MockLineupRepository) LockLineups(ctx context.Context, tournamentID string, dateKey string) (int64, error) {
	args := m.Called(ctx, tournamentID, dateKey)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLineupRepository) OverrideLineup(ctx context.Context, lineup *models.Lineup) error {
	args := m.Called(ctx, lineup)
	return args.Error(0)
}

func (m *MockLineupRepository) SaveLineup(ctx context.Context, lineup *models.Lineup) error {
	args := m.Called(ctx, lineup)
	return args.Error(0)
}

// Leaderboard mock implementations.
type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) GetLeaderboard(ctx context.Context, tournamentID string, dateKey string) (*models.Leaderboard, error) {
	args := m.Called(ctx, tournamentID, dateKey)
	return args.Get(0).(*models.Leaderboard), args.Error(1)
}

func (m *MockLeaderboardRepository) SaveLeaderboard(ctx context.Context, leaderboard *models.Leaderboard) error {
	args := m.Called(ctx, leaderboard)
	return args.Error(0)
}

// Tournament mock implementations.
type MockTournamentRepository struct {
	mock.Mock
}

func (m *MockTournamentRepository) GetActiveTournaments(ctx context.Context) ([]*models.Tournament, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Tournament), args.Error(1)
}

func (m *MockTournamentRepository) GetTournament(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	args := m.Called(ctx, tournamentID)
	return args.Get(0).(*models.Tournament), args.Error(1)
}

func (m *MockTournamentRepository) SaveTournament(ctx context.Context, tournament *models.Tournament) error {
	args := m.Called(ctx, tournament)
	return args.Error(0)
}

// Player mock implementations.
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) GetPlayerNames(ctx context.Context, accountIDs []int64) (map[int64]string, error) {
	args := m.Called(ctx, accountIDs)
	return args.Get(0).(map[int64]string), args.Error(1)
}

func (m *MockPlayerRepository) SavePlayerNames(ctx context.Context, names []*models.PlayerName) error {
	args := m.Called(ctx, names)
	return args.Error(0)
}

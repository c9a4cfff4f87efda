package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/api/auth"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/api/dto"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/messages"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLineupService struct {
	mock.Mock
}

func (m *mockLineupService) SubmitLineup(ctx context.Context, caller *dto.Caller, tournamentID string, dateKey string, req *dto.LineupRequest) (*dto.SubmitResult, error) {
	args := m.Called(ctx, caller, tournamentID, dateKey, req)
	return args.Get(0).(*dto.SubmitResult), args.Error(1)
}

func (m *mockLineupService) GetLineup(ctx context.Context, caller *dto.Caller, tournamentID string, dateKey string, ownerID string) (*dto.Lineup, error) {
	args := m.Called(ctx, caller, tournamentID, dateKey, ownerID)
	return args.Get(0).(*dto.Lineup), args.Error(1)
}

func (m *mockLineupService) LockStatus(ctx context.Context, tournamentID string, dateKey string) (*dto.LockStatus, error) {
	args := m.Called(ctx, tournamentID, dateKey)
	return args.Get(0).(*dto.LockStatus), args.Error(1)
}

type mockLeaderboardService struct {
	mock.Mock
}

func (m *mockLeaderboardService) GetLeaderboard(ctx context.Context, tournamentID string, dateKey string) (*dto.Leaderboard, error) {
	args := m.Called(ctx, tournamentID, dateKey)
	return args.Get(0).(*dto.Leaderboard), args.Error(1)
}

func (m *mockLeaderboardService) RescoreDay(ctx context.Context, caller *dto.Caller, tournamentID string, dateKey string) (*dto.RescoreResult, error) {
	args := m.Called(ctx, caller, tournamentID, dateKey)
	return args.Get(0).(*dto.RescoreResult), args.Error(1)
}

const testSecret = "secret"

func setupEngine(lineups *mockLineupService, leaderboards *mockLeaderboardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(auth.NewVerifier(testSecret).Middleware())

	lineupHandler := NewLineupHandler(&LineupHandlerDependencies{LineupService: lineups})
	leaderboardHandler := NewLeaderboardHandler(&LeaderboardHandlerDependencies{LeaderboardService: leaderboards})

	day := engine.Group("/tournaments/:tid/days/:dateKey")
	day.PUT("/lineup", lineupHandler.PutLineup)
	day.GET("/lineup", lineupHandler.GetLineup)
	day.GET("/lock", lineupHandler.GetLockStatus)
	day.GET("/leaderboard", leaderboardHandler.GetLeaderboard)
	day.POST("/rescore", leaderboardHandler.PostRescore)

	return engine
}

func bearer(t *testing.T, subject string, admin bool) string {
	t.Helper()
	token, err := auth.NewVerifier(testSecret).GenerateToken(subject, strings.ToUpper(subject), admin, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestPutLineup(t *testing.T) {
	body := `{"captain":1,"cores":[2,3],"supports":[4,5],"teamCard":100}`
	expectedRequest := &dto.LineupRequest{Captain: 1, Cores: []int64{2, 3}, Supports: []int64{4, 5}, TeamCard: 100}

	tests := []struct {
		name           string
		body           string
		withToken      bool
		serviceErr     error
		expectedStatus int
	}{
		{name: "ok", body: body, withToken: true, expectedStatus: http.StatusOK},
		{name: "unauthenticated", body: body, serviceErr: messages.ErrUnauthenticated, expectedStatus: http.StatusUnauthorized},
		{name: "invalid", body: body, withToken: true, serviceErr: fmt.Errorf("%w: cores", messages.ErrInvalidArgument), expectedStatus: http.StatusBadRequest},
		{name: "locked", body: body, withToken: true, serviceErr: fmt.Errorf("%w: locked", messages.ErrPreconditionFailed), expectedStatus: http.StatusPreconditionFailed},
		{name: "forbidden", body: body, withToken: true, serviceErr: messages.ErrPermissionDenied, expectedStatus: http.StatusForbidden},
		{name: "unknown-tournament", body: body, withToken: true, serviceErr: messages.ErrNotFound, expectedStatus: http.StatusNotFound},
		{name: "internal", body: body, withToken: true, serviceErr: errors.New("database error occurred"), expectedStatus: http.StatusInternalServerError},
		{name: "malformed-body", body: `{"captain":"x"}`, withToken: true, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lineups := new(mockLineupService)
			engine := setupEngine(lineups, new(mockLeaderboardService))

			var caller *dto.Caller
			if tt.withToken {
				caller = &dto.Caller{ID: "alice", Name: "ALICE"}
			}

			if tt.name != "malformed-body" {
				result := &dto.SubmitResult{OK: true}
				if tt.serviceErr != nil {
					result = nil
				}
				lineups.On("SubmitLineup", mock.Anything, caller, "ti2025", "20250911", expectedRequest).Return(result, tt.serviceErr)
			}

			req := httptest.NewRequest(http.MethodPut, "/tournaments/ti2025/days/20250911/lineup", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.withToken {
				req.Header.Set("Authorization", bearer(t, "alice", false))
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.JSONEq(t, `{"result":{"ok":true,"locked":false}}`, w.Body.String())
			}
			if tt.expectedStatus == http.StatusInternalServerError {
				assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
			}
			lineups.AssertExpectations(t)
		})
	}
}

func TestGetLineupHandler(t *testing.T) {
	lineups := new(mockLineupService)
	engine := setupEngine(lineups, new(mockLeaderboardService))

	caller := &dto.Caller{ID: "alice", Name: "ALICE"}
	lineups.On("GetLineup", mock.Anything, caller, "ti2025", "20250911", "bob").Return(&dto.Lineup{OwnerID: "bob", Captain: 9}, nil)

	req := httptest.NewRequest(http.MethodGet, "/tournaments/ti2025/days/20250911/lineup?ownerId=bob", nil)
	req.Header.Set("Authorization", bearer(t, "alice", false))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"captain":9`)
	lineups.AssertExpectations(t)
}

func TestGetLockStatus(t *testing.T) {
	lineups := new(mockLineupService)
	engine := setupEngine(lineups, new(mockLeaderboardService))

	lockAt := time.Date(2025, 9, 11, 8, 0, 0, 0, time.UTC)
	lineups.On("LockStatus", mock.Anything, "ti2025", "20250911").Return(&dto.LockStatus{DateKey: "20250911", LockAt: lockAt, Locked: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/tournaments/ti2025/days/20250911/lock", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":{"dateKey":"20250911","lockAt":"2025-09-11T08:00:00Z","locked":true}}`, w.Body.String())
}

func TestGetLeaderboardHandler(t *testing.T) {
	leaderboards := new(mockLeaderboardService)
	engine := setupEngine(new(mockLineupService), leaderboards)

	leaderboards.On("GetLeaderboard", mock.Anything, "ti2025", "20250911").Return(&dto.Leaderboard{
		TournamentID: "ti2025",
		DateKey:      "20250911",
		Entries:      []models.LeaderboardEntry{{Rank: 1, OwnerID: "alice", TotalPoints: 379}},
	}, nil)
	leaderboards.On("GetLeaderboard", mock.Anything, "ti2025", "bad").Return((*dto.Leaderboard)(nil), messages.ErrInvalidArgument)

	req := httptest.NewRequest(http.MethodGet, "/tournaments/ti2025/days/20250911/leaderboard", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"owner_id":"alice"`)

	req = httptest.NewRequest(http.MethodGet, "/tournaments/ti2025/days/bad/leaderboard", nil)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostRescore(t *testing.T) {
	leaderboards := new(mockLeaderboardService)
	engine := setupEngine(new(mockLineupService), leaderboards)

	adminCaller := &dto.Caller{ID: "root", Name: "ROOT", Admin: true}
	leaderboards.On("RescoreDay", mock.Anything, adminCaller, "ti2025", "20250911").Return(&dto.RescoreResult{Count: 4}, nil)

	req := httptest.NewRequest(http.MethodPost, "/tournaments/ti2025/days/20250911/rescore", nil)
	req.Header.Set("Authorization", bearer(t, "root", true))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":{"count":4}}`, w.Body.String())
	leaderboards.AssertExpectations(t)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, statusFor(fmt.Errorf("wrapped: %w", messages.ErrUnauthenticated)))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("boom")))
}

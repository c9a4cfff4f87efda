package players

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/internal/mocks"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/models/match"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/redis"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockNameProvider struct {
	mock.Mock
}

func (m *mockNameProvider) GetPlayerName(ctx context.Context, accountID int64) (string, error) {
	args := m.Called(ctx, accountID)
	return args.String(0), args.Error(1)
}

func TestResolveNames(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClientWithAddr(server.Addr(), "")
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), nameKey(2), "Collapse", time.Hour))

	repo := new(mocks.MockPlayerRepository)
	provider := new(mockNameProvider)

	repo.On("GetPlayerNames", mock.Anything, []int64{3, 4, 5}).Return(map[int64]string{3: "Mira"}, nil)
	provider.On("GetPlayerName", mock.Anything, int64(4)).Return("Larl", nil)
	provider.On("GetPlayerName", mock.Anything, int64(5)).Return("", errors.New("provider down"))
	repo.On("SavePlayerNames", mock.Anything, []*models.PlayerName{{AccountID: 4, Name: "Larl"}}).Return(nil)

	resolver := NewResolver(&ResolverDeps{Redis: client, Repository: repo, Provider: provider})

	names := resolver.ResolveNames(context.Background(), []int64{1, 2, 3, 4, 5}, map[int64]string{1: "Yatoro"})

	assert.Equal(t, map[int64]string{
		1: "Yatoro",
		2: "Collapse",
		3: "Mira",
		4: "Larl",
		5: "5",
	}, names)

	// Names found below redis are written back to it.
	cached, err := client.Get(context.Background(), nameKey(4))
	require.NoError(t, err)
	assert.Equal(t, "Larl", cached)

	cached, err = client.Get(context.Background(), nameKey(3))
	require.NoError(t, err)
	assert.Equal(t, "Mira", cached)

	mocks.VerifyAllMocks(t, repo, provider)
}

func TestResolveNamesWithoutBackends(t *testing.T) {
	resolver := NewResolver(&ResolverDeps{})

	names := resolver.ResolveNames(context.Background(), []int64{7, 7}, nil)
	assert.Equal(t, map[int64]string{7: "7"}, names)
}

func TestRemember(t *testing.T) {
	repo := new(mocks.MockPlayerRepository)
	repo.On("SavePlayerNames", mock.Anything, []*models.PlayerName{{AccountID: 1, Name: "Yatoro"}}).Return(nil)

	resolver := NewResolver(&ResolverDeps{Repository: repo})
	err := resolver.Remember(context.Background(), []match.PlayerRow{
		{AccountID: 1, Name: "Yatoro"},
		{AccountID: 2},
		{Name: "no id"},
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

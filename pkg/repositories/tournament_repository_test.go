package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/internal/testutil"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestTournamentAndPlayerRepositories(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("tournaments", func(t *testing.T) {
		repository := NewTournamentRepository(db)

		require.NoError(t, repository.SaveTournament(ctx, &models.Tournament{
			ID: "ti2025", Name: "The International", LeagueIDs: datatypes.JSONSlice[int64]{18324},
			LockHourUTC: 8, CoreCount: 2, SupportCount: 2, Active: true,
		}))
		require.NoError(t, repository.SaveTournament(ctx, &models.Tournament{
			ID: "old", LeagueIDs: datatypes.JSONSlice[int64]{1}, LockHourUTC: 8, Active: false,
		}))

		active, err := repository.GetActiveTournaments(ctx)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "ti2025", active[0].ID)
		assert.Equal(t, []int64{18324}, []int64(active[0].LeagueIDs))

		_, err = repository.GetTournament(ctx, "missing")
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

		rb, err := active[0].GetRulebook()
		require.NoError(t, err)
		assert.Equal(t, 1.5, rb.CaptainMultiplier)
	})

	t.Run("player-names", func(t *testing.T) {
		repository := NewPlayerRepository(db)

		require.NoError(t, repository.SavePlayerNames(ctx, []*models.PlayerName{
			{AccountID: 1, Name: "Yatoro"},
			{AccountID: 2, Name: ""},
			{AccountID: 1, Name: "duplicate"},
		}))
		require.NoError(t, repository.SavePlayerNames(ctx, []*models.PlayerName{{AccountID: 3, Name: "Collapse"}}))

		names, err := repository.GetPlayerNames(ctx, []int64{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, map[int64]string{1: "Yatoro", 3: "Collapse"}, names)
	})
}

package matchfetcher

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/fetcher/requests"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/config"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/models/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDetail(t *testing.T) *MatchDetail {
	t.Helper()

	data, err := os.ReadFile("testdata/match_detail.json")
	require.NoError(t, err)

	var detail MatchDetail
	require.NoError(t, json.Unmarshal(data, &detail))
	return &detail
}

func TestProject(t *testing.T) {
	projection, err := loadDetail(t).Project("ti2025")
	require.NoError(t, err)

	row := projection.Match
	assert.Equal(t, int64(8461298311), row.MatchID)
	assert.Equal(t, "ti2025", row.TournamentID)
	assert.Equal(t, "20250911", row.DateKey)
	assert.Equal(t, int64(7119388), row.RadiantTeamID)
	assert.Equal(t, "Team Liquid", row.DireName)

	// Ten reported rows and a positive duration, even with two rows quarantined.
	assert.True(t, row.Complete)
	assert.Equal(t, 10, row.ReportedPlayers)
	assert.Len(t, row.Players, 8)
	assert.Equal(t, 2, projection.Quarantined)

	// Only roshan and first blood events are kept.
	require.Len(t, row.Objectives, 2)
	fb := match.Objective(row.Objectives[0])
	side, ok := fb.Side()
	assert.True(t, ok)
	assert.Equal(t, match.Dire, side)
	rosh := match.Objective(row.Objectives[1])
	side, ok = rosh.Side()
	assert.True(t, ok)
	assert.Equal(t, match.Radiant, side)

	// Wards are observers plus sentries, the persona name fills a missing pro name.
	var rue match.PlayerRow
	for _, p := range row.Players {
		if p.AccountID == 256156323 {
			rue = p
		}
	}
	assert.Equal(t, 15, rue.WardsPlaced)
	assert.Equal(t, "rue", rue.Name)
}

func TestProjectIncomplete(t *testing.T) {
	detail := loadDetail(t)
	detail.Duration = 0

	projection, err := detail.Project("ti2025")
	require.NoError(t, err)
	assert.False(t, projection.Match.Complete)

	detail = loadDetail(t)
	detail.Players = detail.Players[:9]
	projection, err = detail.Project("ti2025")
	require.NoError(t, err)
	assert.False(t, projection.Match.Complete)
}

func TestProjectMalformed(t *testing.T) {
	_, err := (&MatchDetail{}).Project("ti2025")
	assert.True(t, errors.Is(err, ErrMalformedMatch))

	var nilDetail *MatchDetail
	_, err = nilDetail.Project("ti2025")
	assert.True(t, errors.Is(err, ErrMalformedMatch))
}

func TestMatchFetcher(t *testing.T) {
	detail, err := os.ReadFile("testdata/match_detail.json")
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/leagues/18324/matches":
			w.Write([]byte(`[{"match_id": 2, "start_time": 200}, {"match_id": 1, "start_time": 100, "series_id": 5, "series_type": 1}]`))
		case "/matches/8461298311":
			w.Write(detail)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	cfg := &config.Config{Provider: config.ProviderConfiguration{BaseURL: server.URL, Timeout: time.Second}}
	fetcher := CreateMatchFetcher(requests.NewClient(cfg, requests.CreateRateLimiter(0), nil))
	ctx := context.Background()

	matches, err := fetcher.GetLeagueMatches(ctx, 18324)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, int64(5), matches[1].SeriesID)

	got, err := fetcher.GetMatchData(ctx, 8461298311)
	require.NoError(t, err)
	assert.Len(t, got.Players, 10)

	_, err = fetcher.GetMatchData(ctx, 1)
	assert.True(t, errors.Is(err, requests.ErrNotFound))
}

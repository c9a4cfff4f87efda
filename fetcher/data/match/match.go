package matchfetcher

import (
	"context"
	"fmt"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/fetcher/requests"
)

// The match fetcher with it's client.
type MatchFetcher struct {
	client *requests.Client
}

// Create a instance of the match fetcher.
func CreateMatchFetcher(client *requests.Client) *MatchFetcher {
	return &MatchFetcher{client: client}
}

// Get the matches played on a league, in the provider order.
func (m *MatchFetcher) GetLeagueMatches(ctx context.Context, leagueID int64) ([]LeagueMatch, error) {
	var matches []LeagueMatch
	if err := m.client.GetJSON(ctx, "league_matches", fmt.Sprintf("/leagues/%d/matches", leagueID), &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// Get a given match data.
func (m *MatchFetcher) GetMatchData(ctx context.Context, matchID int64) (*MatchDetail, error) {
	var detail MatchDetail
	if err := m.client.GetJSON(ctx, "match_detail", fmt.Sprintf("/matches/%d", matchID), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

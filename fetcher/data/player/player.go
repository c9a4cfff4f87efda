package playerfetcher

import (
	"context"
	"fmt"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/fetcher/requests"
)

// Profile block of the player endpoint.
type Profile struct {
	AccountID   int64  `json:"account_id"`
	Personaname string `json:"personaname"`
	Name        string `json:"name"`
}

// PlayerData is the return type of the player endpoint.
type PlayerData struct {
	Profile *Profile `json:"profile"`
}

// The player fetcher with it's client.
type PlayerFetcher struct {
	client *requests.Client
}

// Create a player fetcher.
func CreatePlayerFetcher(client *requests.Client) *PlayerFetcher {
	return &PlayerFetcher{client: client}
}

// GetPlayerName returns the pro name of a player, falling back to the persona name.
func (p *PlayerFetcher) GetPlayerName(ctx context.Context, accountID int64) (string, error) {
	var data PlayerData
	if err := p.client.GetJSON(ctx, "player", fmt.Sprintf("/players/%d", accountID), &data); err != nil {
		return "", err
	}

	if data.Profile == nil {
		return "", nil
	}
	if data.Profile.Name != "" {
		return data.Profile.Name, nil
	}
	return data.Profile.Personaname, nil
}

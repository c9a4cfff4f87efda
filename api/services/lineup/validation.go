package lineupservice

import (
	"fmt"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/api/dto"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database/models"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/messages"
)

// validateRoster checks the slot counts of the tournament and that no player is picked twice.
func validateRoster(tournament *models.Tournament, req *dto.LineupRequest) error {
	if len(req.Cores) != tournament.CoreCount {
		return fmt.Errorf("%w: expected %d cores, got %d", messages.ErrInvalidArgument, tournament.CoreCount, len(req.Cores))
	}

	if len(req.Supports) != tournament.SupportCount {
		return fmt.Errorf("%w: expected %d supports, got %d", messages.ErrInvalidArgument, tournament.SupportCount, len(req.Supports))
	}

	if req.TeamCard <= 0 {
		return fmt.Errorf("%w: team card is required", messages.ErrInvalidArgument)
	}

	seen := make(map[int64]struct{}, 1+len(req.Cores)+len(req.Supports))
	picks := append([]int64{req.Captain}, req.Cores...)
	picks = append(picks, req.Supports...)
	for _, id := range picks {
		if id <= 0 {
			return fmt.Errorf("%w: player id %d", messages.ErrInvalidArgument, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: player %d picked twice", messages.ErrInvalidArgument, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

package jobs

import (
	"context"
	"fmt"
	"log"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/lockgate"
)

// ScoreLockedDays republishes the leaderboards of today and yesterday once their lineups locked.
// The poller only scores days that gained a complete match, this covers lineup-only changes.
func (j *Jobs) ScoreLockedDays(ctx context.Context) error {
	tournaments, err := j.tournamentRepository.GetActiveTournaments(ctx)
	if err != nil {
		return fmt.Errorf("couldn't get the active tournaments: %w", err)
	}

	now := j.now()
	failed := 0
	for _, tournament := range tournaments {
		days, err := lockgate.LockedDays(tournament.LockHourUTC, now, 1)
		if err != nil {
			log.Printf("Tournament %s has an invalid lock hour: %v", tournament.ID, err)
			continue
		}

		for _, day := range days {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			if _, err := j.scorer.ScoreDay(ctx, tournament.ID, day); err != nil {
				log.Printf("Couldn't score %s/%s: %v", tournament.ID, day, err)
				failed++
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d days failed to score", failed)
	}
	return nil
}

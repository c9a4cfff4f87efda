package jobs

import (
	"context"
	"fmt"
	"log"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/lockgate"
)

// LockSweep flips the lineups of every day whose gate closed to locked.
// Yesterday is included so a missed hour is caught up.
func (j *Jobs) LockSweep(ctx context.Context) error {
	tournaments, err := j.tournamentRepository.GetActiveTournaments(ctx)
	if err != nil {
		return fmt.Errorf("couldn't get the active tournaments: %w", err)
	}

	now := j.now()
	var total int64
	for _, tournament := range tournaments {
		days, err := lockgate.LockedDays(tournament.LockHourUTC, now, 1)
		if err != nil {
			log.Printf("Tournament %s has an invalid lock hour: %v", tournament.ID, err)
			continue
		}

		for _, day := range days {
			locked, err := j.lineupRepository.LockLineups(ctx, tournament.ID, day)
			if err != nil {
				log.Printf("Couldn't lock lineups of %s/%s: %v", tournament.ID, day, err)
				continue
			}
			total += locked
		}
	}

	if j.metrics != nil {
		j.metrics.LineupsLocked.Add(float64(total))
	}
	if total > 0 {
		log.Printf("Locked %d lineups.", total)
	}
	return nil
}

package jobs

import (
	"context"
	"fmt"
	"log"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/datekey"
)

// Retention removes the cached matches older than the retention window.
func (j *Jobs) Retention(ctx context.Context) error {
	cutoff, err := datekey.AddDays(datekey.Today(j.now()), -j.config.Retention.Days)
	if err != nil {
		return err
	}

	deleted, err := j.matchRepository.DeleteMatchesBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("couldn't purge matches before %s: %w", cutoff, err)
	}

	if j.metrics != nil {
		j.metrics.MatchesPurged.Add(float64(deleted))
	}
	log.Printf("Purged %d matches before %s.", deleted, cutoff)
	return nil
}

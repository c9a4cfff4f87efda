package jobs

import (
	"context"
	"fmt"
	"log"
)

// Ingest runs the poller and ships the run log to the bucket.
func (j *Jobs) Ingest(ctx context.Context) error {
	log.Println("Starting ingestion run.")
	started := j.now().UTC()

	result, err := j.ingester.Run(ctx)
	if err != nil {
		j.logger.Errorf("Ingestion run aborted: %v", err)
	}

	j.shipLog(ctx, fmt.Sprintf("ingest/%s.log", started.Format("20060102T150405Z")))

	if err != nil {
		return fmt.Errorf("ingestion run failed: %w", err)
	}

	log.Printf(
		"Finished ingestion run: %d fetched, %d skipped, %d failed, %d days scored",
		result.Fetched, result.Skipped, result.Failed, len(result.Scored),
	)
	return nil
}

// shipLog uploads the run log when a bucket is configured, otherwise it's dropped.
func (j *Jobs) shipLog(ctx context.Context, objectKey string) {
	if !j.config.HasBucket() {
		j.logger.CleanFile()
		return
	}

	if err := j.logger.UploadToS3Bucket(ctx, j.config, objectKey); err != nil {
		log.Printf("Couldn't upload the run log: %v", err)
	}
}

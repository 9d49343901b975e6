package job

import (
	"context"

	"wikifeed/config"
	"wikifeed/usecase/ingest_usecase"
	"wikifeed/utils/logger"
)

// NewIngestJob builds the periodic job that tops up the article pool
// from Wikipedia so the discovery mix never runs dry.
func NewIngestJob(ingestUsecase *ingest_usecase.IngestUsecase, cfg *config.Config) Job {
	return Job{
		Name:     "wikipedia_ingest",
		Interval: cfg.Ingest.JobInterval,
		Timeout:  cfg.Ingest.JobTimeout,
		Fn: func(ctx context.Context) error {
			report, err := ingestUsecase.IngestRandomArticles(ctx, cfg.Ingest.BatchSize)
			if err != nil {
				return err
			}

			logger.Logger.InfoContext(ctx, "ingest run complete",
				"requested", report.Requested,
				"ingested", report.Ingested,
				"skipped", report.Skipped)
			return nil
		},
	}
}

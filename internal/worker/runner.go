package worker

import (
	"context"
	"time"

	"batilink/pkg/logger"
)

const legalJobInterval = 5 * time.Minute

// Job is a single pass of background work. Run reports how many items it
// handled.
type Job interface {
	Run(ctx context.Context) (int, error)
}

// Runner drives the periodic jobs. The legal pipeline runs on a short
// interval; the media purge runs once a day and only acts on the first of
// the month.
type Runner struct {
	ingestor   Job
	summarizer Job
	purger     Job
	logger     *logger.Logger
}

func NewRunner(ingestor, summarizer, purger Job, logger *logger.Logger) *Runner {
	return &Runner{
		ingestor:   ingestor,
		summarizer: summarizer,
		purger:     purger,
		logger:     logger,
	}
}

// Start launches the job loops. They stop when ctx is cancelled.
func (r *Runner) Start(ctx context.Context) {
	go r.legalLoop(ctx)
	go r.purgeLoop(ctx)
}

func (r *Runner) legalLoop(ctx context.Context) {
	ticker := time.NewTicker(legalJobInterval)
	defer ticker.Stop()

	r.runLegalPass(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.runLegalPass(ctx)
		}
	}
}

func (r *Runner) runLegalPass(ctx context.Context) {
	if _, err := r.ingestor.Run(ctx); err != nil {
		r.logger.Error("Legal ingest job failed: %v", err)
	}
	if _, err := r.summarizer.Run(ctx); err != nil {
		r.logger.Error("Summarizer job failed: %v", err)
	}
}

func (r *Runner) purgeLoop(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if now.Day() != 1 {
				continue
			}
			if _, err := r.purger.Run(ctx); err != nil {
				r.logger.Error("Media purge job failed: %v", err)
			}
		}
	}
}

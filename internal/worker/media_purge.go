package worker

import (
	"context"
	"time"

	"batilink/internal/usecase"
	"batilink/pkg/logger"
)

const (
	orphanRetention = 30 * 24 * time.Hour
	purgeBatchSize  = 200
)

// MediaPurger deletes media assets that were uploaded but never attached
// to any content within the retention window.
type MediaPurger struct {
	mediaUseCase usecase.MediaUseCase
	logger       *logger.Logger
}

func NewMediaPurger(mediaUseCase usecase.MediaUseCase, logger *logger.Logger) *MediaPurger {
	return &MediaPurger{mediaUseCase: mediaUseCase, logger: logger}
}

func (w *MediaPurger) Run(ctx context.Context) (int, error) {
	purged, err := w.mediaUseCase.PurgeOrphans(time.Now().Add(-orphanRetention), purgeBatchSize)
	if err != nil {
		return 0, err
	}
	if purged > 0 {
		w.logger.Info("Purged %d orphan media assets", purged)
	}
	return purged, nil
}

package usecase

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"batilink/internal/entity"
	"batilink/internal/repo/persistent"
	"batilink/pkg/logger"

	"github.com/google/uuid"
)

// FileStorage is the subset of the S3 client the media flows need.
type FileStorage interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
	DeleteFile(key string) error
	KeyFromURL(rawURL string) string
}

type UploadMediaInput struct {
	FileName    string
	ContentType string
	SizeBytes   int64
	Reader      io.Reader
}

type MediaUseCase interface {
	Upload(userID string, in UploadMediaInput) (*entity.MediaAsset, error)
	ListMine(userID string, limit, offset int) ([]entity.MediaAsset, error)
	PurgeOrphans(cutoff time.Time, limit int) (int, error)
}

type mediaUseCase struct {
	mediaRepo persistent.MediaRepository
	storage   FileStorage
	logger    *logger.Logger
}

func NewMediaUseCase(mediaRepo persistent.MediaRepository, storage FileStorage, logger *logger.Logger) MediaUseCase {
	return &mediaUseCase{mediaRepo: mediaRepo, storage: storage, logger: logger}
}

func (uc *mediaUseCase) Upload(userID string, in UploadMediaInput) (*entity.MediaAsset, error) {
	total, err := uc.mediaRepo.CountByOwner(userID)
	if err != nil {
		return nil, err
	}
	if total >= mediaQuota {
		return nil, ErrMediaQuotaExceeded
	}

	key := fmt.Sprintf("media/%s/%s%s", userID, uuid.New().String(), filepath.Ext(in.FileName))
	url, err := uc.storage.UploadFile(key, in.Reader, in.ContentType)
	if err != nil {
		return nil, err
	}

	asset := &entity.MediaAsset{
		OwnerID:         userID,
		URL:             url,
		Kind:            entity.MediaKindFromMime(in.ContentType),
		MimeType:        in.ContentType,
		SizeBytes:       in.SizeBytes,
		StorageProvider: "s3",
		CreatedAt:       time.Now(),
	}
	if err := uc.mediaRepo.Create(asset); err != nil {
		// Orphaned object, the purge job will reclaim it.
		uc.logger.Warn("media row creation failed after upload, key=%s: %v", key, err)
		return nil, err
	}
	return asset, nil
}

func (uc *mediaUseCase) ListMine(userID string, limit, offset int) ([]entity.MediaAsset, error) {
	return uc.mediaRepo.ListByOwner(userID, limit, offset)
}

// PurgeOrphans deletes unreferenced assets created before cutoff, object
// first, row second. A failed object delete keeps the row so the next run
// retries it.
func (uc *mediaUseCase) PurgeOrphans(cutoff time.Time, limit int) (int, error) {
	orphans, err := uc.mediaRepo.ListOrphansBefore(cutoff, limit)
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, asset := range orphans {
		if key := uc.storage.KeyFromURL(asset.URL); key != "" {
			if err := uc.storage.DeleteFile(key); err != nil {
				uc.logger.Warn("failed to delete orphan object %s: %v", key, err)
				continue
			}
		}
		if err := uc.mediaRepo.Delete(asset.ID); err != nil {
			uc.logger.Warn("failed to delete orphan row %s: %v", asset.ID, err)
			continue
		}
		purged++
	}
	return purged, nil
}

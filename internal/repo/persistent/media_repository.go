package persistent

import (
	"time"

	"batilink/internal/entity"
	"batilink/internal/model"

	"gorm.io/gorm"
)

type MediaRepository interface {
	Create(asset *entity.MediaAsset) error
	GetByIDs(ids []string) ([]entity.MediaAsset, error)
	ListByOwner(ownerID string, limit, offset int) ([]entity.MediaAsset, error)
	CountByOwner(ownerID string) (int64, error)
	Delete(id string) error

	LoadForContents(contentIDs []string) (map[string][]entity.MediaView, error)
	LinksForContent(contentID string) ([]entity.ContentMedia, error)
	LinkExists(contentID, mediaID string) (bool, error)
	DeleteLink(contentID, mediaID string) error
	ClearCovers(contentID string) error
	SetLinkPosition(linkID string, sortOrder int, isCover bool) error
	SetSortOrderByMedia(contentID, mediaID string, sortOrder int) error
	SetCoverByMedia(contentID, mediaID string) error

	ListOrphansBefore(cutoff time.Time, limit int) ([]entity.MediaAsset, error)
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(asset *entity.MediaAsset) error {
	assetModel := ToMediaAssetModel(asset)
	if err := r.db.Create(assetModel).Error; err != nil {
		return err
	}
	*asset = *ToMediaAssetEntity(assetModel)
	return nil
}

func (r *mediaRepository) GetByIDs(ids []string) ([]entity.MediaAsset, error) {
	if len(ids) == 0 {
		return []entity.MediaAsset{}, nil
	}

	var assetModels []model.MediaAssetModel
	if err := r.db.Where("id IN ?", ids).Find(&assetModels).Error; err != nil {
		return nil, err
	}

	assets := make([]entity.MediaAsset, len(assetModels))
	for i := range assetModels {
		assets[i] = *ToMediaAssetEntity(&assetModels[i])
	}
	return assets, nil
}

func (r *mediaRepository) ListByOwner(ownerID string, limit, offset int) ([]entity.MediaAsset, error) {
	var assetModels []model.MediaAssetModel
	query := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&assetModels).Error; err != nil {
		return nil, err
	}

	assets := make([]entity.MediaAsset, len(assetModels))
	for i := range assetModels {
		assets[i] = *ToMediaAssetEntity(&assetModels[i])
	}
	return assets, nil
}

func (r *mediaRepository) CountByOwner(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.MediaAssetModel{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (r *mediaRepository) Delete(id string) error {
	return r.db.Delete(&model.MediaAssetModel{}, "id = ?", id).Error
}

// mediaViewRow is the flattened join of content_media and media_assets used
// by the bulk loader.
type mediaViewRow struct {
	ID              string    `gorm:"column:id"`
	OwnerID         string    `gorm:"column:owner_id"`
	URL             string    `gorm:"column:url"`
	Kind            string    `gorm:"column:type"`
	MimeType        string    `gorm:"column:mime_type"`
	Width           int       `gorm:"column:width"`
	Height          int       `gorm:"column:height"`
	SizeBytes       int64     `gorm:"column:size_bytes"`
	StorageProvider string    `gorm:"column:storage_provider"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	ContentID       string    `gorm:"column:content_id"`
	SortOrder       int       `gorm:"column:sort_order"`
	IsCover         bool      `gorm:"column:is_cover"`
}

// LoadForContents bulk-loads the media attached to the given content IDs in
// one query. An empty input returns an empty map without touching the store.
func (r *mediaRepository) LoadForContents(contentIDs []string) (map[string][]entity.MediaView, error) {
	byContent := make(map[string][]entity.MediaView)
	if len(contentIDs) == 0 {
		return byContent, nil
	}

	var rows []mediaViewRow
	err := r.db.Table("content_media").
		Select("media_assets.id, media_assets.owner_id, media_assets.url, media_assets.type, media_assets.mime_type, media_assets.width, media_assets.height, media_assets.size_bytes, media_assets.storage_provider, media_assets.created_at, content_media.content_id, content_media.sort_order, content_media.is_cover").
		Joins("INNER JOIN media_assets ON media_assets.id = content_media.media_id").
		Where("content_media.content_id IN ?", contentIDs).
		Order("content_media.sort_order ASC, media_assets.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		byContent[row.ContentID] = append(byContent[row.ContentID], entity.MediaView{
			MediaAsset: entity.MediaAsset{
				ID:              row.ID,
				OwnerID:         row.OwnerID,
				URL:             row.URL,
				Kind:            entity.MediaKind(row.Kind),
				MimeType:        row.MimeType,
				Width:           row.Width,
				Height:          row.Height,
				SizeBytes:       row.SizeBytes,
				StorageProvider: row.StorageProvider,
				CreatedAt:       row.CreatedAt,
			},
			ContentID: row.ContentID,
			SortOrder: row.SortOrder,
			IsCover:   row.IsCover,
		})
	}
	return byContent, nil
}

func (r *mediaRepository) LinksForContent(contentID string) ([]entity.ContentMedia, error) {
	var linkModels []model.ContentMediaModel
	err := r.db.Where("content_id = ?", contentID).Order("sort_order ASC").Find(&linkModels).Error
	if err != nil {
		return nil, err
	}

	links := make([]entity.ContentMedia, len(linkModels))
	for i := range linkModels {
		links[i] = *ToContentMediaEntity(&linkModels[i])
	}
	return links, nil
}

func (r *mediaRepository) LinkExists(contentID, mediaID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.ContentMediaModel{}).
		Where("content_id = ? AND media_id = ?", contentID, mediaID).
		Count(&count).Error
	return count > 0, err
}

func (r *mediaRepository) DeleteLink(contentID, mediaID string) error {
	return r.db.Where("content_id = ? AND media_id = ?", contentID, mediaID).
		Delete(&model.ContentMediaModel{}).Error
}

func (r *mediaRepository) ClearCovers(contentID string) error {
	return r.db.Model(&model.ContentMediaModel{}).
		Where("content_id = ?", contentID).
		Update("is_cover", false).Error
}

func (r *mediaRepository) SetLinkPosition(linkID string, sortOrder int, isCover bool) error {
	return r.db.Model(&model.ContentMediaModel{}).
		Where("id = ?", linkID).
		Updates(map[string]interface{}{"sort_order": sortOrder, "is_cover": isCover}).Error
}

func (r *mediaRepository) SetSortOrderByMedia(contentID, mediaID string, sortOrder int) error {
	return r.db.Model(&model.ContentMediaModel{}).
		Where("content_id = ? AND media_id = ?", contentID, mediaID).
		Update("sort_order", sortOrder).Error
}

func (r *mediaRepository) SetCoverByMedia(contentID, mediaID string) error {
	return r.db.Model(&model.ContentMediaModel{}).
		Where("content_id = ? AND media_id = ?", contentID, mediaID).
		Update("is_cover", true).Error
}

// ListOrphansBefore returns media assets created before cutoff that no
// content references, for the purge job.
func (r *mediaRepository) ListOrphansBefore(cutoff time.Time, limit int) ([]entity.MediaAsset, error) {
	var assetModels []model.MediaAssetModel
	query := r.db.
		Where("created_at < ?", cutoff).
		Where("NOT EXISTS (SELECT 1 FROM content_media WHERE content_media.media_id = media_assets.id)").
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&assetModels).Error; err != nil {
		return nil, err
	}

	assets := make([]entity.MediaAsset, len(assetModels))
	for i := range assetModels {
		assets[i] = *ToMediaAssetEntity(&assetModels[i])
	}
	return assets, nil
}

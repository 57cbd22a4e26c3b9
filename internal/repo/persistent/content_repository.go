package persistent

import (
	"batilink/internal/entity"
	"batilink/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedQuery carries the already-sanitized filter conjunction for one feed
// page. IDs, when non-nil, restricts the result to the content IDs resolved
// from a tag filter.
type FeedQuery struct {
	Kind      string
	IDs       []string
	CompanyID string
	AuthorID  string
	Search    string
	Limit     int
	Offset    int
}

type ContentRepository interface {
	Create(content *entity.Content, tagIDs, mediaIDs []string) error
	GetByID(id string) (*entity.Content, error)
	Feed(q FeedQuery) ([]entity.Content, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

// Create inserts the content row together with its tag links and media links
// in a single transaction. Media links get dense sort orders in the order
// given, with the first entry as cover.
func (r *contentRepository) Create(content *entity.Content, tagIDs, mediaIDs []string) error {
	contentModel := ToContentModel(content)
	if contentModel.ID == "" {
		contentModel.ID = uuid.New().String()
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(contentModel).Error; err != nil {
			return err
		}

		for _, tagID := range tagIDs {
			link := &model.TagLinkModel{
				ID:         uuid.New().String(),
				TagID:      tagID,
				EntityType: entity.EntityTypeContent,
				EntityID:   contentModel.ID,
			}
			if err := tx.Create(link).Error; err != nil {
				return err
			}
		}

		for i, mediaID := range mediaIDs {
			link := &model.ContentMediaModel{
				ID:        uuid.New().String(),
				ContentID: contentModel.ID,
				MediaID:   mediaID,
				SortOrder: i,
				IsCover:   i == 0,
			}
			if err := tx.Create(link).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	*content = *ToContentEntity(contentModel)
	return nil
}

func (r *contentRepository) GetByID(id string) (*entity.Content, error) {
	var contentModel model.ContentModel
	if err := r.db.Where("id = ?", id).First(&contentModel).Error; err != nil {
		return nil, err
	}
	return ToContentEntity(&contentModel), nil
}

func (r *contentRepository) Feed(q FeedQuery) ([]entity.Content, error) {
	query := r.db.Model(&model.ContentModel{}).Where("is_public = ?", true)

	if q.IDs != nil {
		query = query.Where("id IN ?", q.IDs)
	}
	if q.Kind != "" {
		query = query.Where("type = ?", q.Kind)
	}
	if q.CompanyID != "" {
		query = query.Where("company_id = ?", q.CompanyID)
	}
	if q.AuthorID != "" {
		query = query.Where("author_user_id = ?", q.AuthorID)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("title ILIKE ? OR body ILIKE ?", pattern, pattern)
	}

	var contentModels []model.ContentModel
	err := query.Order("created_at DESC").Limit(q.Limit).Offset(q.Offset).Find(&contentModels).Error
	if err != nil {
		return nil, err
	}

	rows := make([]entity.Content, len(contentModels))
	for i := range contentModels {
		rows[i] = *ToContentEntity(&contentModels[i])
	}
	return rows, nil
}

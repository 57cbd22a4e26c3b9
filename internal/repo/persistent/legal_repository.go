package persistent

import (
	"batilink/internal/entity"
	"batilink/internal/model"

	"gorm.io/gorm"
)

type LegalRepository interface {
	Create(article *entity.LegalArticle) error
	GetByID(id string) (*entity.LegalArticle, error)
	ExistsBySourceURL(sourceURL string) (bool, error)
	ListPublic(limit, offset int) ([]entity.LegalArticle, error)
	ListByStatus(status entity.LegalArticleStatus, limit int) ([]entity.LegalArticle, error)
	SetSummary(id, summary string) error
}

type legalRepository struct {
	db *gorm.DB
}

func NewLegalRepository(db *gorm.DB) LegalRepository {
	return &legalRepository{db: db}
}

func (r *legalRepository) Create(article *entity.LegalArticle) error {
	articleModel := ToLegalArticleModel(article)
	if err := r.db.Create(articleModel).Error; err != nil {
		return err
	}
	*article = *ToLegalArticleEntity(articleModel)
	return nil
}

func (r *legalRepository) GetByID(id string) (*entity.LegalArticle, error) {
	var articleModel model.LegalArticleModel
	if err := r.db.Where("id = ?", id).First(&articleModel).Error; err != nil {
		return nil, err
	}
	return ToLegalArticleEntity(&articleModel), nil
}

func (r *legalRepository) ExistsBySourceURL(sourceURL string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LegalArticleModel{}).
		Where("source_url = ?", sourceURL).
		Count(&count).Error
	return count > 0, err
}

// ListPublic returns summarized or editor-published articles, newest first.
func (r *legalRepository) ListPublic(limit, offset int) ([]entity.LegalArticle, error) {
	var articleModels []model.LegalArticleModel
	query := r.db.Where("status IN ?", []string{
		string(entity.LegalProcessed),
		string(entity.LegalReady),
	}).Order("published_at DESC NULLS LAST, created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&articleModels).Error; err != nil {
		return nil, err
	}

	articles := make([]entity.LegalArticle, len(articleModels))
	for i := range articleModels {
		articles[i] = *ToLegalArticleEntity(&articleModels[i])
	}
	return articles, nil
}

func (r *legalRepository) ListByStatus(status entity.LegalArticleStatus, limit int) ([]entity.LegalArticle, error) {
	var articleModels []model.LegalArticleModel
	query := r.db.Where("status = ?", string(status)).Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&articleModels).Error; err != nil {
		return nil, err
	}

	articles := make([]entity.LegalArticle, len(articleModels))
	for i := range articleModels {
		articles[i] = *ToLegalArticleEntity(&articleModels[i])
	}
	return articles, nil
}

func (r *legalRepository) SetSummary(id, summary string) error {
	return r.db.Model(&model.LegalArticleModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"ai_summary": summary,
			"status":     string(entity.LegalProcessed),
		}).Error
}

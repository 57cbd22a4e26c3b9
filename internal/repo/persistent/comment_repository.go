package persistent

import (
	"batilink/internal/entity"
	"batilink/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	ListByContent(contentID string, limit, offset int) ([]entity.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) ListByContent(contentID string, limit, offset int) ([]entity.Comment, error) {
	var commentModels []model.CommentModel
	query := r.db.Where("content_id = ?", contentID).Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&commentModels).Error; err != nil {
		return nil, err
	}

	comments := make([]entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = *ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

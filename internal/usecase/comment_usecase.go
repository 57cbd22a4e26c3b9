package usecase

import (
	"errors"
	"strings"
	"time"

	"batilink/internal/entity"
	"batilink/internal/repo/persistent"

	"gorm.io/gorm"
)

type CommentUseCase interface {
	CreateComment(contentID, userID, body, parentCommentID string) (*entity.Comment, error)
	ListComments(contentID string, limit, offset int) ([]entity.Comment, error)
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	contentRepo persistent.ContentRepository
}

func NewCommentUseCase(commentRepo persistent.CommentRepository, contentRepo persistent.ContentRepository) CommentUseCase {
	return &commentUseCase{commentRepo: commentRepo, contentRepo: contentRepo}
}

func (uc *commentUseCase) CreateComment(contentID, userID, body, parentCommentID string) (*entity.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyBody
	}

	if _, err := uc.contentRepo.GetByID(contentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := &entity.Comment{
		ContentID:       contentID,
		AuthorUserID:    userID,
		Body:            body,
		ParentCommentID: parentCommentID,
		CreatedAt:       time.Now(),
	}
	if err := uc.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (uc *commentUseCase) ListComments(contentID string, limit, offset int) ([]entity.Comment, error) {
	return uc.commentRepo.ListByContent(contentID, limit, offset)
}

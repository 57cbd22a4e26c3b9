package usecase

import (
	"errors"
	"strings"
	"time"

	"batilink/internal/entity"
	"batilink/internal/repo/persistent"

	"gorm.io/gorm"
)

type IngestArticleInput struct {
	Title       string
	Body        string
	RawContent  string
	Source      string
	SourceURL   string
	PublishedAt *time.Time
}

type LegalUseCase interface {
	ListPublicArticles(limit, offset int) ([]entity.LegalArticle, error)
	GetArticle(id string) (*entity.LegalArticle, error)
	// IngestArticle stores a fetched article unless its source URL is
	// already known. The bool reports whether a row was created.
	IngestArticle(in IngestArticleInput) (*entity.LegalArticle, bool, error)
	PendingArticles(limit int) ([]entity.LegalArticle, error)
	SaveSummary(id, summary string) error
}

type legalUseCase struct {
	legalRepo persistent.LegalRepository
}

func NewLegalUseCase(legalRepo persistent.LegalRepository) LegalUseCase {
	return &legalUseCase{legalRepo: legalRepo}
}

func (uc *legalUseCase) ListPublicArticles(limit, offset int) ([]entity.LegalArticle, error) {
	return uc.legalRepo.ListPublic(limit, offset)
}

func (uc *legalUseCase) GetArticle(id string) (*entity.LegalArticle, error) {
	article, err := uc.legalRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return article, nil
}

func (uc *legalUseCase) IngestArticle(in IngestArticleInput) (*entity.LegalArticle, bool, error) {
	sourceURL := strings.TrimSpace(in.SourceURL)
	if sourceURL != "" {
		exists, err := uc.legalRepo.ExistsBySourceURL(sourceURL)
		if err != nil {
			return nil, false, err
		}
		if exists {
			return nil, false, nil
		}
	}

	article := &entity.LegalArticle{
		Title:         in.Title,
		Body:          in.Body,
		RawContent:    in.RawContent,
		Source:        in.Source,
		SourceURL:     sourceURL,
		PublishedAt:   in.PublishedAt,
		AutoGenerated: true,
		Status:        entity.LegalIngested,
		CreatedAt:     time.Now(),
	}
	if err := uc.legalRepo.Create(article); err != nil {
		return nil, false, err
	}
	return article, true, nil
}

func (uc *legalUseCase) PendingArticles(limit int) ([]entity.LegalArticle, error) {
	return uc.legalRepo.ListByStatus(entity.LegalIngested, limit)
}

func (uc *legalUseCase) SaveSummary(id, summary string) error {
	return uc.legalRepo.SetSummary(id, summary)
}

package usecase

import (
	"errors"
	"time"

	"batilink/internal/entity"
	"batilink/internal/feedcache"
	"batilink/internal/repo/persistent"

	"gorm.io/gorm"
)

type TagUseCase interface {
	ListTags(tagType string) ([]entity.Tag, error)
	CreateTag(slug, label, tagType string) (*entity.Tag, error)
	LinkTag(tagID, entityType, entityID string) (*entity.TagLink, error)
	UnlinkTag(linkID string) error
	EntitiesForTag(tagID string) ([]entity.TagLink, error)
}

type tagUseCase struct {
	tagRepo   persistent.TagRepository
	feedCache *feedcache.Cache
}

func NewTagUseCase(tagRepo persistent.TagRepository, feedCache *feedcache.Cache) TagUseCase {
	return &tagUseCase{tagRepo: tagRepo, feedCache: feedCache}
}

func (uc *tagUseCase) ListTags(tagType string) ([]entity.Tag, error) {
	return uc.tagRepo.List(tagType)
}

func (uc *tagUseCase) CreateTag(slug, label, tagType string) (*entity.Tag, error) {
	tag := &entity.Tag{
		Slug:      slug,
		Label:     label,
		Type:      tagType,
		CreatedAt: time.Now(),
	}
	if err := uc.tagRepo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (uc *tagUseCase) LinkTag(tagID, entityType, entityID string) (*entity.TagLink, error) {
	link := &entity.TagLink{
		TagID:      tagID,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if err := uc.tagRepo.CreateLink(link); err != nil {
		return nil, err
	}

	// Tagging content changes what a tag-filtered feed returns.
	if entityType == entity.EntityTypeContent {
		uc.feedCache.Invalidate()
	}

	return link, nil
}

func (uc *tagUseCase) UnlinkTag(linkID string) error {
	link, err := uc.tagRepo.DeleteLink(linkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if link.EntityType == entity.EntityTypeContent {
		uc.feedCache.Invalidate()
	}

	return nil
}

func (uc *tagUseCase) EntitiesForTag(tagID string) ([]entity.TagLink, error) {
	return uc.tagRepo.LinksForTag(tagID)
}

package usecase

import (
	"testing"

	"batilink/internal/entity"
	"batilink/internal/feedcache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func primedFeedCache() (*feedcache.Cache, string) {
	cache := feedcache.New(feedcache.DefaultTTL)
	key := feedcache.Key(feedcache.FeedFilters{Page: 1, PageSize: 20})
	cache.Set(key, &entity.FeedPage{Page: 1, PageSize: 20, Items: []entity.ContentView{}})
	return cache, key
}

func TestLinkTag_ContentLinkInvalidatesFeedCache(t *testing.T) {
	tagRepo := new(MockTagRepository)
	cache, key := primedFeedCache()
	uc := NewTagUseCase(tagRepo, cache)

	tagRepo.On("CreateLink", mock.Anything).Return(nil)

	_, err := uc.LinkTag("tag-1", entity.EntityTypeContent, "content-1")

	assert.NoError(t, err)
	_, hit := cache.Get(key)
	assert.False(t, hit)
}

func TestLinkTag_NonContentLinkKeepsFeedCache(t *testing.T) {
	tagRepo := new(MockTagRepository)
	cache, key := primedFeedCache()
	uc := NewTagUseCase(tagRepo, cache)

	tagRepo.On("CreateLink", mock.Anything).Return(nil)

	_, err := uc.LinkTag("tag-1", "COMPANY", "company-1")

	assert.NoError(t, err)
	_, hit := cache.Get(key)
	assert.True(t, hit)
}

func TestUnlinkTag_ContentLinkInvalidatesFeedCache(t *testing.T) {
	tagRepo := new(MockTagRepository)
	cache, key := primedFeedCache()
	uc := NewTagUseCase(tagRepo, cache)

	tagRepo.On("DeleteLink", "link-1").Return(&entity.TagLink{
		ID:         "link-1",
		TagID:      "tag-1",
		EntityType: entity.EntityTypeContent,
		EntityID:   "content-1",
	}, nil)

	err := uc.UnlinkTag("link-1")

	assert.NoError(t, err)
	_, hit := cache.Get(key)
	assert.False(t, hit)
}

func TestUnlinkTag_NonContentLinkKeepsFeedCache(t *testing.T) {
	tagRepo := new(MockTagRepository)
	cache, key := primedFeedCache()
	uc := NewTagUseCase(tagRepo, cache)

	tagRepo.On("DeleteLink", "link-1").Return(&entity.TagLink{
		ID:         "link-1",
		TagID:      "tag-1",
		EntityType: "USER",
		EntityID:   "user-1",
	}, nil)

	err := uc.UnlinkTag("link-1")

	assert.NoError(t, err)
	_, hit := cache.Get(key)
	assert.True(t, hit)
}

func TestUnlinkTag_NotFound(t *testing.T) {
	tagRepo := new(MockTagRepository)
	cache, _ := primedFeedCache()
	uc := NewTagUseCase(tagRepo, cache)

	tagRepo.On("DeleteLink", "missing").Return(nil, gorm.ErrRecordNotFound)

	err := uc.UnlinkTag("missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

package usecase

import (
	"testing"
	"time"

	"batilink/internal/entity"
	"batilink/internal/feedcache"
	"batilink/internal/repo/persistent"
	"batilink/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockContentRepository is a mock implementation of persistent.ContentRepository
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) Create(content *entity.Content, tagIDs, mediaIDs []string) error {
	args := m.Called(content, tagIDs, mediaIDs)
	return args.Error(0)
}

func (m *MockContentRepository) GetByID(id string) (*entity.Content, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Content), args.Error(1)
}

func (m *MockContentRepository) Feed(q persistent.FeedQuery) ([]entity.Content, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Content), args.Error(1)
}

var _ persistent.ContentRepository = (*MockContentRepository)(nil)

// MockTagRepository is a mock implementation of persistent.TagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) List(tagType string) ([]entity.Tag, error) {
	args := m.Called(tagType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Tag), args.Error(1)
}

func (m *MockTagRepository) Create(tag *entity.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *MockTagRepository) CreateLink(link *entity.TagLink) error {
	args := m.Called(link)
	return args.Error(0)
}

func (m *MockTagRepository) DeleteLink(id string) (*entity.TagLink, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TagLink), args.Error(1)
}

func (m *MockTagRepository) LinksForTag(tagID string) ([]entity.TagLink, error) {
	args := m.Called(tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TagLink), args.Error(1)
}

func (m *MockTagRepository) ContentIDsForTags(tagIDs []string) ([]string, error) {
	args := m.Called(tagIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTagRepository) LoadForContents(contentIDs []string) (map[string][]entity.TagView, error) {
	args := m.Called(contentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]entity.TagView), args.Error(1)
}

var _ persistent.TagRepository = (*MockTagRepository)(nil)

// MockMediaRepository is a mock implementation of persistent.MediaRepository
type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) Create(asset *entity.MediaAsset) error {
	args := m.Called(asset)
	return args.Error(0)
}

func (m *MockMediaRepository) GetByIDs(ids []string) ([]entity.MediaAsset, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.MediaAsset), args.Error(1)
}

func (m *MockMediaRepository) ListByOwner(ownerID string, limit, offset int) ([]entity.MediaAsset, error) {
	args := m.Called(ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.MediaAsset), args.Error(1)
}

func (m *MockMediaRepository) CountByOwner(ownerID string) (int64, error) {
	args := m.Called(ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMediaRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMediaRepository) LoadForContents(contentIDs []string) (map[string][]entity.MediaView, error) {
	args := m.Called(contentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]entity.MediaView), args.Error(1)
}

func (m *MockMediaRepository) LinksForContent(contentID string) ([]entity.ContentMedia, error) {
	args := m.Called(contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ContentMedia), args.Error(1)
}

func (m *MockMediaRepository) LinkExists(contentID, mediaID string) (bool, error) {
	args := m.Called(contentID, mediaID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMediaRepository) DeleteLink(contentID, mediaID string) error {
	args := m.Called(contentID, mediaID)
	return args.Error(0)
}

func (m *MockMediaRepository) ClearCovers(contentID string) error {
	args := m.Called(contentID)
	return args.Error(0)
}

func (m *MockMediaRepository) SetLinkPosition(linkID string, sortOrder int, isCover bool) error {
	args := m.Called(linkID, sortOrder, isCover)
	return args.Error(0)
}

func (m *MockMediaRepository) SetSortOrderByMedia(contentID, mediaID string, sortOrder int) error {
	args := m.Called(contentID, mediaID, sortOrder)
	return args.Error(0)
}

func (m *MockMediaRepository) SetCoverByMedia(contentID, mediaID string) error {
	args := m.Called(contentID, mediaID)
	return args.Error(0)
}

func (m *MockMediaRepository) ListOrphansBefore(cutoff time.Time, limit int) ([]entity.MediaAsset, error) {
	args := m.Called(cutoff, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.MediaAsset), args.Error(1)
}

var _ persistent.MediaRepository = (*MockMediaRepository)(nil)

func newTestContentUseCase() (ContentUseCase, *MockContentRepository, *MockTagRepository, *MockMediaRepository) {
	contentRepo := new(MockContentRepository)
	tagRepo := new(MockTagRepository)
	mediaRepo := new(MockMediaRepository)
	uc := NewContentUseCase(contentRepo, tagRepo, mediaRepo, feedcache.New(feedcache.DefaultTTL), logger.New())
	return uc, contentRepo, tagRepo, mediaRepo
}

func makeContentRows(n int) []entity.Content {
	rows := make([]entity.Content, n)
	for i := range rows {
		rows[i] = entity.Content{
			ID:           "content-" + string(rune('a'+i)),
			Kind:         entity.KindPost,
			AuthorUserID: "author-1",
			Title:        "Post",
			IsPublic:     true,
		}
	}
	return rows
}

func TestQueryFeed_HasMoreWhenExtraRowReturned(t *testing.T) {
	uc, contentRepo, tagRepo, mediaRepo := newTestContentUseCase()

	rows := makeContentRows(4)
	contentRepo.On("Feed", persistent.FeedQuery{Limit: 4, Offset: 0}).Return(rows, nil)
	mediaRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.MediaView{}, nil)
	tagRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.TagView{}, nil)

	page, err := uc.QueryFeed(feedcache.FeedFilters{Page: 1, PageSize: 3})

	assert.NoError(t, err)
	assert.True(t, page.HasMore)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.PageSize)
	contentRepo.AssertExpectations(t)
}

func TestQueryFeed_LastPageHasNoMore(t *testing.T) {
	uc, contentRepo, tagRepo, mediaRepo := newTestContentUseCase()

	rows := makeContentRows(2)
	contentRepo.On("Feed", persistent.FeedQuery{Limit: 4, Offset: 3}).Return(rows, nil)
	mediaRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.MediaView{}, nil)
	tagRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.TagView{}, nil)

	page, err := uc.QueryFeed(feedcache.FeedFilters{Page: 2, PageSize: 3})

	assert.NoError(t, err)
	assert.False(t, page.HasMore)
	assert.Len(t, page.Items, 2)
}

func TestQueryFeed_SecondIdenticalQueryServedFromCache(t *testing.T) {
	uc, contentRepo, tagRepo, mediaRepo := newTestContentUseCase()

	contentRepo.On("Feed", mock.Anything).Return(makeContentRows(1), nil).Once()
	mediaRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.MediaView{}, nil).Once()
	tagRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.TagView{}, nil).Once()

	first, err := uc.QueryFeed(feedcache.FeedFilters{Kind: string(entity.KindPost)})
	assert.NoError(t, err)

	second, err := uc.QueryFeed(feedcache.FeedFilters{Kind: string(entity.KindPost)})
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	contentRepo.AssertNumberOfCalls(t, "Feed", 1)
}

func TestQueryFeed_TagFilterWithNoMatchesSkipsContentQuery(t *testing.T) {
	uc, contentRepo, tagRepo, _ := newTestContentUseCase()

	tagID := "11111111-2222-3333-4444-555555555555"
	tagRepo.On("ContentIDsForTags", []string{tagID}).Return([]string{}, nil)

	page, err := uc.QueryFeed(feedcache.FeedFilters{TagIDs: []string{tagID}})

	assert.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)
	contentRepo.AssertNotCalled(t, "Feed", mock.Anything)

	// The empty answer must not stick in the cache.
	_, err = uc.QueryFeed(feedcache.FeedFilters{TagIDs: []string{tagID}})
	assert.NoError(t, err)
	tagRepo.AssertNumberOfCalls(t, "ContentIDsForTags", 2)
}

func TestQueryFeed_MalformedTagIDsDroppedSilently(t *testing.T) {
	uc, contentRepo, tagRepo, mediaRepo := newTestContentUseCase()

	contentRepo.On("Feed", persistent.FeedQuery{Limit: 21, Offset: 0}).Return(makeContentRows(1), nil)
	mediaRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.MediaView{}, nil)
	tagRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.TagView{}, nil)

	_, err := uc.QueryFeed(feedcache.FeedFilters{TagIDs: []string{"not-a-uuid", ""}, PageSize: 20})

	assert.NoError(t, err)
	tagRepo.AssertNotCalled(t, "ContentIDsForTags", mock.Anything)
}

func TestQueryFeed_ZeroPageSizeClampedToOne(t *testing.T) {
	uc, contentRepo, tagRepo, mediaRepo := newTestContentUseCase()

	contentRepo.On("Feed", persistent.FeedQuery{Limit: 2, Offset: 0}).Return(makeContentRows(2), nil)
	mediaRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.MediaView{}, nil)
	tagRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.TagView{}, nil)

	page, err := uc.QueryFeed(feedcache.FeedFilters{PageSize: 0})

	assert.NoError(t, err)
	assert.Equal(t, 1, page.PageSize)
	assert.True(t, page.HasMore)
	assert.Len(t, page.Items, 1)
	contentRepo.AssertExpectations(t)
}

func TestQueryFeed_PageSizeClampedToMax(t *testing.T) {
	uc, contentRepo, tagRepo, mediaRepo := newTestContentUseCase()

	contentRepo.On("Feed", persistent.FeedQuery{Limit: 101, Offset: 0}).Return(makeContentRows(0), nil)
	mediaRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.MediaView{}, nil)
	tagRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.TagView{}, nil)

	page, err := uc.QueryFeed(feedcache.FeedFilters{PageSize: 5000})

	assert.NoError(t, err)
	assert.Equal(t, 100, page.PageSize)
	contentRepo.AssertExpectations(t)
}

func TestCreatePost_RejectsEmptyPost(t *testing.T) {
	uc, _, _, _ := newTestContentUseCase()

	_, err := uc.CreatePost("user-1", CreatePostInput{})

	assert.ErrorIs(t, err, ErrMissingContent)
}

func TestCreatePost_RejectsUnknownMediaID(t *testing.T) {
	uc, _, _, mediaRepo := newTestContentUseCase()

	mediaRepo.On("CountByOwner", "user-1").Return(int64(3), nil)
	mediaRepo.On("GetByIDs", []string{"m1", "m2"}).Return([]entity.MediaAsset{{ID: "m1"}}, nil)

	_, err := uc.CreatePost("user-1", CreatePostInput{Title: "hello", MediaIDs: []string{"m1", "m2"}})

	assert.ErrorIs(t, err, ErrInvalidMediaID)
}

func TestCreatePost_InvalidatesFeedCache(t *testing.T) {
	uc, contentRepo, tagRepo, mediaRepo := newTestContentUseCase()

	contentRepo.On("Feed", mock.Anything).Return(makeContentRows(1), nil)
	mediaRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.MediaView{}, nil)
	tagRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.TagView{}, nil)

	_, err := uc.QueryFeed(feedcache.FeedFilters{})
	assert.NoError(t, err)
	contentRepo.AssertNumberOfCalls(t, "Feed", 1)

	mediaRepo.On("CountByOwner", "user-1").Return(int64(0), nil)
	contentRepo.On("Create", mock.Anything, []string(nil), []string(nil)).Return(nil)

	_, err = uc.CreatePost("user-1", CreatePostInput{Title: "fresh"})
	assert.NoError(t, err)

	_, err = uc.QueryFeed(feedcache.FeedFilters{})
	assert.NoError(t, err)
	contentRepo.AssertNumberOfCalls(t, "Feed", 2)
}

func TestGetContent_NotFound(t *testing.T) {
	uc, contentRepo, _, _ := newTestContentUseCase()

	contentRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.GetContent("missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveMedia_NotOwner(t *testing.T) {
	uc, contentRepo, _, _ := newTestContentUseCase()

	contentRepo.On("GetByID", "c1").Return(&entity.Content{ID: "c1", AuthorUserID: "someone-else"}, nil)

	_, err := uc.RemoveMedia("c1", "m1", "user-1")

	assert.ErrorIs(t, err, ErrNotAllowed)
}

func TestRemoveMedia_PromotesNewCoverAndRenumbers(t *testing.T) {
	uc, contentRepo, tagRepo, mediaRepo := newTestContentUseCase()

	contentRepo.On("GetByID", "c1").Return(&entity.Content{ID: "c1", AuthorUserID: "user-1"}, nil)
	mediaRepo.On("DeleteLink", "c1", "m1").Return(nil)
	mediaRepo.On("LinksForContent", "c1").Return([]entity.ContentMedia{
		{ID: "link-2", ContentID: "c1", MediaID: "m2", SortOrder: 1},
		{ID: "link-3", ContentID: "c1", MediaID: "m3", SortOrder: 2},
	}, nil)
	mediaRepo.On("ClearCovers", "c1").Return(nil)
	mediaRepo.On("SetLinkPosition", "link-2", 0, true).Return(nil)
	mediaRepo.On("SetLinkPosition", "link-3", 1, false).Return(nil)
	mediaRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.MediaView{}, nil)
	tagRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.TagView{}, nil)

	_, err := uc.RemoveMedia("c1", "m1", "user-1")

	assert.NoError(t, err)
	mediaRepo.AssertExpectations(t)
}

func TestRemoveMedia_LastMediaLeavesNoCover(t *testing.T) {
	uc, contentRepo, tagRepo, mediaRepo := newTestContentUseCase()

	contentRepo.On("GetByID", "c1").Return(&entity.Content{ID: "c1", AuthorUserID: "user-1"}, nil)
	mediaRepo.On("DeleteLink", "c1", "m1").Return(nil)
	mediaRepo.On("LinksForContent", "c1").Return([]entity.ContentMedia{}, nil)
	mediaRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.MediaView{}, nil)
	tagRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.TagView{}, nil)

	_, err := uc.RemoveMedia("c1", "m1", "user-1")

	assert.NoError(t, err)
	mediaRepo.AssertNotCalled(t, "ClearCovers", mock.Anything)
	mediaRepo.AssertNotCalled(t, "SetLinkPosition", mock.Anything, mock.Anything, mock.Anything)
}

func reorderFixture() (ContentUseCase, *MockContentRepository, *MockTagRepository, *MockMediaRepository) {
	uc, contentRepo, tagRepo, mediaRepo := newTestContentUseCase()
	contentRepo.On("GetByID", "c1").Return(&entity.Content{ID: "c1", AuthorUserID: "user-1"}, nil)
	mediaRepo.On("LinksForContent", "c1").Return([]entity.ContentMedia{
		{ID: "link-1", ContentID: "c1", MediaID: "m1", SortOrder: 0, IsCover: true},
		{ID: "link-2", ContentID: "c1", MediaID: "m2", SortOrder: 1},
		{ID: "link-3", ContentID: "c1", MediaID: "m3", SortOrder: 2},
	}, nil)
	return uc, contentRepo, tagRepo, mediaRepo
}

func TestReorderMedia_AppliesNewOrderWithoutTouchingCover(t *testing.T) {
	uc, _, tagRepo, mediaRepo := reorderFixture()

	mediaRepo.On("SetSortOrderByMedia", "c1", "m3", 0).Return(nil)
	mediaRepo.On("SetSortOrderByMedia", "c1", "m1", 1).Return(nil)
	mediaRepo.On("SetSortOrderByMedia", "c1", "m2", 2).Return(nil)
	mediaRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.MediaView{}, nil)
	tagRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.TagView{}, nil)

	_, err := uc.ReorderMedia("c1", []string{"m3", "m1", "m2"}, "user-1")

	assert.NoError(t, err)
	mediaRepo.AssertExpectations(t)
	mediaRepo.AssertNotCalled(t, "ClearCovers", mock.Anything)
	mediaRepo.AssertNotCalled(t, "SetCoverByMedia", mock.Anything, mock.Anything)
}

func TestReorderMedia_RejectsMissingID(t *testing.T) {
	uc, _, _, _ := reorderFixture()

	_, err := uc.ReorderMedia("c1", []string{"m1", "m2"}, "user-1")

	assert.ErrorIs(t, err, ErrInvalidMediaSet)
}

func TestReorderMedia_RejectsUnknownID(t *testing.T) {
	uc, _, _, _ := reorderFixture()

	_, err := uc.ReorderMedia("c1", []string{"m1", "m2", "m9"}, "user-1")

	assert.ErrorIs(t, err, ErrInvalidMediaSet)
}

func TestReorderMedia_RejectsDuplicateID(t *testing.T) {
	uc, _, _, _ := reorderFixture()

	_, err := uc.ReorderMedia("c1", []string{"m1", "m2", "m2"}, "user-1")

	assert.ErrorIs(t, err, ErrInvalidMediaSet)
}

func TestSetCover_RejectsUnlinkedMedia(t *testing.T) {
	uc, contentRepo, _, mediaRepo := newTestContentUseCase()

	contentRepo.On("GetByID", "c1").Return(&entity.Content{ID: "c1", AuthorUserID: "user-1"}, nil)
	mediaRepo.On("LinkExists", "c1", "m9").Return(false, nil)

	_, err := uc.SetCover("c1", "m9", "user-1")

	assert.ErrorIs(t, err, ErrMediaNotInPost)
	mediaRepo.AssertNotCalled(t, "ClearCovers", mock.Anything)
}

func TestSetCover_MovesCoverFlag(t *testing.T) {
	uc, contentRepo, tagRepo, mediaRepo := newTestContentUseCase()

	contentRepo.On("GetByID", "c1").Return(&entity.Content{ID: "c1", AuthorUserID: "user-1"}, nil)
	mediaRepo.On("LinkExists", "c1", "m2").Return(true, nil)
	mediaRepo.On("ClearCovers", "c1").Return(nil)
	mediaRepo.On("SetCoverByMedia", "c1", "m2").Return(nil)
	mediaRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.MediaView{}, nil)
	tagRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.TagView{}, nil)

	_, err := uc.SetCover("c1", "m2", "user-1")

	assert.NoError(t, err)
	mediaRepo.AssertExpectations(t)
}

func TestMediaMutationInvalidatesFeedCache(t *testing.T) {
	uc, contentRepo, tagRepo, mediaRepo := newTestContentUseCase()

	contentRepo.On("Feed", mock.Anything).Return(makeContentRows(1), nil)
	mediaRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.MediaView{}, nil)
	tagRepo.On("LoadForContents", mock.Anything).Return(map[string][]entity.TagView{}, nil)

	_, err := uc.QueryFeed(feedcache.FeedFilters{})
	assert.NoError(t, err)
	contentRepo.AssertNumberOfCalls(t, "Feed", 1)

	contentRepo.On("GetByID", "c1").Return(&entity.Content{ID: "c1", AuthorUserID: "user-1"}, nil)
	mediaRepo.On("LinkExists", "c1", "m2").Return(true, nil)
	mediaRepo.On("ClearCovers", "c1").Return(nil)
	mediaRepo.On("SetCoverByMedia", "c1", "m2").Return(nil)

	_, err = uc.SetCover("c1", "m2", "user-1")
	assert.NoError(t, err)

	_, err = uc.QueryFeed(feedcache.FeedFilters{})
	assert.NoError(t, err)
	contentRepo.AssertNumberOfCalls(t, "Feed", 2)
}

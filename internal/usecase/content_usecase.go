package usecase

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"batilink/internal/entity"
	"batilink/internal/feedcache"
	"batilink/internal/repo/persistent"
	"batilink/pkg/logger"

	"gorm.io/gorm"
)

const (
	maxPageSize = 100
	mediaQuota  = 1000
)

// uuidShape matches the 36-character identifier form used by all ID-like
// filters. Values that fail the check are dropped silently, never rejected.
var uuidShape = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)

type CreatePostInput struct {
	Title     string
	Body      string
	IsPublic  *bool
	CompanyID string
	TagIDs    []string
	MediaIDs  []string
}

type ContentUseCase interface {
	CreatePost(userID string, in CreatePostInput) (*entity.ContentView, error)
	GetContent(id string) (*entity.ContentView, error)
	QueryFeed(filters feedcache.FeedFilters) (*entity.FeedPage, error)
	RemoveMedia(contentID, mediaID, userID string) (*entity.ContentView, error)
	ReorderMedia(contentID string, orderedMediaIDs []string, userID string) (*entity.ContentView, error)
	SetCover(contentID, mediaID, userID string) (*entity.ContentView, error)
}

type contentUseCase struct {
	contentRepo persistent.ContentRepository
	tagRepo     persistent.TagRepository
	mediaRepo   persistent.MediaRepository
	feedCache   *feedcache.Cache
	logger      *logger.Logger
}

func NewContentUseCase(
	contentRepo persistent.ContentRepository,
	tagRepo persistent.TagRepository,
	mediaRepo persistent.MediaRepository,
	feedCache *feedcache.Cache,
	logger *logger.Logger,
) ContentUseCase {
	return &contentUseCase{
		contentRepo: contentRepo,
		tagRepo:     tagRepo,
		mediaRepo:   mediaRepo,
		feedCache:   feedCache,
		logger:      logger,
	}
}

func (uc *contentUseCase) CreatePost(userID string, in CreatePostInput) (*entity.ContentView, error) {
	if in.Title == "" && in.Body == "" && len(in.MediaIDs) == 0 {
		return nil, ErrMissingContent
	}

	total, err := uc.mediaRepo.CountByOwner(userID)
	if err != nil {
		return nil, err
	}
	if total >= mediaQuota {
		return nil, ErrMediaQuotaExceeded
	}

	if len(in.MediaIDs) > 0 {
		found, err := uc.mediaRepo.GetByIDs(in.MediaIDs)
		if err != nil {
			return nil, err
		}
		if len(found) != len(in.MediaIDs) {
			return nil, ErrInvalidMediaID
		}
	}

	isPublic := true
	if in.IsPublic != nil {
		isPublic = *in.IsPublic
	}

	content := &entity.Content{
		Kind:         entity.KindPost,
		AuthorUserID: userID,
		CompanyID:    in.CompanyID,
		Title:        in.Title,
		Body:         in.Body,
		IsPublic:     isPublic,
		CreatedAt:    time.Now(),
	}

	if err := uc.contentRepo.Create(content, in.TagIDs, in.MediaIDs); err != nil {
		return nil, err
	}

	uc.feedCache.Invalidate()

	return uc.enrichOne(content)
}

func (uc *contentUseCase) GetContent(id string) (*entity.ContentView, error) {
	content, err := uc.contentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return uc.enrichOne(content)
}

// QueryFeed sanitizes the filters, consults the single-slot cache, and on a
// miss runs the filter conjunction with a pageSize+1 fetch to detect hasMore.
func (uc *contentUseCase) QueryFeed(filters feedcache.FeedFilters) (*entity.FeedPage, error) {
	filters = sanitizeFeedFilters(filters)
	key := feedcache.Key(filters)

	if page, ok := uc.feedCache.Get(key); ok {
		return page, nil
	}

	var idFilter []string
	if len(filters.TagIDs) > 0 {
		ids, err := uc.tagRepo.ContentIDsForTags(filters.TagIDs)
		if err != nil {
			return nil, err
		}
		// Vacuous tag filter: answer without touching the content table.
		if len(ids) == 0 {
			return &entity.FeedPage{
				Page:     filters.Page,
				PageSize: filters.PageSize,
				HasMore:  false,
				Items:    []entity.ContentView{},
			}, nil
		}
		idFilter = ids
	}

	rows, err := uc.contentRepo.Feed(persistent.FeedQuery{
		Kind:      filters.Kind,
		IDs:       idFilter,
		CompanyID: filters.CompanyID,
		AuthorID:  filters.AuthorID,
		Search:    filters.Search,
		Limit:     filters.PageSize + 1,
		Offset:    (filters.Page - 1) * filters.PageSize,
	})
	if err != nil {
		return nil, err
	}

	hasMore := len(rows) > filters.PageSize
	if hasMore {
		rows = rows[:filters.PageSize]
	}

	items, err := uc.enrich(rows)
	if err != nil {
		return nil, err
	}

	page := &entity.FeedPage{
		Page:     filters.Page,
		PageSize: filters.PageSize,
		HasMore:  hasMore,
		Items:    items,
	}

	uc.feedCache.Set(key, page)

	return page, nil
}

func (uc *contentUseCase) RemoveMedia(contentID, mediaID, userID string) (*entity.ContentView, error) {
	content, err := uc.ownedContent(contentID, userID)
	if err != nil {
		return nil, err
	}

	if err := uc.mediaRepo.DeleteLink(contentID, mediaID); err != nil {
		return nil, err
	}

	remaining, err := uc.mediaRepo.LinksForContent(contentID)
	if err != nil {
		return nil, err
	}

	// Renumber the survivors densely; the new first link becomes cover.
	if len(remaining) > 0 {
		if err := uc.mediaRepo.ClearCovers(contentID); err != nil {
			return nil, err
		}
		for i, link := range remaining {
			if err := uc.mediaRepo.SetLinkPosition(link.ID, i, i == 0); err != nil {
				return nil, err
			}
		}
	}

	uc.feedCache.Invalidate()

	return uc.enrichOne(content)
}

func (uc *contentUseCase) ReorderMedia(contentID string, orderedMediaIDs []string, userID string) (*entity.ContentView, error) {
	content, err := uc.ownedContent(contentID, userID)
	if err != nil {
		return nil, err
	}

	links, err := uc.mediaRepo.LinksForContent(contentID)
	if err != nil {
		return nil, err
	}

	// The new order must be an exact permutation of the linked media IDs.
	if len(links) != len(orderedMediaIDs) {
		return nil, ErrInvalidMediaSet
	}
	existing := make(map[string]bool, len(links))
	for _, link := range links {
		existing[link.MediaID] = true
	}
	incoming := make(map[string]bool, len(orderedMediaIDs))
	for _, mediaID := range orderedMediaIDs {
		if !existing[mediaID] || incoming[mediaID] {
			return nil, ErrInvalidMediaSet
		}
		incoming[mediaID] = true
	}

	for i, mediaID := range orderedMediaIDs {
		if err := uc.mediaRepo.SetSortOrderByMedia(contentID, mediaID, i); err != nil {
			return nil, err
		}
	}

	uc.feedCache.Invalidate()

	return uc.enrichOne(content)
}

func (uc *contentUseCase) SetCover(contentID, mediaID, userID string) (*entity.ContentView, error) {
	content, err := uc.ownedContent(contentID, userID)
	if err != nil {
		return nil, err
	}

	linked, err := uc.mediaRepo.LinkExists(contentID, mediaID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, ErrMediaNotInPost
	}

	if err := uc.mediaRepo.ClearCovers(contentID); err != nil {
		return nil, err
	}
	if err := uc.mediaRepo.SetCoverByMedia(contentID, mediaID); err != nil {
		return nil, err
	}

	uc.feedCache.Invalidate()

	return uc.enrichOne(content)
}

func (uc *contentUseCase) ownedContent(contentID, userID string) (*entity.Content, error) {
	content, err := uc.contentRepo.GetByID(contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if content.AuthorUserID != userID {
		return nil, ErrNotAllowed
	}
	return content, nil
}

func (uc *contentUseCase) enrich(rows []entity.Content) ([]entity.ContentView, error) {
	ids := make([]string, len(rows))
	for i := range rows {
		ids[i] = rows[i].ID
	}

	mediaByContent, err := uc.mediaRepo.LoadForContents(ids)
	if err != nil {
		return nil, err
	}
	tagsByContent, err := uc.tagRepo.LoadForContents(ids)
	if err != nil {
		return nil, err
	}

	items := make([]entity.ContentView, len(rows))
	for i := range rows {
		media := mediaByContent[rows[i].ID]
		if media == nil {
			media = []entity.MediaView{}
		}
		tags := tagsByContent[rows[i].ID]
		if tags == nil {
			tags = []entity.TagView{}
		}
		items[i] = entity.ContentView{Content: rows[i], Media: media, Tags: tags}
	}
	return items, nil
}

func (uc *contentUseCase) enrichOne(content *entity.Content) (*entity.ContentView, error) {
	items, err := uc.enrich([]entity.Content{*content})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

// sanitizeFeedFilters applies the leniency policy: malformed optional IDs are
// dropped rather than rejected, and paging values are clamped to 1..100. The
// page size default for absent parameters is applied at the HTTP layer, where
// absence is distinguishable from an explicit zero.
func sanitizeFeedFilters(f feedcache.FeedFilters) feedcache.FeedFilters {
	if f.Kind == "all" {
		f.Kind = ""
	}

	validTagIDs := make([]string, 0, len(f.TagIDs))
	for _, tagID := range f.TagIDs {
		tagID = strings.TrimSpace(tagID)
		if uuidShape.MatchString(tagID) {
			validTagIDs = append(validTagIDs, tagID)
		}
	}
	f.TagIDs = validTagIDs

	if !uuidShape.MatchString(f.CompanyID) {
		f.CompanyID = ""
	}
	if !uuidShape.MatchString(f.AuthorID) {
		f.AuthorID = ""
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 1
	} else if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}

	return f
}

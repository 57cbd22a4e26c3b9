package http

import (
	"net/http"
	"strconv"
	"strings"

	"batilink/internal/feedcache"
	"batilink/internal/usecase"
	"batilink/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUseCase usecase.ContentUseCase
	logger         *logger.Logger
}

func NewContentHandler(contentUseCase usecase.ContentUseCase, logger *logger.Logger) *ContentHandler {
	return &ContentHandler{contentUseCase: contentUseCase, logger: logger}
}

// GetFeed godoc
// @Summary      Query the content feed
// @Description  Paginated public content with optional type, tag, company, author and text filters. tagIds is a comma-separated list.
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        type query string false "Content type filter (POST, WORK_REQUEST, JOB_OFFER, TENDER, LEGAL) or all"
// @Param        tagIds query string false "Comma-separated tag IDs"
// @Param        companyId query string false "Company ID filter"
// @Param        authorId query string false "Author user ID filter"
// @Param        search query string false "Text search over title and body"
// @Param        page query int false "Page number (default 1)"
// @Param        pageSize query int false "Page size (default 20, max 100)"
// @Success      200  {object}  entity.FeedPage
// @Failure      500  {object}  map[string]string
// @Router       /content [get]
func (h *ContentHandler) GetFeed(c *gin.Context) {
	// Absent or unparseable paging params fall back to the defaults here;
	// explicit out-of-range values are passed through for clamping.
	page := 1
	if raw := c.Query("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page = n
		}
	}
	pageSize := 20
	if raw := c.Query("pageSize"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			pageSize = n
		}
	}

	var tagIDs []string
	if raw := c.Query("tagIds"); raw != "" {
		tagIDs = strings.Split(raw, ",")
	}

	feedPage, err := h.contentUseCase.QueryFeed(feedcache.FeedFilters{
		Kind:      c.Query("type"),
		TagIDs:    tagIDs,
		CompanyID: c.Query("companyId"),
		AuthorID:  c.Query("authorId"),
		Search:    c.Query("search"),
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, feedPage)
}

// GetContent godoc
// @Summary      Get content by ID
// @Description  Get a single content item with its media and tags
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        id path string true "Content ID"
// @Success      200  {object}  entity.ContentView
// @Failure      404  {object}  map[string]string
// @Router       /content/{id} [get]
func (h *ContentHandler) GetContent(c *gin.Context) {
	view, err := h.contentUseCase.GetContent(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

type CreatePostRequest struct {
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	IsPublic  *bool    `json:"isPublic"`
	CompanyID string   `json:"companyId" binding:"omitempty,uuid"`
	TagIDs    []string `json:"tagIds" binding:"omitempty,max=50,dive,uuid"`
	MediaIDs  []string `json:"mediaIds" binding:"omitempty,max=10,dive,uuid"`
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Create a post with optional tags and up to 10 previously uploaded media assets. The first media becomes the cover.
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post data"
// @Success      201  {object}  entity.ContentView
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /content [post]
func (h *ContentHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.contentUseCase.CreatePost(userID, usecase.CreatePostInput{
		Title:     req.Title,
		Body:      req.Body,
		IsPublic:  req.IsPublic,
		CompanyID: req.CompanyID,
		TagIDs:    req.TagIDs,
		MediaIDs:  req.MediaIDs,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// RemoveMedia godoc
// @Summary      Detach a media from content
// @Description  Remove one media from a content item. Remaining media are renumbered and the first one becomes the cover.
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Content ID"
// @Param        mediaId path string true "Media ID"
// @Success      200  {object}  entity.ContentView
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /content/{id}/media/{mediaId} [delete]
func (h *ContentHandler) RemoveMedia(c *gin.Context) {
	userID := c.GetString("user_id")

	view, err := h.contentUseCase.RemoveMedia(c.Param("id"), c.Param("mediaId"), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

type ReorderMediaRequest struct {
	MediaIDs []string `json:"mediaIds" binding:"required,min=1,max=10,dive,uuid"`
}

// ReorderMedia godoc
// @Summary      Reorder content media
// @Description  Apply a new display order. The list must be an exact permutation of the media currently attached; the cover flag is untouched.
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Content ID"
// @Param        request body ReorderMediaRequest true "New order"
// @Success      200  {object}  entity.ContentView
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /content/{id}/media/reorder [patch]
func (h *ContentHandler) ReorderMedia(c *gin.Context) {
	userID := c.GetString("user_id")

	var req ReorderMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.contentUseCase.ReorderMedia(c.Param("id"), req.MediaIDs, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

type SetCoverRequest struct {
	MediaID string `json:"mediaId" binding:"required,uuid"`
}

// SetCover godoc
// @Summary      Set the content cover
// @Description  Mark one attached media as cover. The media must already be linked to the content.
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Content ID"
// @Param        request body SetCoverRequest true "Cover media"
// @Success      200  {object}  entity.ContentView
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /content/{id}/media/cover [patch]
func (h *ContentHandler) SetCover(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SetCoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.contentUseCase.SetCover(c.Param("id"), req.MediaID, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

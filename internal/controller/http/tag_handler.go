package http

import (
	"net/http"

	"batilink/internal/usecase"
	"batilink/pkg/logger"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagUseCase usecase.TagUseCase
	logger     *logger.Logger
}

func NewTagHandler(tagUseCase usecase.TagUseCase, logger *logger.Logger) *TagHandler {
	return &TagHandler{tagUseCase: tagUseCase, logger: logger}
}

// ListTags godoc
// @Summary      List tags
// @Description  List all tags, optionally filtered by type (METIER, REGION, TOPIC)
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        type query string false "Tag type filter"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagUseCase.ListTags(c.Query("type"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": tags, "count": len(tags)})
}

type CreateTagRequest struct {
	Slug  string `json:"slug" binding:"required"`
	Label string `json:"label" binding:"required"`
	Type  string `json:"type" binding:"required"`
}

// CreateTag godoc
// @Summary      Create a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateTagRequest true "Tag data"
// @Success      201  {object}  entity.Tag
// @Failure      400  {object}  map[string]string
// @Router       /tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.tagUseCase.CreateTag(req.Slug, req.Label, req.Type)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

type LinkTagRequest struct {
	TagID      string `json:"tagId" binding:"required,uuid"`
	EntityType string `json:"entityType" binding:"required,oneof=CONTENT COMPANY USER"`
	EntityID   string `json:"entityId" binding:"required,uuid"`
}

// LinkTag godoc
// @Summary      Attach a tag to an entity
// @Description  Link a tag to a content item, company or user profile
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body LinkTagRequest true "Link data"
// @Success      201  {object}  entity.TagLink
// @Failure      400  {object}  map[string]string
// @Router       /tags/links [post]
func (h *TagHandler) LinkTag(c *gin.Context) {
	var req LinkTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := h.tagUseCase.LinkTag(req.TagID, req.EntityType, req.EntityID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// ListTagEntities godoc
// @Summary      List entities linked to a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        tagId path string true "Tag ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /tags/{tagId}/links [get]
func (h *TagHandler) ListTagEntities(c *gin.Context) {
	links, err := h.tagUseCase.EntitiesForTag(c.Param("tagId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"links": links, "count": len(links)})
}

// UnlinkTag godoc
// @Summary      Remove a tag link
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        linkId path string true "Tag link ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tags/links/{linkId} [delete]
func (h *TagHandler) UnlinkTag(c *gin.Context) {
	if err := h.tagUseCase.UnlinkTag(c.Param("linkId")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tag link removed"})
}

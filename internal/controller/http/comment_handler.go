package http

import (
	"net/http"
	"strconv"

	"batilink/internal/usecase"
	"batilink/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{commentUseCase: commentUseCase, logger: logger}
}

type CreateCommentRequest struct {
	Body            string `json:"body" binding:"required"`
	ParentCommentID string `json:"parentCommentId" binding:"omitempty,uuid"`
}

// CreateComment godoc
// @Summary      Comment on a content item
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Content ID"
// @Param        request body CreateCommentRequest true "Comment data"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /content/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.CreateComment(c.Param("id"), userID, req.Body, req.ParentCommentID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListComments godoc
// @Summary      List comments of a content item
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "Content ID"
// @Param        limit query int false "Max comments to return (default 50)"
// @Param        offset query int false "Offset"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /content/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	comments, err := h.commentUseCase.ListComments(c.Param("id"), limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments, "count": len(comments)})
}

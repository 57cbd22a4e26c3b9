package http

import (
	"context"
	"net/http"
	"strconv"

	"batilink/internal/usecase"
	"batilink/pkg/logger"

	"github.com/gin-gonic/gin"
)

// JobRunner is one pass of a background job, triggered here on demand.
type JobRunner interface {
	Run(ctx context.Context) (int, error)
}

type LegalHandler struct {
	legalUseCase usecase.LegalUseCase
	ingestor     JobRunner
	summarizer   JobRunner
	internalKey  string
	logger       *logger.Logger
}

func NewLegalHandler(legalUseCase usecase.LegalUseCase, ingestor, summarizer JobRunner, internalKey string, logger *logger.Logger) *LegalHandler {
	return &LegalHandler{
		legalUseCase: legalUseCase,
		ingestor:     ingestor,
		summarizer:   summarizer,
		internalKey:  internalKey,
		logger:       logger,
	}
}

// ListArticles godoc
// @Summary      List legal articles
// @Description  Summarized or editor-published legal watch articles, newest first
// @Tags         legal
// @Accept       json
// @Produce      json
// @Param        limit query int false "Max articles to return (default 20)"
// @Param        offset query int false "Offset"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /legal-articles [get]
func (h *LegalHandler) ListArticles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	articles, err := h.legalUseCase.ListPublicArticles(limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles, "count": len(articles)})
}

// GetArticle godoc
// @Summary      Get a legal article by ID
// @Tags         legal
// @Accept       json
// @Produce      json
// @Param        id path string true "Article ID"
// @Success      200  {object}  entity.LegalArticle
// @Failure      404  {object}  map[string]string
// @Router       /legal-articles/{id} [get]
func (h *LegalHandler) GetArticle(c *gin.Context) {
	article, err := h.legalUseCase.GetArticle(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *LegalHandler) checkInternalKey(c *gin.Context) bool {
	if h.internalKey == "" || c.GetHeader("X-Internal-Key") != h.internalKey {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid internal key"})
		return false
	}
	return true
}

// RunIngest godoc
// @Summary      Trigger the RSS ingest job
// @Description  Internal endpoint, requires the X-Internal-Key header
// @Tags         legal
// @Accept       json
// @Produce      json
// @Param        X-Internal-Key header string true "Internal service key"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /internal/legal/ingest [post]
func (h *LegalHandler) RunIngest(c *gin.Context) {
	if !h.checkInternalKey(c) {
		return
	}

	count, err := h.ingestor.Run(c.Request.Context())
	if err != nil {
		h.logger.Error("Legal ingest run failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ingest failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingested": count})
}

// RunSummarizer godoc
// @Summary      Trigger the AI summarizer job
// @Description  Internal endpoint, requires the X-Internal-Key header
// @Tags         legal
// @Accept       json
// @Produce      json
// @Param        X-Internal-Key header string true "Internal service key"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /internal/legal/run-summarizer [post]
func (h *LegalHandler) RunSummarizer(c *gin.Context) {
	if !h.checkInternalKey(c) {
		return
	}

	count, err := h.summarizer.Run(c.Request.Context())
	if err != nil {
		h.logger.Error("Summarizer run failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Summarizer failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"processed": count})
}

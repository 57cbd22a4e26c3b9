package http

import (
	"net/http"
	"strconv"

	"batilink/internal/usecase"
	"batilink/pkg/logger"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 50 << 20

type MediaHandler struct {
	mediaUseCase usecase.MediaUseCase
	logger       *logger.Logger
}

func NewMediaHandler(mediaUseCase usecase.MediaUseCase, logger *logger.Logger) *MediaHandler {
	return &MediaHandler{mediaUseCase: mediaUseCase, logger: logger}
}

// UploadMedia godoc
// @Summary      Upload a media asset
// @Description  Upload an image, video or document. The asset can then be attached to a post by ID. Max 50MB.
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "File to upload"
// @Success      201  {object}  entity.MediaAsset
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /media [post]
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	userID := c.GetString("user_id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	asset, err := h.mediaUseCase.Upload(userID, usecase.UploadMediaInput{
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		SizeBytes:   fileHeader.Size,
		Reader:      file,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, asset)
}

// ListMyMedia godoc
// @Summary      List own media assets
// @Tags         media
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Max assets to return (default 20)"
// @Param        offset query int false "Offset"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /media [get]
func (h *MediaHandler) ListMyMedia(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	assets, err := h.mediaUseCase.ListMine(userID, limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"media": assets, "count": len(assets)})
}

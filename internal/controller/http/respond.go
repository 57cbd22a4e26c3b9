package http

import (
	"errors"
	"net/http"

	"batilink/internal/usecase"
	"batilink/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError translates domain errors into HTTP responses. Unknown errors
// are logged and answered with a generic 500 so internals never leak.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrMissingContent),
		errors.Is(err, usecase.ErrInvalidMediaID),
		errors.Is(err, usecase.ErrMediaQuotaExceeded),
		errors.Is(err, usecase.ErrInvalidMediaSet),
		errors.Is(err, usecase.ErrMediaNotInPost),
		errors.Is(err, usecase.ErrEmptyBody):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error("Unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

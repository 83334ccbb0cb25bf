package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/runera/runera-backend/internal/api/shared/errors"
	"github.com/runera/runera-backend/internal/logger"
)

// respondError maps err onto the error envelope. Server errors are logged.
func respondError(c *gin.Context, err error) {
	apiErr := apierrors.FromDomainError(err, "Internal server error")
	if apiErr.Status >= 500 {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
	}
	c.JSON(apiErr.Status, apierrors.ErrorResponse{Error: apiErr})
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string) {
	respondError(c, apierrors.NewBadRequestError(message, nil))
}

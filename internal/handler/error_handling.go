package handler

import (
	"errors"
	"fmt"
	"net/http"

	"rescue-site-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *AIHandler) handleServiceError(c *gin.Context, tenantID int64, err error) {
	var (
		statusCode int
		message    string
	)

	switch {
	case errors.Is(err, models.ErrOrganizationNotFound):
		statusCode = http.StatusNotFound
		message = fmt.Sprintf("Organization %d not found", tenantID)
	case errors.Is(err, models.ErrGenerationInProgress):
		statusCode = http.StatusConflict
		message = "Site generation is already in progress for this tenant"
	case errors.Is(err, models.ErrPlanGenerationFailed):
		statusCode = http.StatusBadGateway
		message = err.Error()
	case errors.Is(err, models.ErrInvalidTenantID), errors.Is(err, models.ErrBadRequest):
		statusCode = http.StatusBadRequest
		message = err.Error()
	default:
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal error occurred"
	}

	log := h.logger.With(zap.Int64("tenant_id", tenantID), zap.Int("status", statusCode))
	if statusCode >= http.StatusInternalServerError {
		log.Error("Site generation request failed", zap.Error(err))
	} else {
		log.Warn("Site generation request rejected", zap.Error(err))
	}
	models.SendJSONError(c, message, statusCode)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"appointment-booking-api/pkg/apperr"
)

// writeError maps the error taxonomy to status codes. State conflicts come
// out as 400 on the scheduling endpoints, which is what the original API
// contract promises; registration overrides this to 409 for duplicate email.
func (h *Handler) writeError(c *gin.Context, err error) {
	h.writeErrorConflict(c, err, http.StatusBadRequest)
}

func (h *Handler) writeErrorConflict(c *gin.Context, err error, conflictStatus int) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindInvalid:
		status = http.StatusBadRequest
	case apperr.KindUnauthenticated:
		status = http.StatusUnauthorized
	case apperr.KindForbidden:
		status = http.StatusForbidden
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindConflict:
		status = conflictStatus
	default:
		h.logger.Error("internal error",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(status, gin.H{"error": apperr.MessageOf(err)})
}

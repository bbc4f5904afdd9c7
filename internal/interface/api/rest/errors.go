package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "customer-api/internal/domain/customer"
)

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	StatusCode int       `json:"statusCode"`
	Timestamp  time.Time `json:"timestamp"`
	Message    string    `json:"message"`
	Details    []string  `json:"details"`
}

func newErrorResponse(status int, details []string) ErrorResponse {
	return ErrorResponse{
		StatusCode: status,
		Timestamp:  time.Now().UTC(),
		Message:    http.StatusText(status),
		Details:    details,
	}
}

// respondValidationFailed writes a 400 with the aggregated field messages.
func respondValidationFailed(c *gin.Context, details []string) {
	c.JSON(http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, details))
}

// translateError is the single point converting domain failures to status
// codes. Unclassified errors become 500 and are logged by the caller.
func translateError(c *gin.Context, logger *zap.Logger, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrCustomerExists):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrCustomerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrEmailImmutable):
		status = http.StatusForbidden
	default:
		status = http.StatusInternalServerError
		logger.Error("unclassified error", zap.Error(err))
	}

	c.JSON(status, newErrorResponse(status, []string{err.Error()}))
}

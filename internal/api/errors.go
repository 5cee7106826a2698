package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/biographdb/biograph/internal/engine"
	"github.com/biographdb/biograph/internal/httputil"
	"github.com/biographdb/biograph/internal/metrics"
	"github.com/biographdb/biograph/internal/models"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeNotFound       = "not_found"
	ErrCodeInternalError  = "internal_error"
	ErrCodeRateLimited    = "rate_limited"
)

// respondError writes a standardized JSON error response, pulling the request
// ID from the Gin context (set by the request ID middleware).
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()
	httputil.RespondError(c, status, code, message)
}

// respondEngineError maps engine and lookup errors onto HTTP statuses.
// Unrecognized errors return false so callers can log and 500 them.
func respondEngineError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, engine.ErrUnknownStartNode),
		errors.Is(err, models.ErrPersonNotFound):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
		return true
	case errors.Is(err, engine.ErrInvalidBound),
		errors.Is(err, engine.ErrInsufficientQueryEntities):
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return true
	}

	return false
}

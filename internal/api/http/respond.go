package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/company-mgmt/company-api-backend/internal/storage"
)

// ErrorStatus maps a repository error to its HTTP status code.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, storage.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders a repository error as a structured JSON response.
func WriteError(c *gin.Context, err error) {
	c.JSON(ErrorStatus(err), gin.H{"error": err.Error()})
}

// WriteValidationError renders a 422 for request bodies that fail binding.
func WriteValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":   "validation error",
		"details": err.Error(),
	})
}

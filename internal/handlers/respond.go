package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servired/backend/pkg/errors"
	"github.com/servired/backend/pkg/logger"
)

// statusFor maps application error codes to HTTP statuses.
func statusFor(code string) int {
	switch code {
	case errors.ErrCodeValidation:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrCodeForbidden:
		return http.StatusForbidden
	case errors.ErrCodeAlreadyExists:
		return http.StatusConflict
	case errors.ErrCodeNotConnected:
		return http.StatusConflict
	case errors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// respondError translates a service error into a JSON error response.
// Internal errors are logged and masked.
func respondError(c *gin.Context, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		status := statusFor(appErr.Code)
		if status == http.StatusInternalServerError {
			logger.Error("request failed", "path", c.FullPath(), "error", err)
			c.JSON(status, gin.H{"error": "internal server error", "code": appErr.Code})
			return
		}
		c.JSON(status, gin.H{"error": appErr.Message, "code": appErr.Code})
		return
	}

	logger.Error("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "code": errors.ErrCodeInternalError})
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/messages"

	"github.com/gin-gonic/gin"
)

// statusFor maps the error taxonomy to http status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, messages.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, messages.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, messages.ErrPreconditionFailed):
		return http.StatusPreconditionFailed
	case errors.Is(err, messages.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, messages.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("Request %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

package handlers

import (
	"errors"
	"net/http"

	"coursehub/internal/domain"
	"coursehub/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

const serverErrorMessage = "Server error"

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway, "upstream_failure"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// respondError writes {"message","code"}. Messages of unclassified errors
// never reach the client.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	status, code := statusFor(err)
	message := serverErrorMessage

	var de *domain.Error
	if status != http.StatusInternalServerError && errors.As(err, &de) {
		message = de.Message
	}
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"message": message, "code": code})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message, "code": "bad_request"})
}

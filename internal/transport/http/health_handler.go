package handlers

import (
	"context"
	"net/http"
	"time"

	"coursehub/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	log  *logger.Logger
	ping func(ctx context.Context) error
}

func NewHealthHandler(log *logger.Logger, ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{log: log.With("handler", "health"), ping: ping}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Signup backend is running!")
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.log.Error("database ping failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

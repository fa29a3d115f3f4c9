package middleware

import (
	"time"

	"coursehub/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		kv := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			log.Error("request failed", append(kv, "error", c.Errors.String())...)
			return
		}
		log.Info("request", kv...)
	}
}

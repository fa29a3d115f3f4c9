package middleware

import (
	"fmt"
	"net/http"
	"time"

	"coursehub/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type RateLimiter struct {
	redisClient *redis.Client
	log         *logger.Logger
}

func NewRateLimiter(client *redis.Client, log *logger.Logger) *RateLimiter {
	return &RateLimiter{redisClient: client, log: log.With("service", "RateLimiter")}
}

// Limit allows limit requests per client IP and window. Redis errors let the
// request through.
func (rl *RateLimiter) Limit(keySuffix string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:%s:%s", keySuffix, c.ClientIP())
		ctx := c.Request.Context()

		count, err := rl.redisClient.Incr(ctx, key).Result()
		if err != nil {
			rl.log.Warn("rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}

		if count == 1 {
			rl.redisClient.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			ttl, _ := rl.redisClient.TTL(ctx, key).Result()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message":     "Too many requests",
				"code":        "rate_limited",
				"retry_after": fmt.Sprintf("%.0f seconds", ttl.Seconds()),
			})
			return
		}
		c.Next()
	}
}

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/karizzz/subletez-backend/internal/metrics"
)

var rlCtx = context.Background()

// LoginRateLimiter limits login attempts per client IP using Redis counters.
// A limiter failure fails open; auth still protects the account, the
// limiter only slows guessing.
func LoginRateLimiter(rdb *redis.Client, limit int64, window time.Duration) gin.HandlerFunc {
	const limiterName = "login"
	return func(c *gin.Context) {
		key := fmt.Sprintf("sez:rl:%s:%s", limiterName, c.ClientIP())

		count, err := rdb.Incr(rlCtx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			_ = rdb.Expire(rlCtx, key, window).Err()
		}
		if count > limit {
			metrics.IncRateLimit(limiterName)
			c.Header("Retry-After", fmt.Sprintf("%.f", window.Seconds()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
			return
		}
		c.Next()
	}
}

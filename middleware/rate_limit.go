package middleware

import (
	"fmt"
	"time"

	"logo-lms/helper"
	"logo-lms/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware is a fixed-window counter per path and caller kept in
// Redis. A Redis outage lets requests through.
func RateLimitMiddleware(client redis.UniversalClient, h *helper.HTTPHelper, limit int, window time.Duration) gin.HandlerFunc {
	log := logger.New("ratelimit")
	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}

		caller := c.ClientIP()
		if identity := CurrentIdentity(c); identity != nil {
			caller = fmt.Sprintf("user:%d", identity.UserID)
		}
		key := fmt.Sprintf("rate_limit:%s:%s", c.FullPath(), caller)

		ctx := c.Request.Context()
		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			log.Warn("rate limit check failed for %s: %v", key, err)
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			h.SendTooManyRequests(c, "Rate limit exceeded")
			return
		}

		c.Next()
	}
}

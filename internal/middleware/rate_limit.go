package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"steelcatalog/internal/logging"
	"steelcatalog/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Counter increments a fixed-window counter and returns the new value
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type RedisCounter struct {
	client redis.Cmdable
}

func NewRedisCounter(client redis.Cmdable) *RedisCounter {
	return &RedisCounter{client: client}
}

// Incr creates the key with value 1 on first use and starts its expiry then
func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}

// RateLimiter allows limit requests per client IP in each window.
// A nil counter or a failing store lets requests through.
func RateLimiter(counter Counter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if counter == nil || limit <= 0 {
			c.Next()
			return
		}

		key := "rate_limit:" + c.ClientIP()
		count, err := counter.Incr(c.Request.Context(), key, window)
		if err != nil {
			logging.FromContext(c.Request.Context()).Warn("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Error("Too many requests"))
			return
		}
		c.Next()
	}
}

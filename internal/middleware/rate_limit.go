package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/notes-api/internal/config"
	"github.com/kingrain94/notes-api/pkg/logger"
)

type RateLimitMiddleware struct {
	redis  *redis.Client
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// TenantRateLimit implements per-tenant rate limiting. Must run after
// JWTAuth so the caller's tenant is known.
func (m *RateLimitMiddleware) TenantRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFromGin(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authentication found"})
			return
		}

		limit := m.tenantRateLimit()
		key := fmt.Sprintf("rate_limit:tenant:%s", identity.Tenant.ID)

		m.enforce(c, key, limit)
	}
}

// GlobalRateLimit implements global rate limiting based on client IP
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:global:%s", c.ClientIP())
		m.enforce(c, key, limit)
	}
}

// enforce applies a fixed one-minute window counter in Redis. Redis
// failures fail open: a broken limiter must not take the API down.
func (m *RateLimitMiddleware) enforce(c *gin.Context, key string, limit int) {
	current, err := m.redis.Get(c.Request.Context(), key).Int()
	if err != nil && err != redis.Nil {
		m.logger.Error("Redis error in rate limiting", err)
		c.Next()
		return
	}

	reset := strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10)

	if current >= limit {
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", "0")
		c.Header("X-RateLimit-Reset", reset)

		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": "Rate limit exceeded",
			"limit": limit,
			"reset": time.Now().Add(time.Minute).Unix(),
		})
		return
	}

	// Increment counter
	pipe := m.redis.Pipeline()
	pipe.Incr(c.Request.Context(), key)
	pipe.Expire(c.Request.Context(), key, time.Minute)
	if _, err := pipe.Exec(c.Request.Context()); err != nil {
		m.logger.Error("Redis pipeline error in rate limiting", err)
	}

	remaining := limit - (current + 1)
	if remaining < 0 {
		remaining = 0
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", reset)

	c.Next()
}

func (m *RateLimitMiddleware) tenantRateLimit() int {
	if m.config.DefaultRateLimit > 0 {
		return m.config.DefaultRateLimit
	}
	return 1000 // Default: 1000 requests per minute
}

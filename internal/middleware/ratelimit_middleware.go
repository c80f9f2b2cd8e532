package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/noonstudio/cms_api/internal/cache"
	"github.com/noonstudio/cms_api/internal/utils"
)

// Throttle for failed login attempts ONLY. Counters live in Redis so the
// process itself holds no shared mutable state across requests.
// Limit: 5 failed attempts per IP per minute.
const (
	loginAttemptLimit  = 5
	loginAttemptWindow = time.Minute
)

// LoginThrottle tracks failed login attempts per client IP.
type LoginThrottle struct {
	redis *cache.RedisClient
}

// NewLoginThrottle constructs a LoginThrottle backed by Redis.
func NewLoginThrottle(redis *cache.RedisClient) *LoginThrottle {
	return &LoginThrottle{redis: redis}
}

func (t *LoginThrottle) key(ip string) string {
	return fmt.Sprintf("login:attempts:%s", ip)
}

// Allow reports whether the IP is still under the failed-attempt limit.
// Fails open when Redis is unreachable so an outage never locks out the admin.
func (t *LoginThrottle) Allow(ctx context.Context, ip string) bool {
	v, err := t.redis.Get(ctx, t.key(ip))
	if err != nil {
		return true
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return true
	}
	return n < loginAttemptLimit
}

// RecordFailure counts one failed attempt for the IP, starting the window on
// the first failure.
func (t *LoginThrottle) RecordFailure(ctx context.Context, ip string) {
	if _, err := t.redis.IncrWithTTL(ctx, t.key(ip), loginAttemptWindow); err != nil {
		log.Warn().Err(err).Str("ip", ip).Msg("failed to record login attempt")
	}
}

// Handle returns a middleware that rejects login requests from IPs that have
// exceeded the failed-attempt limit.
func (t *LoginThrottle) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !t.Allow(c.Request.Context(), ip) {
			utils.Error(c, 429, "TOO_MANY_REQUESTS", "Too many failed login attempts")
			c.Abort()
			return
		}
		c.Next()
	}
}

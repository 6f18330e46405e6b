package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/beacon-cms/beacon/internal/infrastructure/ratelimit"
	"github.com/beacon-cms/beacon/internal/shared/logger"
	"github.com/beacon-cms/beacon/internal/shared/utils"
)

// SubmitRateLimiter throttles public form submissions per client IP. The
// counter lives in Redis so the limit holds across instances.
type SubmitRateLimiter struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
	logger  logger.Interface
}

func NewSubmitRateLimiter(limiter ratelimit.RateLimiter, perMinute int, logger logger.Interface) *SubmitRateLimiter {
	return &SubmitRateLimiter{
		limiter: limiter,
		config:  ratelimit.RateLimitConfig{RequestsPerMinute: perMinute},
		logger:  logger,
	}
}

func (rl *SubmitRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limiter == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("submit:%s", c.ClientIP())
		allowed, err := rl.limiter.Allow(key, rl.config)
		if err != nil {
			// Redis being down should not block all traffic
			rl.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if !allowed {
			if remaining, err := rl.limiter.GetRemaining(key, time.Minute); err == nil {
				c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
			}
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many submissions, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/garagehq/shopapi/internal/infrastructure/ratelimit"
	"github.com/garagehq/shopapi/internal/shared/constants"
	"github.com/garagehq/shopapi/internal/shared/errors"
	"github.com/garagehq/shopapi/internal/shared/logger"
	"github.com/garagehq/shopapi/internal/shared/utils"
)

// RateLimiter enforces a fixed-window quota per client IP. Each route group
// passes its own scope so groups keep separate counters.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
	now     func() time.Time
}

func NewRateLimiter(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		logger:  logger,
		now:     time.Now,
	}
}

// Limit admits requests within quota. When the backing store fails the
// request is let through.
func (rl *RateLimiter) Limit(scope string, quota ratelimit.Quota) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()

		decision, err := rl.limiter.Allow(c.Request.Context(), key, quota)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request",
				"scope", scope,
				"client_ip", c.ClientIP(),
				"error", err)
			c.Next()
			return
		}

		if decision.Limit > 0 {
			c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			c.Header("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))
		}

		if !decision.Allowed {
			retry := decision.RetryAfter(rl.now())
			c.Header("Retry-After", strconv.Itoa(int(retry/time.Second)))
			rl.logger.Warnw("rate limit exceeded", "scope", scope, "client_ip", c.ClientIP())
			utils.AbortWithError(c, errors.NewTooManyRequestsError(constants.ErrMsgRateLimited))
			return
		}

		c.Next()
	}
}

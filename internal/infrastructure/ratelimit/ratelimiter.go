package ratelimit

import (
	"context"
	"time"
)

// Quota allows Limit requests per fixed Window.
type Quota struct {
	Limit  int
	Window time.Duration
}

// Decision is the outcome of one admission check.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	// ResetAt is when the current window ends.
	ResetAt time.Time
}

// RetryAfter is the time left in the window, rounded up to whole seconds.
func (d Decision) RetryAfter(now time.Time) time.Duration {
	left := d.ResetAt.Sub(now)
	if left <= 0 {
		return 0
	}
	return left.Truncate(time.Second) + time.Second
}

type RateLimiter interface {
	// Allow counts one request against key and reports whether it fits
	// the quota.
	Allow(ctx context.Context, key string, quota Quota) (Decision, error)
}

package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// RedisRateLimiter is a fixed-window counter shared by every instance that
// talks to the same Redis. Each window gets its own key that expires just
// after the window closes.
type RedisRateLimiter struct {
	client redis.UniversalClient
	now    func() time.Time
}

func NewRedisRateLimiter(client redis.UniversalClient) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		now:    time.Now,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, quota Quota) (Decision, error) {
	if quota.Limit <= 0 || quota.Window < time.Second {
		return Decision{Allowed: true}, nil
	}

	windowSecs := int64(quota.Window / time.Second)
	bucket := l.now().Unix() / windowSecs
	resetAt := time.Unix((bucket+1)*windowSecs, 0)
	redisKey := fmt.Sprintf("%s%s:%d", keyPrefix, key, bucket)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, quota.Window+time.Second).Err(); err != nil {
			return Decision{}, fmt.Errorf("failed to set rate limit expiry: %w", err)
		}
	}

	remaining := quota.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   count <= int64(quota.Limit),
		Limit:     quota.Limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}

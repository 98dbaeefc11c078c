package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dtroode/coinvest-server/internal/model"
)

var _ model.RateLimiter = (*Redis)(nil)

// redisAPI is the subset of the go-redis client used by the limiter.
type redisAPI interface {
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
}

// Redis shares fixed-window counters between instances through Redis (7.0+ for PEXPIRE NX).
// The first INCR in a window sets the key expiry; the key vanishing ends the window.
type Redis struct {
	client redisAPI
	prefix string
}

// NewRedis creates a limiter storing counters under keys prefixed by prefix.
func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

// Allow increments the counter for key and reports whether it is within max.
func (r *Redis) Allow(ctx context.Context, key string, window time.Duration, max int) (model.RateDecision, error) {
	k := r.prefix + key

	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, k)
		p.Do(ctx, "pexpire", k, window.Milliseconds(), "nx")
		ttl = p.PTTL(ctx, k)
		return nil
	})
	if err != nil {
		return model.RateDecision{}, fmt.Errorf("failed to update rate limit counter: %w", err)
	}

	count := int(incr.Val())
	resetAt := time.Now().Add(window)
	if d := ttl.Val(); d > 0 {
		resetAt = time.Now().Add(d)
	}

	if count == 1 || count <= max {
		return model.RateDecision{Allowed: true, Remaining: remaining(max, count), ResetAt: resetAt}, nil
	}

	return model.RateDecision{Allowed: false, Remaining: 0, ResetAt: resetAt}, nil
}

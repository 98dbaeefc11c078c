package model

import (
	"context"
	"time"
)

// RateLimiter decides whether a caller identified by key may proceed.
// A denied decision is a normal outcome, not an error.
type RateLimiter interface {
	Allow(ctx context.Context, key string, window time.Duration, max int) (RateDecision, error)
}

// RateDecision is the outcome of a single Allow call.
type RateDecision struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

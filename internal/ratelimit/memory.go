// Package ratelimit implements fixed-window request limiting keyed by caller identity.
//
// A window opens on the first request for a key and lasts the configured duration;
// the counter is reset wholesale once it has elapsed. Bursts of up to 2*max across
// a window boundary are accepted.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/dtroode/coinvest-server/internal/logger"
	"github.com/dtroode/coinvest-server/internal/model"
)

var _ model.RateLimiter = (*Memory)(nil)

type counter struct {
	count   int
	resetAt time.Time
}

// Memory keeps counters in process memory. Counters are lost on restart and
// are not shared between instances.
type Memory struct {
	mu       sync.Mutex
	counters map[string]*counter
	now      func() time.Time
}

// NewMemory creates an empty in-memory limiter.
func NewMemory() *Memory {
	return &Memory{
		counters: make(map[string]*counter),
		now:      time.Now,
	}
}

// Allow records a request for key and reports whether it fits in the current window.
func (m *Memory) Allow(_ context.Context, key string, window time.Duration, max int) (model.RateDecision, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.counters[key]
	if !ok || now.After(c.resetAt) {
		c = &counter{count: 1, resetAt: now.Add(window)}
		m.counters[key] = c
		return model.RateDecision{Allowed: true, Remaining: remaining(max, 1), ResetAt: c.resetAt}, nil
	}

	if c.count < max {
		c.count++
		return model.RateDecision{Allowed: true, Remaining: remaining(max, c.count), ResetAt: c.resetAt}, nil
	}

	return model.RateDecision{Allowed: false, Remaining: 0, ResetAt: c.resetAt}, nil
}

// Sweep drops counters whose window has elapsed and returns how many were removed.
func (m *Memory) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for key, c := range m.counters {
		if now.After(c.resetAt) {
			delete(m.counters, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.counters)
}

// Run sweeps expired counters every interval until ctx is done.
func (m *Memory) Run(ctx context.Context, interval time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(m.now()); n > 0 {
				log.Debug("Rate limiter: swept expired windows", "removed", n)
			}
		}
	}
}

func remaining(max, count int) int {
	if count >= max {
		return 0
	}
	return max - count
}

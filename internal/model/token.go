package model

import "time"

// TokenManager mints and validates signed session tokens.
// Verify returns nil for every invalid token; it never reports why.
type TokenManager interface {
	Issue(claims map[string]any, ttl time.Duration) (string, error)
	Verify(token string) map[string]any
}

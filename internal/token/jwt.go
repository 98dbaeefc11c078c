package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/coinvest-server/internal/model"
)

// ErrMissingSecret is a configuration error: tokens cannot be signed without a key.
var ErrMissingSecret = errors.New("token signing secret is not configured")

// DefaultTTL is the session lifetime used when none is configured.
const DefaultTTL = 7 * 24 * time.Hour

// Reserved claim names. IssuedAt and ExpiresAt are always set by Issue.
const (
	ClaimSubject   = "sub"
	ClaimUsername  = "username"
	ClaimIssuedAt  = "iat"
	ClaimExpiresAt = "exp"
)

var _ model.TokenManager = (*JWT)(nil)

// JWT issues and verifies HS256 compact tokens carrying arbitrary claims.
type JWT struct {
	secret []byte
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWT creates a token manager signing with secret.
func NewJWT(secret []byte) (*JWT, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}

	j := &JWT{
		secret: secret,
		now:    time.Now,
	}
	j.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithStrictDecoding(),
		jwt.WithoutClaimsValidation(),
	)

	return j, nil
}

// Issue signs claims with iat set to now and exp to now+ttl, both in epoch seconds.
// Sub-second remainders of ttl round up. Caller supplied iat/exp values are overwritten.
func (j *JWT) Issue(claims map[string]any, ttl time.Duration) (string, error) {
	issuedAt := j.now().Unix()

	mc := make(jwt.MapClaims, len(claims)+2)
	for k, v := range claims {
		mc[k] = v
	}
	mc[ClaimIssuedAt] = issuedAt
	mc[ClaimExpiresAt] = issuedAt + ttlSeconds(ttl)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify returns the token claims, or nil when the token is malformed, carries a
// bad signature, uses another algorithm or has exp <= now.
func (j *JWT) Verify(tokenString string) map[string]any {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil
	}
	for _, p := range parts {
		if p == "" {
			return nil
		}
	}

	claims := jwt.MapClaims{}
	tok, err := j.parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil
	}

	// Registered claims other than exp are carried, not enforced.
	if exp, ok := numericClaim(claims[ClaimExpiresAt]); ok && exp <= float64(j.now().Unix()) {
		return nil
	}

	return claims
}

func ttlSeconds(ttl time.Duration) int64 {
	secs := int64(ttl / time.Second)
	if ttl%time.Second > 0 {
		secs++
	}
	return secs
}

func numericClaim(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Subject extracts the user ID stored in the sub claim.
func Subject(claims map[string]any) (uuid.UUID, bool) {
	raw, ok := claims[ClaimSubject].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

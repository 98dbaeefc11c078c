package model

import "context"

// CaptchaVerifier checks a client-side challenge response.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) (CaptchaResult, error)
}

// CaptchaResult is the provider verdict. Score is set only by score-based providers.
type CaptchaResult struct {
	Success bool
	Score   *float64
}

// Package recaptcha verifies Google reCAPTCHA responses.
package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dtroode/coinvest-server/internal/model"
)

const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

var _ model.CaptchaVerifier = (*Client)(nil)

type Client struct {
	secret    string
	verifyURL string
	http      *http.Client
}

func NewClient(secret, verifyURL string, httpClient *http.Client) *Client {
	if verifyURL == "" {
		verifyURL = DefaultVerifyURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		secret:    secret,
		verifyURL: verifyURL,
		http:      httpClient,
	}
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	Score      *float64 `json:"score,omitempty"`
	ErrorCodes []string `json:"error-codes,omitempty"`
}

func (c *Client) Verify(ctx context.Context, token, remoteIP string) (model.CaptchaResult, error) {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return model.CaptchaResult{}, fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return model.CaptchaResult{}, fmt.Errorf("failed to call siteverify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.CaptchaResult{}, fmt.Errorf("siteverify returned status %d", resp.StatusCode)
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.CaptchaResult{}, fmt.Errorf("failed to decode siteverify response: %w", err)
	}

	return model.CaptchaResult{
		Success: body.Success,
		Score:   body.Score,
	}, nil
}

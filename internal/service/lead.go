package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/coinvest-server/internal/logger"
	"github.com/dtroode/coinvest-server/internal/model"
)

const (
	DefaultLeadListLimit = 50
	MaxLeadListLimit     = 500

	exportLimit       = 10000
	exportContentType = "text/csv"
)

type Lead struct {
	leadStore model.LeadStore
	userStore model.UserStore
	captcha   model.CaptchaVerifier
	storage   model.Storage
	logger    *logger.Logger
	now       func() time.Time
}

// NewLead creates the lead service. captcha and storage may be nil: submissions
// are then accepted without a challenge and exports report model.ErrStorageDisabled.
func NewLead(
	leadStore model.LeadStore,
	userStore model.UserStore,
	captcha model.CaptchaVerifier,
	storage model.Storage,
	logger *logger.Logger,
) *Lead {
	return &Lead{
		leadStore: leadStore,
		userStore: userStore,
		captcha:   captcha,
		storage:   storage,
		logger:    logger,
		now:       time.Now,
	}
}

type LeadParams struct {
	Name            string
	Email           string
	Phone           *string
	InvestmentRange *string
	Message         *string
	CaptchaToken    string
	RemoteIP        string
}

func (s *Lead) Submit(ctx context.Context, params LeadParams) (model.Lead, error) {
	if s.captcha != nil {
		if params.CaptchaToken == "" {
			return model.Lead{}, model.ErrCaptchaRejected
		}
		res, err := s.captcha.Verify(ctx, params.CaptchaToken, params.RemoteIP)
		if err != nil {
			s.logger.Warn("Lead service: captcha request failed",
				"error", err.Error())
			return model.Lead{}, fmt.Errorf("%w: %v", model.ErrCaptchaRejected, err)
		}
		if !res.Success {
			s.logger.Info("Lead service: captcha rejected",
				"remote_ip", params.RemoteIP)
			return model.Lead{}, model.ErrCaptchaRejected
		}
	}

	now := s.now()
	lead, err := s.leadStore.Create(ctx, model.Lead{
		ID:              uuid.New(),
		Name:            strings.TrimSpace(params.Name),
		Email:           strings.TrimSpace(params.Email),
		Phone:           params.Phone,
		InvestmentRange: params.InvestmentRange,
		Message:         params.Message,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		s.logger.Error("Lead service: failed to store lead",
			"error", err.Error())
		return model.Lead{}, fmt.Errorf("failed to create lead: %w", err)
	}

	s.logger.Info("Lead service: lead created",
		"lead_id", lead.ID)

	return lead, nil
}

// List returns recent leads. Non-positive limits fall back to the default and
// large ones are capped.
func (s *Lead) List(ctx context.Context, limit int) ([]model.Lead, error) {
	switch {
	case limit <= 0:
		limit = DefaultLeadListLimit
	case limit > MaxLeadListLimit:
		limit = MaxLeadListLimit
	}

	leads, err := s.leadStore.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

type Stats struct {
	TotalLeads     int64
	ConvertedLeads int64
	TotalUsers     int64
	// ConversionRate is the share of converted leads in percent, two decimals.
	ConversionRate float64
}

func (s *Lead) Stats(ctx context.Context) (Stats, error) {
	counts, err := s.leadStore.Counts(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to count leads: %w", err)
	}

	users, err := s.userStore.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to count users: %w", err)
	}

	stats := Stats{
		TotalLeads:     counts.Total,
		ConvertedLeads: counts.Converted,
		TotalUsers:     users,
	}
	if counts.Total > 0 {
		rate := float64(counts.Converted) / float64(counts.Total) * 100
		stats.ConversionRate = math.Round(rate*100) / 100
	}

	return stats, nil
}

// Export writes all leads as CSV to object storage and returns the object key.
func (s *Lead) Export(ctx context.Context) (string, error) {
	if s.storage == nil {
		return "", model.ErrStorageDisabled
	}

	leads, err := s.leadStore.List(ctx, exportLimit)
	if err != nil {
		return "", fmt.Errorf("failed to list leads: %w", err)
	}

	var buf bytes.Buffer
	if err := writeLeadsCSV(&buf, leads); err != nil {
		return "", fmt.Errorf("failed to encode leads: %w", err)
	}

	key := fmt.Sprintf("leads/leads-%s.csv", s.now().UTC().Format("20060102T150405Z"))
	if err := s.storage.Upload(ctx, key, &buf, exportContentType); err != nil {
		s.logger.Error("Lead service: failed to upload export",
			"key", key,
			"error", err.Error())
		return "", fmt.Errorf("failed to upload export: %w", err)
	}

	s.logger.Info("Lead service: leads exported",
		"key", key,
		"count", len(leads))

	return key, nil
}

func writeLeadsCSV(buf *bytes.Buffer, leads []model.Lead) error {
	w := csv.NewWriter(buf)
	header := []string{"id", "name", "email", "phone", "investment_range", "message", "converted_to_user", "created_at"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, l := range leads {
		row := []string{
			l.ID.String(),
			l.Name,
			l.Email,
			deref(l.Phone),
			deref(l.InvestmentRange),
			deref(l.Message),
			fmt.Sprintf("%t", l.ConvertedToUser),
			l.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

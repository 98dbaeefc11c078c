package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LeadStore defines persistence operations for contact form leads.
type LeadStore interface {
	Create(ctx context.Context, lead Lead) (Lead, error)
	List(ctx context.Context, limit int) ([]Lead, error)
	MarkConvertedByEmail(ctx context.Context, email string) error
	Counts(ctx context.Context) (LeadCounts, error)
}

// Lead is a contact request submitted from the landing page.
type Lead struct {
	ID              uuid.UUID
	Name            string
	Email           string
	Phone           *string
	InvestmentRange *string
	Message         *string
	ConvertedToUser bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// LeadCounts aggregates lead totals for the admin dashboard.
type LeadCounts struct {
	Total     int64
	Converted int64
}

package model

import (
	"context"
	"time"
)

// PlanStore defines read operations for the investment plan catalogue.
type PlanStore interface {
	ListActive(ctx context.Context) ([]InvestmentPlan, error)
}

// RiskLevel classifies an investment plan.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// FundType groups plans by underlying asset class.
type FundType string

const (
	FundCrypto       FundType = "crypto"
	FundRealEstate   FundType = "real-estate"
	FundEmergingTech FundType = "emerging-tech"
)

// Valid reports whether f is one of the known fund types.
func (f FundType) Valid() bool {
	switch f {
	case FundCrypto, FundRealEstate, FundEmergingTech:
		return true
	}
	return false
}

// InvestmentPlan is a read-only catalogue entry.
type InvestmentPlan struct {
	ID                int64
	Name              string
	Description       string
	MinimumInvestment float64
	MonthlyReturnRate float64
	DurationMonths    int
	RiskLevel         RiskLevel
	FundType          FundType
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

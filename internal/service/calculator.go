package service

import (
	"fmt"
	"math"

	"github.com/dtroode/coinvest-server/internal/model"
)

const (
	DefaultProjectionMonths = 12
	MaxProjectionMonths     = 120

	// InsufficientTier is reported for amounts below the Bronze minimum.
	InsufficientTier = "Investimento insuficiente"
)

// Tier is a return bracket. Max of zero means unbounded.
type Tier struct {
	Name          string
	Min           float64
	Max           float64
	MonthlyReturn float64
}

var tiers = []Tier{
	{Name: "Ouro", Min: 5000, Max: 10000, MonthlyReturn: 0.0833},
	{Name: "Prata", Min: 2500, Max: 4999, MonthlyReturn: 0.0625},
	{Name: "Bronze", Min: 1000, Max: 2499, MonthlyReturn: 0.0417},
	{Name: "Ouro (Premium)", Min: 10000, MonthlyReturn: 0.0833},
}

type Projection struct {
	Amount        float64
	Months        int
	Tier          string
	MonthlyRate   float64
	MonthlyProfit float64
	TotalProfit   float64
	TotalReturn   float64
	// CompoundReturn reinvests profit monthly: amount*(1+rate)^months.
	CompoundReturn float64
	Valid          bool
}

type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Project estimates returns for amount over months. months of zero selects the
// default horizon. Amounts below the lowest tier produce an invalid projection,
// not an error.
func (c *Calculator) Project(amount float64, months int) (Projection, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return Projection{}, fmt.Errorf("%w: amount must be a non-negative number", model.ErrInvalidInput)
	}
	if months == 0 {
		months = DefaultProjectionMonths
	}
	if months < 1 || months > MaxProjectionMonths {
		return Projection{}, fmt.Errorf("%w: months must be between 1 and %d", model.ErrInvalidInput, MaxProjectionMonths)
	}

	tier, ok := tierFor(amount)
	if !ok {
		return Projection{
			Amount:         amount,
			Months:         months,
			Tier:           InsufficientTier,
			TotalReturn:    amount,
			CompoundReturn: amount,
		}, nil
	}

	monthly := amount * tier.MonthlyReturn
	total := monthly * float64(months)

	return Projection{
		Amount:         amount,
		Months:         months,
		Tier:           tier.Name,
		MonthlyRate:    tier.MonthlyReturn,
		MonthlyProfit:  monthly,
		TotalProfit:    total,
		TotalReturn:    amount + total,
		CompoundReturn: amount * math.Pow(1+tier.MonthlyReturn, float64(months)),
		Valid:          true,
	}, nil
}

// tierFor walks brackets in priority order; the open-ended premium bracket
// only catches amounts above the Ouro maximum.
func tierFor(amount float64) (Tier, bool) {
	for _, t := range tiers {
		if t.Max == 0 {
			if amount > t.Min {
				return t, true
			}
			continue
		}
		if amount >= t.Min && amount <= t.Max {
			return t, true
		}
	}
	return Tier{}, false
}

package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/coinvest-server/internal/model"
)

var _ model.PlanStore = (*PlanRepository)(nil)

type PlanRepository struct {
	db *Connection
}

func NewPlanRepository(db *Connection) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) ListActive(ctx context.Context) ([]model.InvestmentPlan, error) {
	const query = `
        SELECT id, name, description, minimum_investment::float8, monthly_return_rate::float8,
               duration_months, risk_level, fund_type, is_active, created_at, updated_at
        FROM investment_plans WHERE is_active ORDER BY id
    `

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list investment plans: %w", err)
	}
	defer rows.Close()

	var plans []model.InvestmentPlan
	for rows.Next() {
		var p model.InvestmentPlan
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.MinimumInvestment, &p.MonthlyReturnRate,
			&p.DurationMonths, &p.RiskLevel, &p.FundType, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan investment plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate investment plans: %w", err)
	}

	return plans, nil
}

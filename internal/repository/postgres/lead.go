package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/coinvest-server/internal/model"
)

var _ model.LeadStore = (*LeadRepository)(nil)

type LeadRepository struct {
	db *Connection
}

func NewLeadRepository(db *Connection) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead model.Lead) (model.Lead, error) {
	const query = `
        INSERT INTO leads (id, name, email, phone, investment_range, message, converted_to_user, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $8)
        RETURNING id, name, email, phone, investment_range, message, converted_to_user, created_at, updated_at
    `

	var saved model.Lead
	err := r.db.QueryRow(ctx, query,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.InvestmentRange, lead.Message,
		lead.CreatedAt, lead.UpdatedAt,
	).Scan(
		&saved.ID, &saved.Name, &saved.Email, &saved.Phone, &saved.InvestmentRange, &saved.Message,
		&saved.ConvertedToUser, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Lead{}, fmt.Errorf("failed to create lead: %w", err)
	}

	return saved, nil
}

// List returns the most recent leads first.
func (r *LeadRepository) List(ctx context.Context, limit int) ([]model.Lead, error) {
	const query = `
        SELECT id, name, email, phone, investment_range, message, converted_to_user, created_at, updated_at
        FROM leads ORDER BY created_at DESC LIMIT $1
    `

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	leads := make([]model.Lead, 0, limit)
	for rows.Next() {
		var l model.Lead
		if err := rows.Scan(
			&l.ID, &l.Name, &l.Email, &l.Phone, &l.InvestmentRange, &l.Message,
			&l.ConvertedToUser, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leads: %w", err)
	}

	return leads, nil
}

// MarkConvertedByEmail flags every lead with email as converted. No matching lead is not an error.
func (r *LeadRepository) MarkConvertedByEmail(ctx context.Context, email string) error {
	const query = `
        UPDATE leads SET converted_to_user = TRUE, updated_at = NOW()
        WHERE lower(email) = lower($1) AND converted_to_user = FALSE
    `
	if _, err := r.db.Exec(ctx, query, email); err != nil {
		return fmt.Errorf("failed to mark lead converted: %w", err)
	}
	return nil
}

func (r *LeadRepository) Counts(ctx context.Context) (model.LeadCounts, error) {
	const query = `SELECT COUNT(*), COUNT(*) FILTER (WHERE converted_to_user) FROM leads`

	var c model.LeadCounts
	if err := r.db.QueryRow(ctx, query).Scan(&c.Total, &c.Converted); err != nil {
		return model.LeadCounts{}, fmt.Errorf("failed to count leads: %w", err)
	}
	return c, nil
}

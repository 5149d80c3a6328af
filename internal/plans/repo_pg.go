package plans

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) List(ctx context.Context) ([]Plan, error) {
	const query = `
SELECT id, code, name, price_cents, currency, billing_interval, monthly_imports, monthly_reviews, features, active, created_at
FROM plans
WHERE active = true
ORDER BY price_cents ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByCode(ctx context.Context, code string) (Plan, error) {
	const query = `
SELECT id, code, name, price_cents, currency, billing_interval, monthly_imports, monthly_reviews, features, active, created_at
FROM plans
WHERE code = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, code)
	p, err := scanPlan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Plan{}, ErrNotFound
		}
		return Plan{}, err
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (Plan, error) {
	var p Plan
	var features []byte
	err := row.Scan(
		&p.ID,
		&p.Code,
		&p.Name,
		&p.PriceCents,
		&p.Currency,
		&p.Interval,
		&p.MonthlyImports,
		&p.MonthlyReviews,
		&features,
		&p.Active,
		&p.CreatedAt,
	)
	if err != nil {
		return Plan{}, err
	}
	if len(features) > 0 {
		if err := json.Unmarshal(features, &p.Features); err != nil {
			return Plan{}, err
		}
	}
	return p, nil
}

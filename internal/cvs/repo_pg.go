package cvs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres. Sections are stored as a JSONB
// payload; structure inside a CV changes too often to normalize into columns.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new CV document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO cvs (id, user_id, title, sections, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	sections, err := json.Marshal(doc.Sections)
	if err != nil {
		return fmt.Errorf("marshal sections: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query, doc.ID, doc.UserID, doc.Title, sections, doc.CreatedAt, doc.UpdatedAt)
	return err
}

// GetByID returns a CV by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, cvID string) (Document, error) {
	const query = `
SELECT id, user_id, title, sections, created_at, updated_at
FROM cvs
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, cvID, userID))
}

// GetCurrentByUser returns the latest CV for a user.
func (r *PGRepo) GetCurrentByUser(ctx context.Context, userID string) (Document, error) {
	const query = `
SELECT id, user_id, title, sections, created_at, updated_at
FROM cvs
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID))
}

// ClaimGuest reassigns guest-owned CVs to the authenticated user.
func (r *PGRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	const query = `
UPDATE cvs
SET user_id = $1, updated_at = now()
WHERE user_id = $2 AND deleted_at IS NULL`
	res, err := r.DB.ExecContext(ctx, query, authedUserID, guestUserID)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}

// Update replaces the stored sections and title for a CV.
func (r *PGRepo) Update(ctx context.Context, doc Document) error {
	const query = `
UPDATE cvs
SET title = $3, sections = $4, updated_at = $5
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

	sections, err := json.Marshal(doc.Sections)
	if err != nil {
		return fmt.Errorf("marshal sections: %w", err)
	}
	res, err := r.DB.ExecContext(ctx, query, doc.ID, doc.UserID, doc.Title, sections, time.Now().UTC())
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) scanOne(row *sql.Row) (Document, error) {
	var doc Document
	var sections []byte
	err := row.Scan(&doc.ID, &doc.UserID, &doc.Title, &sections, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	if len(sections) > 0 {
		if err := json.Unmarshal(sections, &doc.Sections); err != nil {
			return Document{}, fmt.Errorf("unmarshal sections: %w", err)
		}
	}
	return doc, nil
}

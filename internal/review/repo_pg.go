package review

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Queue, overrides and collected
// section data are JSONB payloads; the queue is immutable after creation and
// only cursor/status/overrides change per advance.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new review session.
func (r *PGRepo) Create(ctx context.Context, session Session) error {
	const query = `
INSERT INTO review_sessions (id, user_id, cv_id, queue, cursor_pos, overrides, section_data, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	queue, overrides, sectionData, err := marshalSessionPayloads(session)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.CVID,
		queue,
		session.Cursor,
		overrides,
		sectionData,
		session.Status,
		session.CreatedAt,
		session.UpdatedAt,
	)
	return err
}

// Get returns a session by ID for a user.
func (r *PGRepo) Get(ctx context.Context, userID, sessionID string) (Session, error) {
	const query = `
SELECT id, user_id, cv_id, queue, cursor_pos, overrides, section_data, status, created_at, updated_at
FROM review_sessions
WHERE id = $1 AND user_id = $2`

	var session Session
	var queue, overrides, sectionData []byte
	err := r.DB.QueryRowContext(ctx, query, sessionID, userID).Scan(
		&session.ID,
		&session.UserID,
		&session.CVID,
		&queue,
		&session.Cursor,
		&overrides,
		&sectionData,
		&session.Status,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}

	if len(queue) > 0 {
		if err := json.Unmarshal(queue, &session.Queue); err != nil {
			return Session{}, fmt.Errorf("unmarshal queue: %w", err)
		}
	}
	if len(overrides) > 0 {
		if err := json.Unmarshal(overrides, &session.Overrides); err != nil {
			return Session{}, fmt.Errorf("unmarshal overrides: %w", err)
		}
	}
	if len(sectionData) > 0 {
		if err := json.Unmarshal(sectionData, &session.SectionData); err != nil {
			return Session{}, fmt.Errorf("unmarshal section data: %w", err)
		}
	}
	return session, nil
}

// Update replaces the mutable parts of a stored session.
func (r *PGRepo) Update(ctx context.Context, session Session) error {
	const query = `
UPDATE review_sessions
SET cursor_pos = $3, overrides = $4, section_data = $5, status = $6, updated_at = $7
WHERE id = $1 AND user_id = $2`

	_, overrides, sectionData, err := marshalSessionPayloads(session)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.Cursor,
		overrides,
		sectionData,
		session.Status,
		session.UpdatedAt,
	)
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

// ClaimGuest reassigns guest-owned sessions to the authenticated user.
func (r *PGRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	const query = `
UPDATE review_sessions
SET user_id = $1, updated_at = now()
WHERE user_id = $2`
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

func marshalSessionPayloads(session Session) (queue, overrides, sectionData []byte, err error) {
	if queue, err = json.Marshal(session.Queue); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal queue: %w", err)
	}
	if session.Overrides == nil {
		overrides = []byte("{}")
	} else if overrides, err = json.Marshal(session.Overrides); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal overrides: %w", err)
	}
	if session.SectionData == nil {
		sectionData = []byte("{}")
	} else if sectionData, err = json.Marshal(session.SectionData); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal section data: %w", err)
	}
	return queue, overrides, sectionData, nil
}

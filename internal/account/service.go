package account

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"cvbuilder-backend/internal/cvs"
	"cvbuilder-backend/internal/review"
)

type Service struct {
	CVRepo      cvs.Repo
	SessionRepo review.Repo
}

type ClaimResult struct {
	MigratedCVs      int `json:"migratedCvs"`
	MigratedSessions int `json:"migratedSessions"`
}

func NewService(cvRepo cvs.Repo, sessionRepo review.Repo) *Service {
	return &Service{CVRepo: cvRepo, SessionRepo: sessionRepo}
}

// ClaimGuest moves guest-owned CVs and review sessions to the authenticated
// user after login. Both Postgres repos share a connection, so the transfer
// runs in one transaction there.
func (s *Service) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (ClaimResult, error) {
	if strings.TrimSpace(guestUserID) == "" || strings.TrimSpace(authedUserID) == "" {
		return ClaimResult{}, errors.New("guestUserID and authedUserID are required")
	}

	if cvPG, ok := s.CVRepo.(*cvs.PGRepo); ok && cvPG != nil && cvPG.DB != nil {
		if sessionPG, ok := s.SessionRepo.(*review.PGRepo); ok && sessionPG != nil && sessionPG.DB != nil {
			return claimWithTx(ctx, cvPG.DB, guestUserID, authedUserID)
		}
	}

	cvCount, err := claimFrom(ctx, s.CVRepo, guestUserID, authedUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	sessionCount, err := claimFrom(ctx, s.SessionRepo, guestUserID, authedUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	return ClaimResult{MigratedCVs: cvCount, MigratedSessions: sessionCount}, nil
}

func claimWithTx(ctx context.Context, db *sql.DB, guestUserID, authedUserID string) (ClaimResult, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return ClaimResult{}, err
	}
	defer tx.Rollback()

	cvRes, err := tx.ExecContext(ctx, `UPDATE cvs SET user_id = $1, updated_at = now() WHERE user_id = $2 AND deleted_at IS NULL`, authedUserID, guestUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	cvCount, _ := cvRes.RowsAffected()

	sessionRes, err := tx.ExecContext(ctx, `UPDATE review_sessions SET user_id = $1, updated_at = now() WHERE user_id = $2`, authedUserID, guestUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	sessionCount, _ := sessionRes.RowsAffected()

	if err := tx.Commit(); err != nil {
		return ClaimResult{}, err
	}
	return ClaimResult{MigratedCVs: int(cvCount), MigratedSessions: int(sessionCount)}, nil
}

type guestClaimer interface {
	ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error)
}

func claimFrom(ctx context.Context, repo any, guestUserID, authedUserID string) (int, error) {
	claimer, ok := repo.(guestClaimer)
	if !ok {
		return 0, errors.New("repo does not support claim")
	}
	return claimer.ClaimGuest(ctx, guestUserID, authedUserID)
}

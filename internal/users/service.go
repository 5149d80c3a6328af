package users

import (
	"context"
	"errors"
	"strings"

	"cvbuilder-backend/internal/cvs"
)

// Service manages accounts and their link to the owned CV.
type Service struct {
	Repo Repo
	CVs  cvs.Repo
}

func NewService(repo Repo, cvRepo cvs.Repo) *Service {
	return &Service{Repo: repo, CVs: cvRepo}
}

// UpsertFromAuth persists the identity delivered by the OAuth callback. The
// store assigns the default plan to new accounts and keeps a previously
// chosen plan on re-authentication.
func (s *Service) UpsertFromAuth(ctx context.Context, user User) error {
	if s == nil || s.Repo == nil {
		return errors.New("users service not configured")
	}
	if strings.TrimSpace(user.ID) == "" || strings.TrimSpace(user.Email) == "" {
		return errors.New("user id and email are required")
	}
	return s.Repo.Upsert(ctx, user)
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}

// Profile loads the account plus the CV the builder opens on load. A user
// without a CV yet gets a profile with an empty CurrentCVID.
func (s *Service) Profile(ctx context.Context, userID string) (Profile, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	profile := Profile{User: user}
	if s.CVs == nil {
		return profile, nil
	}
	doc, err := s.CVs.GetCurrentByUser(ctx, userID)
	switch {
	case err == nil:
		profile.CurrentCVID = doc.ID
	case errors.Is(err, cvs.ErrNotFound):
	default:
		return Profile{}, err
	}
	return profile, nil
}

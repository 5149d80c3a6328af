package plans

import (
	"context"
	"strings"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// List returns the active catalog. An empty database falls back to the
// built-in defaults so a fresh deployment still renders a pricing page.
func (s *Service) List(ctx context.Context) ([]Plan, error) {
	plans, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return Defaults(), nil
	}
	return plans, nil
}

func (s *Service) GetByCode(ctx context.Context, code string) (Plan, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return Plan{}, ErrNotFound
	}
	return s.Repo.GetByCode(ctx, code)
}

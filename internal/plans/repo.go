package plans

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no plan matches the requested code.
var ErrNotFound = errors.New("plan not found")

// Repo abstracts plan catalog storage.
type Repo interface {
	List(ctx context.Context) ([]Plan, error)
	GetByCode(ctx context.Context, code string) (Plan, error)
}

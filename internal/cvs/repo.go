package cvs

import "context"

// Repo defines persistence operations for CV documents.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, userID, cvID string) (Document, error)
	GetCurrentByUser(ctx context.Context, userID string) (Document, error)
	Update(ctx context.Context, doc Document) error
}

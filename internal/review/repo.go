package review

import "context"

// Repo defines persistence operations for review sessions.
type Repo interface {
	Create(ctx context.Context, session Session) error
	Get(ctx context.Context, userID, sessionID string) (Session, error)
	Update(ctx context.Context, session Session) error
}

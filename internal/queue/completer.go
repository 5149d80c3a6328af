package queue

import (
	"context"
	"time"

	"cvbuilder-backend/internal/review"
)

// ReviewCompleter publishes a completion event for every finished review
// session. It satisfies review.Completer so the review service stays unaware
// of the queue backend.
type ReviewCompleter struct {
	Client Client
}

func NewReviewCompleter(client Client) *ReviewCompleter {
	return &ReviewCompleter{Client: client}
}

func (c *ReviewCompleter) ReviewCompleted(ctx context.Context, session review.Session, final []review.Suggestion) error {
	return c.Client.Send(ctx, Message{
		SessionID:   session.ID,
		CVID:        session.CVID,
		UserID:      session.UserID,
		Accepted:    len(final),
		CompletedAt: time.Now().UTC().Format(time.RFC3339),
		Version:     1,
	})
}

var _ review.Completer = (*ReviewCompleter)(nil)

package review

import "errors"

var (
	// ErrNotFound indicates the session does not exist for the user.
	ErrNotFound = errors.New("review session not found")
	// ErrInvalidInput indicates the caller supplied an unusable payload.
	ErrInvalidInput = errors.New("invalid input")
	// ErrSessionComplete indicates an advance was attempted on a finished
	// session.
	ErrSessionComplete = errors.New("review session already complete")
)

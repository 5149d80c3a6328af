package cvs

import "errors"

var (
	// ErrNotFound indicates the requested CV does not exist for the user.
	ErrNotFound = errors.New("cv not found")
	// ErrInvalidInput indicates the caller supplied an unusable payload.
	ErrInvalidInput = errors.New("invalid input")
)

package review

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo used in dev and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Session // sessionID -> session
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Session)}
}

// Create stores a new session.
func (r *MemoryRepo) Create(ctx context.Context, session Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[session.ID] = cloneSession(session)
	return nil
}

// Get returns a session by ID for a user.
func (r *MemoryRepo) Get(ctx context.Context, userID, sessionID string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.data[sessionID]
	if !ok || session.UserID != userID {
		return Session{}, ErrNotFound
	}
	return cloneSession(session), nil
}

// Update replaces a stored session.
func (r *MemoryRepo) Update(ctx context.Context, session Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.data[session.ID]
	if !ok || stored.UserID != session.UserID {
		return ErrNotFound
	}
	r.data[session.ID] = cloneSession(session)
	return nil
}

// ClaimGuest reassigns every session owned by the guest identity to the
// authenticated user and returns the number of sessions moved.
func (r *MemoryRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for id, session := range r.data {
		if session.UserID == guestUserID {
			session.UserID = authedUserID
			r.data[id] = session
			count++
		}
	}
	return count, nil
}

// cloneSession copies the mutable parts so callers never share state with the
// store.
func cloneSession(s Session) Session {
	out := s
	out.Queue = append([]Suggestion(nil), s.Queue...)
	if s.Overrides != nil {
		out.Overrides = make(map[string]string, len(s.Overrides))
		for k, v := range s.Overrides {
			out.Overrides[k] = v
		}
	}
	if s.SectionData != nil {
		out.SectionData = make(map[string]json.RawMessage, len(s.SectionData))
		for k, v := range s.SectionData {
			out.SectionData[k] = append(json.RawMessage(nil), v...)
		}
	}
	return out
}

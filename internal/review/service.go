package review

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"cvbuilder-backend/internal/cvs"
	"cvbuilder-backend/internal/shared/metrics"
	"cvbuilder-backend/internal/shared/telemetry"
)

// Completer receives the final suggestion list exactly once, when a session
// reaches its terminal state.
type Completer interface {
	ReviewCompleted(ctx context.Context, session Session, final []Suggestion) error
}

// Sequencer builds the review queue from the raw suggestion list and the
// document snapshot. Wired to the sequence package; an interface here keeps
// the service testable without a document fixture.
type Sequencer func(suggestions []Suggestion, doc *cvs.Document) []Suggestion

// Service drives review sessions: one forward pass over a sequenced queue of
// suggestions, with per-item accept/edit/skip resolution.
type Service struct {
	Repo      Repo
	CVs       cvs.Repo
	Sequence  Sequencer
	Completer Completer
}

// Start creates a session for the user's CV from a raw suggestion list. The
// queue is sequenced once here and never re-derived mid-session.
func (s *Service) Start(ctx context.Context, userID, cvID string, suggestions []Suggestion) (Session, error) {
	if userID == "" {
		return Session{}, errors.New("user id required")
	}
	doc, err := s.CVs.GetByID(ctx, userID, cvID)
	if err != nil {
		return Session{}, err
	}

	queue := s.Sequence(suggestions, &doc)
	if len(queue) == 0 {
		return Session{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	session := Session{
		ID:          uuid.NewString(),
		UserID:      userID,
		CVID:        cvID,
		Queue:       queue,
		Cursor:      0,
		Overrides:   make(map[string]string),
		SectionData: make(map[string]json.RawMessage),
		Status:      StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, session); err != nil {
		return Session{}, err
	}

	metrics.IncReviewStarted()
	telemetry.Info("review.session.started", map[string]any{
		"session_id": session.ID,
		"cv_id":      cvID,
		"queue_len":  len(queue),
	})
	return session, nil
}

// Get returns a session by ID.
func (s *Service) Get(ctx context.Context, userID, sessionID string) (Session, error) {
	if sessionID == "" {
		return Session{}, ErrInvalidInput
	}
	return s.Repo.Get(ctx, userID, sessionID)
}

// Accept keeps the current item's suggestion as-is and advances.
func (s *Service) Accept(ctx context.Context, userID, sessionID string) (Session, []Suggestion, error) {
	return s.advance(ctx, userID, sessionID, "", nil, false)
}

// Skip advances without recording an override. Skip and accept differ only in
// UI affordance; neither persists a distinct skipped marker.
func (s *Service) Skip(ctx context.Context, userID, sessionID string) (Session, []Suggestion, error) {
	return s.advance(ctx, userID, sessionID, "", nil, false)
}

// Edit records the user's replacement text for the current item and advances.
// Empty or whitespace-only text records nothing and behaves exactly like
// Accept; an empty edit is never an error.
func (s *Service) Edit(ctx context.Context, userID, sessionID, text string) (Session, []Suggestion, error) {
	return s.advance(ctx, userID, sessionID, text, nil, false)
}

// CompleteSection resolves a missing-section placeholder with the collected
// form data. The payload is opaque here: stored on the session and forwarded
// with the final list, never interpreted.
func (s *Service) CompleteSection(ctx context.Context, userID, sessionID string, data json.RawMessage) (Session, []Suggestion, error) {
	return s.advance(ctx, userID, sessionID, "", data, true)
}

func (s *Service) advance(ctx context.Context, userID, sessionID, editText string, sectionData json.RawMessage, wantNewSection bool) (Session, []Suggestion, error) {
	session, err := s.Repo.Get(ctx, userID, sessionID)
	if err != nil {
		return Session{}, nil, err
	}
	if session.Complete() {
		return Session{}, nil, ErrSessionComplete
	}

	current, _ := session.CurrentItem()
	if wantNewSection && !current.IsNewSection() {
		return Session{}, nil, ErrInvalidInput
	}

	if strings.TrimSpace(editText) != "" {
		if session.Overrides == nil {
			session.Overrides = make(map[string]string)
		}
		session.Overrides[current.ID] = editText
	}
	if len(sectionData) > 0 {
		if session.SectionData == nil {
			session.SectionData = make(map[string]json.RawMessage)
		}
		session.SectionData[current.ID] = sectionData
		telemetry.Info("review.section.collected", map[string]any{
			"session_id": session.ID,
			"section":    current.Section,
		})
	}

	session.Cursor++
	session.UpdatedAt = time.Now().UTC()

	var final []Suggestion
	if session.Complete() {
		session.Status = StatusComplete
		final = session.FinalSuggestions()
	}

	if err := s.Repo.Update(ctx, session); err != nil {
		return Session{}, nil, err
	}

	if final != nil {
		s.notifyComplete(ctx, session, final)
	}
	return session, final, nil
}

// notifyComplete hands the final list to the persistence collaborator. The
// session is already complete and saved at this point; a collaborator failure
// is logged, not surfaced, so the review itself never blocks on downstream.
func (s *Service) notifyComplete(ctx context.Context, session Session, final []Suggestion) {
	metrics.IncReviewCompleted()
	metrics.ObserveReviewDurationMs(float64(session.UpdatedAt.Sub(session.CreatedAt).Milliseconds()))
	telemetry.Info("review.session.completed", map[string]any{
		"session_id":  session.ID,
		"cv_id":       session.CVID,
		"suggestions": len(final),
		"overrides":   len(session.Overrides),
	})
	if s.Completer == nil {
		return
	}
	if err := s.Completer.ReviewCompleted(ctx, session, final); err != nil {
		telemetry.Error("review.completion.notify_failed", map[string]any{
			"session_id": session.ID,
			"error":      err.Error(),
		})
	}
}

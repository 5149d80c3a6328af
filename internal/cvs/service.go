package cvs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"cvbuilder-backend/internal/extract"
	"cvbuilder-backend/internal/shared/metrics"
	"cvbuilder-backend/internal/shared/storage/object"
)

// Service contains business logic for CV documents.
type Service struct {
	Repo  Repo
	Store object.Store
}

// Create stores a new CV built from the given sections.
func (s *Service) Create(ctx context.Context, userID, title string, sections []Section) (Document, error) {
	if userID == "" {
		return Document{}, errors.New("user id required")
	}
	if strings.TrimSpace(title) == "" {
		title = "Untitled CV"
	}
	now := time.Now().UTC()
	doc := Document{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Sections:  sections,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Current returns the user's latest CV.
func (s *Service) Current(ctx context.Context, userID string) (Document, error) {
	if userID == "" {
		return Document{}, errors.New("user id required")
	}
	return s.Repo.GetCurrentByUser(ctx, userID)
}

// Get returns one CV by ID.
func (s *Service) Get(ctx context.Context, userID, cvID string) (Document, error) {
	if cvID == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, cvID)
}

// Update replaces the sections of the user's CV.
func (s *Service) Update(ctx context.Context, userID, cvID, title string, sections []Section) (Document, error) {
	doc, err := s.Repo.GetByID(ctx, userID, cvID)
	if err != nil {
		return Document{}, err
	}
	if strings.TrimSpace(title) != "" {
		doc.Title = title
	}
	doc.Sections = sections
	doc.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Import stores an uploaded CV file, extracts its text and seeds a new
// document from it. The original file is retained in object storage so later
// re-imports can reprocess it.
func (s *Service) Import(ctx context.Context, userID, fileName string, r io.Reader) (Document, error) {
	if fileName == "" {
		return Document{}, ErrInvalidInput
	}

	storageKey, _, mimeType, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return Document{}, fmt.Errorf("store import: %w", err)
	}

	text, err := extract.Text(ctx, s.Store, storageKey, mimeType, fileName)
	if err != nil {
		return Document{}, fmt.Errorf("extract import: %w", err)
	}

	metrics.IncCVImport()
	return s.Create(ctx, userID, fileName, seedSections(fileName, text))
}

// seedSections builds the minimal section set for an imported CV: an empty
// header and the raw text parked in a freeform section for later structuring.
func seedSections(fileName, text string) []Section {
	return []Section{
		{
			ID:    "header",
			Title: "Header",
			Kind:  SectionKindObject,
			Fields: map[string]string{
				"name":     "",
				"title":    "",
				"email":    "",
				"phone":    "",
				"location": "",
				"source":   fileName,
			},
		},
		{
			ID:    "imported",
			Title: "Imported Content",
			Kind:  SectionKindObject,
			Fields: map[string]string{
				"text": text,
			},
		},
	}
}

package cvs

import "time"

// DocumentResponse is the outward-facing representation of a CV document.
type DocumentResponse struct {
	CVID      string    `json:"cvId"`
	Title     string    `json:"title"`
	Sections  []Section `json:"sections"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(doc Document) DocumentResponse {
	sections := doc.Sections
	if sections == nil {
		sections = []Section{}
	}
	return DocumentResponse{
		CVID:      doc.ID,
		Title:     doc.Title,
		Sections:  sections,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

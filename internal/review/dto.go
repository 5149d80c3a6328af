package review

import (
	"cvbuilder-backend/internal/review/draft"
)

// SessionResponse is the outward-facing representation of a review session.
type SessionResponse struct {
	SessionID string       `json:"sessionId"`
	CVID      string       `json:"cvId"`
	Status    string       `json:"status"`
	Position  int          `json:"position"`
	Total     int          `json:"total"`
	Current   *CurrentItem `json:"current,omitempty"`
	Final     []Suggestion `json:"final,omitempty"`
}

// CurrentItem is the suggestion under review plus the editing hints the
// client needs to present the right affordance: the resolved edit mode and,
// for list-shaped suggestions, the seeded list entries.
type CurrentItem struct {
	Suggestion
	NewSection bool       `json:"newSection"`
	EditMode   draft.Mode `json:"editMode"`
	EditItems  []string   `json:"editItems,omitempty"`
}

func toSessionResponse(session Session, final []Suggestion) SessionResponse {
	resp := SessionResponse{
		SessionID: session.ID,
		CVID:      session.CVID,
		Status:    session.Status,
		Position:  session.Cursor,
		Total:     len(session.Queue),
		Final:     final,
	}
	if item, ok := session.CurrentItem(); ok {
		editor := draft.NewEditor(item.Suggested, nil)
		resp.Current = &CurrentItem{
			Suggestion: item,
			NewSection: item.IsNewSection(),
			EditMode:   editor.EffectiveMode(),
			EditItems:  editor.Items(),
		}
	}
	return resp
}

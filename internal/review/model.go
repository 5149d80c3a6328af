package review

import (
	"encoding/json"
	"strings"
	"time"
)

// FieldNewSection is the sentinel field path marking a suggestion that asks
// the user to add a section the document does not have yet.
const FieldNewSection = "new_section"

// Suggestion is one proposed edit to one field of one CV section, with a
// human-readable justification. Current and Suggested are wire strings and may
// themselves encode a list as a JSON array string.
type Suggestion struct {
	ID        string `json:"id"`
	Section   string `json:"section"`
	Field     string `json:"field"`
	Current   string `json:"current"`
	Suggested string `json:"suggested"`
	Reason    string `json:"reason"`
}

// IsNewSection reports whether the suggestion is a synthesized
// missing-section placeholder.
func (s Suggestion) IsNewSection() bool {
	return s.Field == FieldNewSection
}

// Session status values.
const (
	StatusActive   = "active"
	StatusComplete = "complete"
)

// Session is one complete pass of a user reviewing suggestions for a CV. The
// queue is built once at session start and never re-derived; navigation is
// strictly forward.
type Session struct {
	ID          string
	UserID      string
	CVID        string
	Queue       []Suggestion
	Cursor      int
	Overrides   map[string]string
	SectionData map[string]json.RawMessage
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Complete reports whether the cursor has passed the end of the queue.
func (s *Session) Complete() bool {
	return s.Cursor >= len(s.Queue)
}

// CurrentItem returns the suggestion under the cursor.
func (s *Session) CurrentItem() (Suggestion, bool) {
	if s.Complete() {
		return Suggestion{}, false
	}
	return s.Queue[s.Cursor], true
}

// EffectiveSuggested returns the value the user settled on for an item: the
// override if one was recorded, the original suggestion otherwise.
func (s *Session) EffectiveSuggested(item Suggestion) string {
	if s.Overrides != nil {
		if override, ok := s.Overrides[item.ID]; ok && strings.TrimSpace(override) != "" {
			return override
		}
	}
	return item.Suggested
}

// FinalSuggestions returns the queue with each item's Suggested field patched
// from the recorded overrides. This is the payload handed to the persistence
// collaborator when the session completes.
func (s *Session) FinalSuggestions() []Suggestion {
	out := make([]Suggestion, len(s.Queue))
	for i, item := range s.Queue {
		item.Suggested = s.EffectiveSuggested(item)
		out[i] = item
	}
	return out
}

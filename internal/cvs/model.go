package cvs

import (
	"fmt"
	"time"
)

// SectionKind distinguishes the two structural shapes a CV section can take.
type SectionKind string

const (
	// SectionKindObject is a flat mapping of field id to scalar value, used
	// for contact/header data.
	SectionKindObject SectionKind = "object"
	// SectionKindList is an ordered sequence of structurally similar item
	// records, used for experience, education, projects and the like.
	SectionKindList SectionKind = "list"
)

// Document is a structured CV owned by a user.
type Document struct {
	ID        string
	UserID    string
	Title     string
	Sections  []Section
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Section is one tagged-variant section of a CV document.
type Section struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Kind     SectionKind       `json:"kind"`
	Fields   map[string]string `json:"fields,omitempty"`
	Items    []Item            `json:"items,omitempty"`
	Template Item              `json:"template,omitempty"`
}

// Item is one record of a list section. Values are either scalar strings or
// ordered string collections; after a JSON round trip collections arrive as
// []any, so access goes through the typed helpers below.
type Item map[string]any

// String returns the scalar value stored under key, coercing non-string
// scalars to their printed form.
func (it Item) String(key string) (string, bool) {
	raw, ok := it[key]
	if !ok || raw == nil {
		return "", false
	}
	switch val := raw.(type) {
	case string:
		return val, true
	case []any, []string:
		return "", false
	default:
		return fmt.Sprintf("%v", val), true
	}
}

// Strings returns the ordered collection stored under key.
func (it Item) Strings(key string) ([]string, bool) {
	raw, ok := it[key]
	if !ok || raw == nil {
		return nil, false
	}
	switch val := raw.(type) {
	case []string:
		return val, true
	case []any:
		out := make([]string, 0, len(val))
		for _, el := range val {
			if s, ok := el.(string); ok {
				out = append(out, s)
			} else if el != nil {
				out = append(out, fmt.Sprintf("%v", el))
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// Clone returns a deep copy of the item.
func (it Item) Clone() Item {
	if it == nil {
		return nil
	}
	out := make(Item, len(it))
	for k, v := range it {
		if list, ok := v.([]any); ok {
			copied := make([]any, len(list))
			copy(copied, list)
			out[k] = copied
			continue
		}
		if list, ok := v.([]string); ok {
			copied := make([]string, len(list))
			copy(copied, list)
			out[k] = copied
			continue
		}
		out[k] = v
	}
	return out
}

// Package content normalizes the heterogeneous suggestion payloads produced
// upstream (JSON-array strings, newline-delimited text, plain strings) into a
// single canonical representation and serializes it back.
package content

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind tags a canonical value as a scalar or an ordered list.
type Kind int

const (
	KindScalar Kind = iota
	KindList
)

// Value is the canonical in-memory form of a suggestion payload.
type Value struct {
	Kind  Kind
	Text  string
	Items []string
}

// Scalar builds a scalar value.
func Scalar(text string) Value {
	return Value{Kind: KindScalar, Text: text}
}

// List builds a list value.
func List(items []string) Value {
	return Value{Kind: KindList, Items: items}
}

// Parse converts a raw wire string into its canonical value. The rules are
// total: malformed JSON is treated as "not an array" and falls through to
// line-splitting, never returned as an error.
func Parse(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return List(nil)
	}

	if items, ok := parseJSONArray(trimmed); ok {
		return List(items)
	}

	lines := splitLines(raw)
	if len(lines) > 1 {
		return List(lines)
	}

	return Scalar(raw)
}

// IsJSONArray reports whether raw parses as a JSON array. Used to pick the
// list editing mode for array-shaped suggestions.
func IsJSONArray(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "[") {
		return false
	}
	var parsed []any
	return json.Unmarshal([]byte(trimmed), &parsed) == nil
}

// Wire serializes the value back to its wire string. A list becomes a JSON
// array when preferJSONArray is set (the original payload was array-shaped) or
// newline-joined text otherwise. A single-element list always collapses to the
// bare element so users never see JSON syntax around one line of text.
func (v Value) Wire(preferJSONArray bool) string {
	if v.Kind == KindScalar {
		return v.Text
	}
	switch len(v.Items) {
	case 0:
		return ""
	case 1:
		return v.Items[0]
	}
	if preferJSONArray {
		data, err := json.Marshal(v.Items)
		if err == nil {
			return string(data)
		}
	}
	return strings.Join(v.Items, "\n")
}

// Strings returns the value as an ordered slice: list items as-is, a non-empty
// scalar as a single-element slice.
func (v Value) Strings() []string {
	if v.Kind == KindList {
		return v.Items
	}
	if strings.TrimSpace(v.Text) == "" {
		return nil
	}
	return []string{v.Text}
}

func parseJSONArray(trimmed string) ([]string, bool) {
	if !strings.HasPrefix(trimmed, "[") {
		return nil, false
	}
	var parsed []any
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return nil, false
	}
	items := make([]string, 0, len(parsed))
	for _, el := range parsed {
		text := coerceString(el)
		if strings.TrimSpace(text) == "" {
			continue
		}
		items = append(items, text)
	}
	return items, true
}

func coerceString(el any) string {
	switch val := el.(type) {
	case string:
		return val
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}

func splitLines(raw string) []string {
	parts := strings.Split(raw, "\n")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// Package draft models the edit-capture state for one suggestion: whether the
// user edits a single text block or an ordered list of entries, seeded from
// the suggested content, always serializable back to one wire string.
package draft

import (
	"strings"

	"cvbuilder-backend/internal/review/content"
)

// Mode selects the editing affordance.
type Mode string

const (
	// ModeAuto resolves to list for JSON-array-shaped suggested content and
	// text otherwise.
	ModeAuto Mode = "auto"
	ModeList Mode = "list"
	ModeText Mode = "text"
)

// Editor is a controlled edit buffer bound to one suggestion's content. Every
// mutation pushes the canonical wire string to the change callback so the
// caller always holds a ready-to-store value.
type Editor struct {
	suggested string
	mode      Mode
	text      string
	items     []string
	onChange  func(string)
}

// NewEditor builds an editor for the given suggested content. onChange may be
// nil when the caller polls Value instead.
func NewEditor(suggested string, onChange func(string)) *Editor {
	e := &Editor{onChange: onChange}
	e.Reset(suggested)
	return e
}

// EffectiveMode resolves auto mode against the shape of the suggested content.
func (e *Editor) EffectiveMode() Mode {
	if e.mode != ModeAuto {
		return e.mode
	}
	if content.IsJSONArray(e.suggested) {
		return ModeList
	}
	return ModeText
}

// SetMode switches the editing affordance, converting the current value:
// entering list mode with an empty buffer seeds items from the suggested
// content, entering text mode joins existing items with newlines.
func (e *Editor) SetMode(mode Mode) {
	if mode != ModeList && mode != ModeText && mode != ModeAuto {
		return
	}
	previous := e.EffectiveMode()
	e.mode = mode
	next := e.EffectiveMode()
	if previous == next {
		return
	}

	switch next {
	case ModeList:
		if strings.TrimSpace(e.text) != "" {
			e.items = content.Parse(e.text).Strings()
		} else if len(e.items) == 0 {
			e.items = content.Parse(e.suggested).Strings()
		}
	case ModeText:
		if len(e.items) > 0 {
			e.text = strings.Join(e.items, "\n")
		}
	}
	e.emit()
}

// SetText replaces the text buffer.
func (e *Editor) SetText(text string) {
	e.text = text
	e.emit()
}

// SetItems replaces the list buffer.
func (e *Editor) SetItems(items []string) {
	e.items = append([]string(nil), items...)
	e.emit()
}

// AddItem appends one list entry.
func (e *Editor) AddItem(text string) {
	e.items = append(e.items, text)
	e.emit()
}

// UpdateItem replaces the entry at index; out-of-range indexes are ignored.
func (e *Editor) UpdateItem(index int, text string) {
	if index < 0 || index >= len(e.items) {
		return
	}
	e.items[index] = text
	e.emit()
}

// RemoveItem deletes the entry at index; out-of-range indexes are ignored.
func (e *Editor) RemoveItem(index int) {
	if index < 0 || index >= len(e.items) {
		return
	}
	e.items = append(e.items[:index], e.items[index+1:]...)
	e.emit()
}

// Items returns a copy of the list buffer.
func (e *Editor) Items() []string {
	if len(e.items) == 0 {
		return nil
	}
	return append([]string(nil), e.items...)
}

// Value serializes the buffer to its wire string. List buffers keep the JSON
// array shape when the suggestion arrived array-shaped.
func (e *Editor) Value() string {
	if e.EffectiveMode() == ModeList {
		return content.List(e.compactItems()).Wire(content.IsJSONArray(e.suggested))
	}
	return e.text
}

// Reset rebinds the editor to a new suggestion, dropping buffered text, list
// entries and any explicit mode choice. Without this, advancing to the next
// suggestion would leak the previous item's list contents.
func (e *Editor) Reset(suggested string) {
	e.suggested = suggested
	e.mode = ModeAuto
	e.text = ""
	e.items = nil
	if e.EffectiveMode() == ModeList {
		e.items = content.Parse(suggested).Strings()
	}
}

func (e *Editor) compactItems() []string {
	out := make([]string, 0, len(e.items))
	for _, item := range e.items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (e *Editor) emit() {
	if e.onChange != nil {
		e.onChange(e.Value())
	}
}

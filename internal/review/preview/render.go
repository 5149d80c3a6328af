// Package preview computes the rendered representation of a CV section with a
// pending edit highlighted. Rendering is a pure function of the document, the
// already-reviewed edits for the section and the in-progress candidate value;
// it keeps no history of its own, so every call recomputes from scratch.
package preview

import (
	"sort"
	"strconv"
	"strings"

	"cvbuilder-backend/internal/cvs"
	"cvbuilder-backend/internal/review/content"
)

// Edit addresses one field of the rendered section with a replacement value.
type Edit struct {
	Field string
	Value string
}

// Input carries everything a render needs. Applied holds the effective values
// of edits the user already reviewed for this section, in queue order; Active
// is the edit currently on screen with the user's candidate value.
type Input struct {
	Document *cvs.Document
	Section  string
	Applied  []Edit
	Active   *Edit
}

// View is the rendered section. Object sections populate Fields, list
// sections populate Items.
type View struct {
	Section     string          `json:"section"`
	Kind        cvs.SectionKind `json:"kind"`
	Placeholder bool            `json:"placeholder"`
	Fields      []FieldView     `json:"fields,omitempty"`
	Items       []ItemView      `json:"items,omitempty"`
}

// FieldView is one scalar field with its highlight flag.
type FieldView struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Pending bool   `json:"pending"`
}

// ItemView is one record of a list section.
type ItemView struct {
	Fields []FieldView `json:"fields,omitempty"`
	Lists  []ListView  `json:"lists,omitempty"`
}

// ListView is a collection property of an item (achievements, technologies).
type ListView struct {
	Name    string      `json:"name"`
	Entries []EntryView `json:"entries"`
}

// EntryView is one line of a collection property.
type EntryView struct {
	Text    string `json:"text"`
	Pending bool   `json:"pending"`
}

// Render builds the section view. Edits that address slots the section does
// not have (out-of-range index, unknown property) are silently skipped; a
// section absent from the document renders from its built-in placeholder
// template before the edits apply.
func Render(in Input) View {
	section, found := in.Document.FindSection(in.Section)
	if !found {
		section = placeholderSection(in.Section)
	}

	view := buildView(in.Section, section, !found)
	for _, edit := range in.Applied {
		applyEdit(&view, edit, false)
	}
	if in.Active != nil {
		applyEdit(&view, *in.Active, true)
	}
	return view
}

func buildView(canonical string, section *cvs.Section, placeholder bool) View {
	view := View{Section: canonical, Kind: section.Kind, Placeholder: placeholder}
	if section.Kind == cvs.SectionKindObject {
		for _, key := range orderedKeys(len(section.Fields), func(collect func(string)) {
			for k := range section.Fields {
				collect(k)
			}
		}) {
			view.Fields = append(view.Fields, FieldView{Name: key, Value: section.Fields[key]})
		}
		return view
	}
	for _, item := range section.Items {
		view.Items = append(view.Items, buildItemView(item))
	}
	return view
}

func buildItemView(item cvs.Item) ItemView {
	out := ItemView{}
	for _, key := range orderedKeys(len(item), func(collect func(string)) {
		for k := range item {
			collect(k)
		}
	}) {
		if list, ok := item.Strings(key); ok {
			entries := make([]EntryView, 0, len(list))
			for _, text := range list {
				entries = append(entries, EntryView{Text: text})
			}
			out.Lists = append(out.Lists, ListView{Name: key, Entries: entries})
			continue
		}
		if scalar, ok := item.String(key); ok {
			out.Fields = append(out.Fields, FieldView{Name: key, Value: scalar})
		}
	}
	return out
}

func applyEdit(view *View, edit Edit, pending bool) {
	field := strings.TrimSpace(edit.Field)
	if field == "" {
		return
	}

	// A bare path addresses a top-level field of an object section.
	if !strings.Contains(field, ".") {
		if view.Kind != cvs.SectionKindObject {
			return
		}
		value := content.Parse(edit.Value).Wire(false)
		for i := range view.Fields {
			if view.Fields[i].Name == field {
				view.Fields[i].Value = value
				view.Fields[i].Pending = pending
				return
			}
		}
		view.Fields = append(view.Fields, FieldView{Name: field, Value: value, Pending: pending})
		return
	}

	index, property, ok := parseItemPath(field)
	if !ok || view.Kind != cvs.SectionKindList {
		return
	}
	if index < 0 || index >= len(view.Items) {
		return
	}
	item := &view.Items[index]

	for li := range item.Lists {
		if item.Lists[li].Name != property {
			continue
		}
		lines := content.Parse(edit.Value).Strings()
		entries := make([]EntryView, 0, len(lines))
		for _, text := range lines {
			entries = append(entries, EntryView{Text: text, Pending: pending})
		}
		item.Lists[li].Entries = entries
		return
	}
	for fi := range item.Fields {
		if item.Fields[fi].Name == property {
			item.Fields[fi].Value = edit.Value
			item.Fields[fi].Pending = pending
			return
		}
	}
	// Unknown property on the item record: ignored rather than invented.
}

// parseItemPath splits "<section>.<index>.<property>" into its index and
// property. Longer property paths keep their tail joined.
func parseItemPath(field string) (int, string, bool) {
	parts := strings.Split(field, ".")
	if len(parts) < 3 {
		return 0, "", false
	}
	index, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, "", false
	}
	return index, strings.Join(parts[2:], "."), true
}

// orderedKeys yields map keys in a deterministic order: well-known CV fields
// first, everything else alphabetically.
func orderedKeys(size int, each func(collect func(string))) []string {
	keys := make([]string, 0, size)
	each(func(k string) { keys = append(keys, k) })
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := fieldRank(keys[i]), fieldRank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
	return keys
}

var preferredFieldOrder = []string{
	"name", "title", "role", "company", "institution", "degree", "field",
	"category", "language", "level", "description", "email", "phone",
	"location", "start", "end", "date",
}

func fieldRank(key string) int {
	for i, preferred := range preferredFieldOrder {
		if key == preferred {
			return i
		}
	}
	return len(preferredFieldOrder)
}

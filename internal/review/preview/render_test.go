package preview

import (
	"reflect"
	"testing"

	"cvbuilder-backend/internal/cvs"
)

func sampleDocument() *cvs.Document {
	return &cvs.Document{
		Sections: []cvs.Section{
			{
				ID:    "header",
				Title: "Header",
				Kind:  cvs.SectionKindObject,
				Fields: map[string]string{
					"name":  "John Doe",
					"email": "john@example.com",
				},
			},
			{
				ID:    "experience",
				Title: "Work Experience",
				Kind:  cvs.SectionKindList,
				Items: []cvs.Item{
					{
						"company":      "Acme",
						"role":         "Engineer",
						"achievements": []string{"Shipped the widget", "Cut costs"},
					},
				},
			},
		},
	}
}

func findField(t *testing.T, fields []FieldView, name string) FieldView {
	t.Helper()
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("field %q not found in %v", name, fields)
	return FieldView{}
}

func TestRenderObjectFieldHighlight(t *testing.T) {
	view := Render(Input{
		Document: sampleDocument(),
		Section:  cvs.SectionHeader,
		Active:   &Edit{Field: "name", Value: "John A. Doe"},
	})

	if view.Kind != cvs.SectionKindObject || view.Placeholder {
		t.Fatalf("unexpected view shape: %+v", view)
	}
	name := findField(t, view.Fields, "name")
	if name.Value != "John A. Doe" || !name.Pending {
		t.Fatalf("expected pending name edit, got %+v", name)
	}
	email := findField(t, view.Fields, "email")
	if email.Pending || email.Value != "john@example.com" {
		t.Fatalf("untouched field changed: %+v", email)
	}
}

func TestRenderCollectionPropertyResplit(t *testing.T) {
	view := Render(Input{
		Document: sampleDocument(),
		Section:  cvs.SectionExperience,
		Active:   &Edit{Field: "experience.0.achievements", Value: `["Built X","Led Y"]`},
	})

	if len(view.Items) != 1 {
		t.Fatalf("expected one item, got %d", len(view.Items))
	}
	var achievements *ListView
	for i := range view.Items[0].Lists {
		if view.Items[0].Lists[i].Name == "achievements" {
			achievements = &view.Items[0].Lists[i]
		}
	}
	if achievements == nil {
		t.Fatalf("achievements list missing: %+v", view.Items[0])
	}
	var texts []string
	for _, entry := range achievements.Entries {
		if !entry.Pending {
			t.Fatalf("expected all replacement entries pending, got %+v", entry)
		}
		texts = append(texts, entry.Text)
	}
	if !reflect.DeepEqual(texts, []string{"Built X", "Led Y"}) {
		t.Fatalf("unexpected entries: %v", texts)
	}
}

func TestRenderAppliedEditsReflected(t *testing.T) {
	view := Render(Input{
		Document: sampleDocument(),
		Section:  cvs.SectionExperience,
		Applied:  []Edit{{Field: "experience.0.role", Value: "Senior Engineer"}},
		Active:   &Edit{Field: "experience.0.company", Value: "Acme Corp"},
	})

	role := findField(t, view.Items[0].Fields, "role")
	if role.Value != "Senior Engineer" || role.Pending {
		t.Fatalf("applied edit should render without highlight: %+v", role)
	}
	company := findField(t, view.Items[0].Fields, "company")
	if company.Value != "Acme Corp" || !company.Pending {
		t.Fatalf("active edit should render highlighted: %+v", company)
	}
}

func TestRenderMissingSectionUsesPlaceholder(t *testing.T) {
	view := Render(Input{
		Document: &cvs.Document{},
		Section:  cvs.SectionEducation,
		Active:   &Edit{Field: "education.0.degree", Value: "BSc Computer Science"},
	})

	if !view.Placeholder {
		t.Fatalf("expected placeholder rendering")
	}
	degree := findField(t, view.Items[0].Fields, "degree")
	if degree.Value != "BSc Computer Science" || !degree.Pending {
		t.Fatalf("pending field not applied to placeholder: %+v", degree)
	}
	if inst := findField(t, view.Items[0].Fields, "institution"); inst.Value != "University Name" {
		t.Fatalf("placeholder defaults missing: %+v", inst)
	}
}

func TestRenderOutOfRangeIndexIgnored(t *testing.T) {
	base := Render(Input{Document: sampleDocument(), Section: cvs.SectionExperience})
	edited := Render(Input{
		Document: sampleDocument(),
		Section:  cvs.SectionExperience,
		Active:   &Edit{Field: "experience.7.role", Value: "CTO"},
	})

	if !reflect.DeepEqual(base, edited) {
		t.Fatalf("out-of-range edit changed the view")
	}
}

func TestRenderUnknownPropertyIgnored(t *testing.T) {
	base := Render(Input{Document: sampleDocument(), Section: cvs.SectionExperience})
	edited := Render(Input{
		Document: sampleDocument(),
		Section:  cvs.SectionExperience,
		Active:   &Edit{Field: "experience.0.salary", Value: "1"},
	})

	if !reflect.DeepEqual(base, edited) {
		t.Fatalf("unknown property edit corrupted the view")
	}
}

func TestRenderDeterministicFieldOrder(t *testing.T) {
	first := Render(Input{Document: sampleDocument(), Section: cvs.SectionHeader})
	second := Render(Input{Document: sampleDocument(), Section: cvs.SectionHeader})
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("field order not deterministic")
	}
	if first.Fields[0].Name != "name" {
		t.Fatalf("expected name first, got %q", first.Fields[0].Name)
	}
}

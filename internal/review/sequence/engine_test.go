package sequence

import (
	"reflect"
	"testing"

	"cvbuilder-backend/internal/cvs"
	"cvbuilder-backend/internal/review"
)

func fullDocument() *cvs.Document {
	return &cvs.Document{
		Sections: []cvs.Section{
			{ID: "header", Title: "Header", Kind: cvs.SectionKindObject},
			{ID: "experience", Title: "Work Experience", Kind: cvs.SectionKindList},
			{ID: "education", Title: "Education", Kind: cvs.SectionKindList},
			{ID: "projects", Title: "Projects", Kind: cvs.SectionKindList},
			{ID: "skills", Title: "Skills", Kind: cvs.SectionKindList},
			{ID: "languages", Title: "Languages", Kind: cvs.SectionKindList},
		},
	}
}

func ids(items []review.Suggestion) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestBuildSectionOrder(t *testing.T) {
	input := []review.Suggestion{
		{ID: "s1", Section: "Skills", Field: "skills.0.items"},
		{ID: "h1", Section: "Header", Field: "name"},
		{ID: "e1", Section: "experience", Field: "experience.0.achievements"},
		{ID: "h2", Section: "header", Field: "email"},
	}

	got := Build(input, fullDocument())

	expected := []string{"h1", "h2", "e1", "s1"}
	if !reflect.DeepEqual(ids(got), expected) {
		t.Fatalf("expected order %v, got %v", expected, ids(got))
	}
}

func TestBuildPreservesRelativeOrderWithinSection(t *testing.T) {
	input := []review.Suggestion{
		{ID: "e1", Section: "Experience"},
		{ID: "e2", Section: "EXPERIENCE"},
		{ID: "e3", Section: "experience"},
	}

	got := Build(input, fullDocument())

	if !reflect.DeepEqual(ids(got), []string{"e1", "e2", "e3"}) {
		t.Fatalf("relative order not preserved: %v", ids(got))
	}
}

func TestBuildSynthesizesMissingEducation(t *testing.T) {
	doc := &cvs.Document{
		Sections: []cvs.Section{
			{ID: "header", Title: "Header"},
			{ID: "experience", Title: "Experience"},
			{ID: "projects", Title: "Projects"},
			{ID: "skills", Title: "Skills"},
			{ID: "languages", Title: "Languages"},
		},
	}
	input := []review.Suggestion{
		{ID: "h1", Section: "Header", Field: "name"},
	}

	got := Build(input, doc)

	var placeholders []review.Suggestion
	for _, item := range got {
		if item.IsNewSection() {
			placeholders = append(placeholders, item)
		}
	}
	if len(placeholders) != 1 {
		t.Fatalf("expected exactly one placeholder, got %d", len(placeholders))
	}
	p := placeholders[0]
	if p.ID != "missing_education" || p.Section != cvs.SectionEducation {
		t.Fatalf("unexpected placeholder: %+v", p)
	}
	if p.Current != "empty" || p.Suggested != "Add education section" {
		t.Fatalf("unexpected placeholder payload: %+v", p)
	}
}

func TestBuildNoPlaceholderWhenSuggestionCoversSection(t *testing.T) {
	doc := &cvs.Document{Sections: []cvs.Section{{ID: "header", Title: "Header"}}}
	input := []review.Suggestion{
		{ID: "edu", Section: "Education", Field: "education.0.degree"},
	}

	got := Build(input, doc)

	for _, item := range got {
		if item.ID == "missing_education" {
			t.Fatalf("placeholder synthesized despite education suggestion present")
		}
	}
}

func TestBuildMissingLanguagesPlacement(t *testing.T) {
	doc := &cvs.Document{
		Sections: []cvs.Section{
			{ID: "header", Title: "Header"},
			{ID: "experience", Title: "Experience"},
			{ID: "education", Title: "Education"},
			{ID: "projects", Title: "Projects"},
			{ID: "skills", Title: "Skills"},
		},
	}
	input := []review.Suggestion{
		{ID: "s1", Section: "Skills"},
		{ID: "x1", Section: "Certifications"},
	}

	got := Build(input, doc)

	expected := []string{"s1", "missing_languages", "x1"}
	if !reflect.DeepEqual(ids(got), expected) {
		t.Fatalf("expected %v, got %v", expected, ids(got))
	}
}

func TestBuildOutOfTaxonomyTrailInInputOrder(t *testing.T) {
	input := []review.Suggestion{
		{ID: "x1", Section: "Certifications"},
		{ID: "h1", Section: "Header"},
		{ID: "x2", Section: "Volunteering"},
	}

	got := Build(input, fullDocument())

	expected := []string{"h1", "x1", "x2"}
	if !reflect.DeepEqual(ids(got), expected) {
		t.Fatalf("expected %v, got %v", expected, ids(got))
	}
}

func TestBuildDeterministic(t *testing.T) {
	doc := &cvs.Document{Sections: []cvs.Section{{ID: "header", Title: "Header"}}}
	input := []review.Suggestion{
		{ID: "h1", Section: "Header"},
		{ID: "x1", Section: "Awards"},
	}

	first := Build(input, doc)
	second := Build(input, doc)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected deterministic output")
	}
}

func TestBuildOutputNeverShrinksInput(t *testing.T) {
	doc := &cvs.Document{}
	input := []review.Suggestion{
		{ID: "a", Section: "Header"},
		{ID: "b", Section: "Misc"},
	}

	got := Build(input, doc)
	if len(got) < len(input) {
		t.Fatalf("output %d shorter than input %d", len(got), len(input))
	}
}

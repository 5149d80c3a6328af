package cvs

import "strings"

// Canonical section names. The review flow walks sections in exactly this
// order, and suggestion sections are matched against these names
// case-insensitively.
const (
	SectionHeader     = "Header"
	SectionExperience = "Experience"
	SectionEducation  = "Education"
	SectionProjects   = "Projects"
	SectionSkills     = "Skills"
	SectionLanguages  = "Languages"
)

// SectionOrder is the fixed visit order for the guided review. It doubles as
// the set of sections whose absence from a document is worth flagging.
var SectionOrder = []string{
	SectionHeader,
	SectionExperience,
	SectionEducation,
	SectionProjects,
	SectionSkills,
	SectionLanguages,
}

// sectionSynonyms maps each canonical name to the substrings that identify a
// matching document section. Matching is fuzzy on purpose: documents name
// their sections freely ("Work History", "Personal Details") and an id or
// title containing any synonym counts as present.
var sectionSynonyms = map[string][]string{
	SectionHeader:     {"header", "contact", "personal"},
	SectionExperience: {"experience", "work", "employment"},
	SectionEducation:  {"education", "academic", "degree"},
	SectionProjects:   {"project", "portfolio"},
	SectionSkills:     {"skill", "competenc", "technolog"},
	SectionLanguages:  {"language"},
}

// CanonicalSection resolves a free-form section name to its canonical form,
// matching case-insensitively on exact name only.
func CanonicalSection(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	for _, canonical := range SectionOrder {
		if strings.EqualFold(trimmed, canonical) {
			return canonical, true
		}
	}
	return "", false
}

// HasSection reports whether the document contains a section matching the
// given canonical name. Names outside the canonical six are always reported
// present; the predicate is only meaningful for the fixed ordering set.
func (d *Document) HasSection(canonical string) bool {
	synonyms, ok := sectionSynonyms[canonical]
	if !ok {
		return true
	}
	if d == nil {
		return false
	}
	for i := range d.Sections {
		if sectionMatches(&d.Sections[i], synonyms) {
			return true
		}
	}
	return false
}

// FindSection returns the first document section matching the canonical name.
func (d *Document) FindSection(canonical string) (*Section, bool) {
	synonyms, ok := sectionSynonyms[canonical]
	if !ok || d == nil {
		return nil, false
	}
	for i := range d.Sections {
		if sectionMatches(&d.Sections[i], synonyms) {
			return &d.Sections[i], true
		}
	}
	return nil, false
}

func sectionMatches(section *Section, synonyms []string) bool {
	id := strings.ToLower(section.ID)
	title := strings.ToLower(section.Title)
	for _, syn := range synonyms {
		if strings.Contains(id, syn) || strings.Contains(title, syn) {
			return true
		}
	}
	return false
}

package preview

import "cvbuilder-backend/internal/cvs"

// placeholderSection returns the built-in example template rendered when the
// addressed section is absent from the document. Values are fixed so previews
// of missing sections stay deterministic.
func placeholderSection(canonical string) *cvs.Section {
	switch canonical {
	case cvs.SectionHeader:
		return &cvs.Section{
			ID:    "header",
			Title: cvs.SectionHeader,
			Kind:  cvs.SectionKindObject,
			Fields: map[string]string{
				"name":     "Your Name",
				"title":    "Professional Title",
				"email":    "you@example.com",
				"phone":    "+1 555 000 0000",
				"location": "City, Country",
			},
		}
	case cvs.SectionExperience:
		return &cvs.Section{
			ID:    "experience",
			Title: cvs.SectionExperience,
			Kind:  cvs.SectionKindList,
			Items: []cvs.Item{{
				"company":      "Company Name",
				"role":         "Job Title",
				"start":        "2022-01",
				"end":          "Present",
				"achievements": []string{"Describe a measurable achievement"},
			}},
		}
	case cvs.SectionEducation:
		return &cvs.Section{
			ID:    "education",
			Title: cvs.SectionEducation,
			Kind:  cvs.SectionKindList,
			Items: []cvs.Item{{
				"institution": "University Name",
				"degree":      "Degree",
				"field":       "Field of Study",
				"start":       "2018-09",
				"end":         "2022-06",
				"location":    "City, Country",
			}},
		}
	case cvs.SectionProjects:
		return &cvs.Section{
			ID:    "projects",
			Title: cvs.SectionProjects,
			Kind:  cvs.SectionKindList,
			Items: []cvs.Item{{
				"name":         "Project Name",
				"description":  "What the project does and why it matters",
				"technologies": []string{"Technology"},
			}},
		}
	case cvs.SectionSkills:
		return &cvs.Section{
			ID:    "skills",
			Title: cvs.SectionSkills,
			Kind:  cvs.SectionKindList,
			Items: []cvs.Item{{
				"category": "Skill Category",
				"items":    []string{"Skill"},
			}},
		}
	case cvs.SectionLanguages:
		return &cvs.Section{
			ID:    "languages",
			Title: cvs.SectionLanguages,
			Kind:  cvs.SectionKindList,
			Items: []cvs.Item{{
				"language": "Language",
				"level":    "Proficiency",
			}},
		}
	default:
		return &cvs.Section{
			ID:     "section",
			Title:  canonical,
			Kind:   cvs.SectionKindObject,
			Fields: map[string]string{"text": ""},
		}
	}
}

// Package sequence orders a flat list of suggested CV edits into the
// deterministic per-section queue the guided review walks. Sections the
// document lacks get a synthesized "add this section" placeholder so the flow
// always covers the full canonical set.
package sequence

import (
	"strings"

	"cvbuilder-backend/internal/cvs"
	"cvbuilder-backend/internal/review"
)

// Build sequences suggestions into section visit order. Within one section
// the stable input order is preserved; suggestions for sections outside the
// canonical taxonomy trail the queue in original input order. Output depends
// only on input order and document section presence.
func Build(suggestions []review.Suggestion, doc *cvs.Document) []review.Suggestion {
	out := make([]review.Suggestion, 0, len(suggestions)+len(cvs.SectionOrder))
	consumed := make([]bool, len(suggestions))

	for _, canonical := range cvs.SectionOrder {
		matched := 0
		for i, item := range suggestions {
			if consumed[i] || !strings.EqualFold(strings.TrimSpace(item.Section), canonical) {
				continue
			}
			out = append(out, item)
			consumed[i] = true
			matched++
		}
		if matched == 0 && !doc.HasSection(canonical) {
			out = append(out, missingSectionPlaceholder(canonical))
		}
	}

	for i, item := range suggestions {
		if !consumed[i] {
			out = append(out, item)
		}
	}
	return out
}

func missingSectionPlaceholder(canonical string) review.Suggestion {
	lower := strings.ToLower(canonical)
	return review.Suggestion{
		ID:        "missing_" + lower,
		Section:   canonical,
		Field:     review.FieldNewSection,
		Current:   "empty",
		Suggested: "Add " + lower + " section",
		Reason:    "Your CV has no " + lower + " section. Adding one makes the CV substantially stronger.",
	}
}

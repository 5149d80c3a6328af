package review

import (
	"context"
	"strings"

	"cvbuilder-backend/internal/cvs"
	"cvbuilder-backend/internal/review/preview"
)

// Preview renders the section addressed by the current item, with the
// candidate value highlighted. An empty candidate previews the suggestion
// itself (or the recorded override). The view is recomputed from the document
// and the full queue on every call; nothing is cached between calls.
func (s *Service) Preview(ctx context.Context, userID, sessionID, candidate string) (preview.View, error) {
	session, err := s.Repo.Get(ctx, userID, sessionID)
	if err != nil {
		return preview.View{}, err
	}
	current, ok := session.CurrentItem()
	if !ok {
		return preview.View{}, ErrSessionComplete
	}

	doc, err := s.CVs.GetByID(ctx, userID, session.CVID)
	if err != nil {
		return preview.View{}, err
	}

	canonical := canonicalOrRaw(current.Section)

	var applied []preview.Edit
	for i := 0; i < session.Cursor; i++ {
		item := session.Queue[i]
		if item.IsNewSection() || canonicalOrRaw(item.Section) != canonical {
			continue
		}
		applied = append(applied, preview.Edit{
			Field: item.Field,
			Value: session.EffectiveSuggested(item),
		})
	}

	in := preview.Input{
		Document: &doc,
		Section:  canonical,
		Applied:  applied,
	}
	if !current.IsNewSection() {
		value := strings.TrimSpace(candidate)
		if value == "" {
			value = session.EffectiveSuggested(current)
		} else {
			value = candidate
		}
		in.Active = &preview.Edit{Field: current.Field, Value: value}
	}
	return preview.Render(in), nil
}

func canonicalOrRaw(section string) string {
	if canonical, ok := cvs.CanonicalSection(section); ok {
		return canonical
	}
	return strings.TrimSpace(section)
}

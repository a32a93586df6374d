package sessions

import "Backend-Curadoria-AF/src/services/questions"

// ToggleCategory applies one click on a multi-choice option and returns the
// new selection. The "sugestao" option is mutually exclusive with all
// others: picking it always wins immediately and clears the rest, while
// picking any normal option silently drops "sugestao" first.
func ToggleCategory(current []string, optionID string) []string {
	if optionID == questions.SuggestionOption {
		return []string{questions.SuggestionOption}
	}

	next := make([]string, 0, len(current)+1)
	removed := false
	for _, id := range current {
		if id == questions.SuggestionOption {
			continue
		}
		if id == optionID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, optionID)
	}
	return next
}

// CanConfirmSelection reports whether the multi-choice confirm action is
// enabled. Confirming an empty selection is a no-op.
func CanConfirmSelection(selection []string) bool {
	return len(selection) > 0
}

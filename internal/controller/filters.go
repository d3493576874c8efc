package controller

import (
	"strings"

	"github.com/spec-kit/hr-panel-service/internal/domain"
)

// Sentinel filter values meaning "no constraint". Both grammatical forms are
// accepted because the views historically used one each.
const (
	FilterAllFeminine  = "Todas"
	FilterAllMasculine = "Todos"
)

func filterDisabled(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" ||
		strings.EqualFold(value, FilterAllFeminine) ||
		strings.EqualFold(value, FilterAllMasculine)
}

// JustificationFilters are the active criteria of the justification view.
type JustificationFilters struct {
	Area   string
	Status string
}

// FilterJustifications applies the view filters: exact area name match and
// case-insensitive status equality. Pure function.
func FilterJustifications(items []domain.Justification, f JustificationFilters) []domain.Justification {
	out := make([]domain.Justification, 0, len(items))
	for _, item := range items {
		if !filterDisabled(f.Area) && item.AreaName != f.Area {
			continue
		}
		if !filterDisabled(f.Status) && !strings.EqualFold(string(item.Status), f.Status) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// SuggestionFilters are the active criteria of the suggestion view.
type SuggestionFilters struct {
	Category string
	Status   string
}

// FilterSuggestions applies the view filters: derived category match and
// case-insensitive status equality. Pure function.
func FilterSuggestions(items []domain.Suggestion, f SuggestionFilters) []domain.Suggestion {
	out := make([]domain.Suggestion, 0, len(items))
	for _, item := range items {
		if !filterDisabled(f.Category) && !strings.EqualFold(string(item.Category()), f.Category) {
			continue
		}
		if !filterDisabled(f.Status) && !strings.EqualFold(string(item.Status), f.Status) {
			continue
		}
		out = append(out, item)
	}
	return out
}

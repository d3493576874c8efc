package domain

import (
	"strings"
	"time"
)

// SuggestionStatus enumerates the suggestion/complaint workflow states.
type SuggestionStatus string

const (
	SuggestionPending  SuggestionStatus = "Pendiente"
	SuggestionReviewed SuggestionStatus = "Revisado"
)

const (
	suggestionCodePending  = 1
	suggestionCodeReviewed = 2
)

// SuggestionStatusFromCode maps a numeric wire code to the semantic status.
// Unknown codes fall back to the initial state.
func SuggestionStatusFromCode(code int) SuggestionStatus {
	if code == suggestionCodeReviewed {
		return SuggestionReviewed
	}
	return SuggestionPending
}

// ParseSuggestionStatus resolves a status string case-insensitively.
func ParseSuggestionStatus(s string) (SuggestionStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pendiente":
		return SuggestionPending, true
	case "revisado":
		return SuggestionReviewed, true
	default:
		return "", false
	}
}

// Code returns the numeric wire code for the status.
func (s SuggestionStatus) Code() int {
	if s == SuggestionReviewed {
		return suggestionCodeReviewed
	}
	return suggestionCodePending
}

var suggestionTransitions = map[SuggestionStatus][]SuggestionStatus{
	SuggestionPending:  {SuggestionReviewed},
	SuggestionReviewed: {},
}

// CanTransition reports whether the suggestion workflow allows current → next.
func (s SuggestionStatus) CanTransition(next SuggestionStatus) bool {
	for _, candidate := range suggestionTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// SuggestionCategory is derived from the ticket text, not stored upstream.
type SuggestionCategory string

const (
	CategoryComplaint SuggestionCategory = "Reclamo"
	CategoryReport    SuggestionCategory = "Reporte"
)

// Suggestion is a suggestion/complaint ticket. Kind carries the free-text
// ticket type the upstream sends alongside the title.
type Suggestion struct {
	ID          string
	WorkerID    string
	WorkerName  string
	Title       string
	Kind        string
	Description string
	Status      SuggestionStatus
	Attachments []Attachment
	CreatedAt   time.Time
}

// Category classifies the ticket as a complaint when its title or type text
// carries the complaint-channel keywords, else as a situation report.
func (s Suggestion) Category() SuggestionCategory {
	text := strings.ToLower(s.Title + " " + s.Kind)
	if strings.Contains(text, "reclamo") || strings.Contains(text, "escuchamos") {
		return CategoryComplaint
	}
	return CategoryReport
}

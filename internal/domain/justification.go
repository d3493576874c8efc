package domain

import (
	"strings"
	"time"
)

// JustificationStatus enumerates the absence-justification workflow states.
type JustificationStatus string

const (
	JustificationPending  JustificationStatus = "Pendiente"
	JustificationApproved JustificationStatus = "Aprobado"
	JustificationRejected JustificationStatus = "Rechazado"
)

// Wire codes used by the HR API for justification statuses.
const (
	justificationCodePending  = 1
	justificationCodeApproved = 2
	justificationCodeRejected = 3
)

// JustificationStatusFromCode maps a numeric wire code to the semantic status.
// Unknown codes fall back to the initial state.
func JustificationStatusFromCode(code int) JustificationStatus {
	switch code {
	case justificationCodeApproved:
		return JustificationApproved
	case justificationCodeRejected:
		return JustificationRejected
	case justificationCodePending:
		return JustificationPending
	default:
		return JustificationPending
	}
}

// ParseJustificationStatus resolves a status string case-insensitively.
func ParseJustificationStatus(s string) (JustificationStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pendiente":
		return JustificationPending, true
	case "aprobado":
		return JustificationApproved, true
	case "rechazado":
		return JustificationRejected, true
	default:
		return "", false
	}
}

// Code returns the numeric wire code for the status.
func (s JustificationStatus) Code() int {
	switch s {
	case JustificationApproved:
		return justificationCodeApproved
	case JustificationRejected:
		return justificationCodeRejected
	default:
		return justificationCodePending
	}
}

var justificationTransitions = map[JustificationStatus][]JustificationStatus{
	JustificationPending:  {JustificationApproved, JustificationRejected},
	JustificationApproved: {},
	JustificationRejected: {},
}

// CanTransition reports whether the justification workflow allows current → next.
func (s JustificationStatus) CanTransition(next JustificationStatus) bool {
	for _, candidate := range justificationTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// Attachment references an uploaded file on a ticket.
type Attachment struct {
	URL      string
	FileName string
	MimeType string
}

// Justification is an absence-justification ticket under admin review.
type Justification struct {
	ID          string
	WorkerID    string
	WorkerName  string
	AreaID      string
	AreaName    string
	Title       string
	Description string
	Status      JustificationStatus
	// RejectReason is non-empty iff Status is Rechazado.
	RejectReason string
	EventStart   *time.Time
	EventEnd     *time.Time
	Attachments  []Attachment
	CreatedAt    time.Time
}

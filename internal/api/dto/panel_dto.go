package dto

import (
	"time"

	"github.com/spec-kit/hr-panel-service/internal/domain"
)

// AttachmentResponse metadata.
type AttachmentResponse struct {
	URL      string `json:"url"`
	FileName string `json:"nombre"`
	MimeType string `json:"tipo"`
}

// JustificationResponse is the panel view of a justification ticket.
type JustificationResponse struct {
	ID           string               `json:"id"`
	WorkerName   string               `json:"colaborador"`
	AreaName     string               `json:"area"`
	Title        string               `json:"titulo"`
	Description  string               `json:"descripcion"`
	Status       string               `json:"estado"`
	RejectReason string               `json:"motivo_rechazo,omitempty"`
	EventStart   *time.Time           `json:"fecha_inicio,omitempty"`
	EventEnd     *time.Time           `json:"fecha_fin,omitempty"`
	Attachments  []AttachmentResponse `json:"archivos,omitempty"`
	CreatedAt    time.Time            `json:"fecha_creacion"`
}

// NewJustificationResponse maps the domain record.
func NewJustificationResponse(item domain.Justification) JustificationResponse {
	return JustificationResponse{
		ID:           item.ID,
		WorkerName:   item.WorkerName,
		AreaName:     item.AreaName,
		Title:        item.Title,
		Description:  item.Description,
		Status:       string(item.Status),
		RejectReason: item.RejectReason,
		EventStart:   item.EventStart,
		EventEnd:     item.EventEnd,
		Attachments:  newAttachments(item.Attachments),
		CreatedAt:    item.CreatedAt,
	}
}

// SuggestionResponse is the panel view of a suggestion ticket.
type SuggestionResponse struct {
	ID          string               `json:"id"`
	WorkerName  string               `json:"colaborador"`
	Category    string               `json:"categoria"`
	Title       string               `json:"titulo"`
	Description string               `json:"descripcion"`
	Status      string               `json:"estado"`
	Attachments []AttachmentResponse `json:"archivos,omitempty"`
	CreatedAt   time.Time            `json:"fecha_creacion"`
}

// NewSuggestionResponse maps the domain record.
func NewSuggestionResponse(item domain.Suggestion) SuggestionResponse {
	return SuggestionResponse{
		ID:          item.ID,
		WorkerName:  item.WorkerName,
		Category:    string(item.Category()),
		Title:       item.Title,
		Description: item.Description,
		Status:      string(item.Status),
		Attachments: newAttachments(item.Attachments),
		CreatedAt:   item.CreatedAt,
	}
}

func newAttachments(items []domain.Attachment) []AttachmentResponse {
	if len(items) == 0 {
		return nil
	}
	out := make([]AttachmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, AttachmentResponse{URL: a.URL, FileName: a.FileName, MimeType: a.MimeType})
	}
	return out
}

// DecisionRequest is the approve/reject payload for a justification.
type DecisionRequest struct {
	Status string `json:"estado"`
	Reason string `json:"motivo,omitempty"`
}

// SuggestionStatusRequest is the explicit status payload for a suggestion.
type SuggestionStatusRequest struct {
	Status string `json:"estado"`
}

// WorkerRequest is the roster create/update payload.
type WorkerRequest struct {
	FullName string `json:"nombre"`
	Document string `json:"documento"`
	Role     string `json:"rol"`
	Company  string `json:"empresa"`
	AreaID   string `json:"area_id"`
}

// WorkerResponse is the panel view of a roster entry.
type WorkerResponse struct {
	ID           string    `json:"id"`
	FullName     string    `json:"nombre"`
	Document     string    `json:"documento"`
	Role         string    `json:"rol"`
	Employment   string    `json:"estado"`
	Company      string    `json:"empresa"`
	AreaName     string    `json:"area"`
	RegisteredAt time.Time `json:"fecha_registro"`
}

// NewWorkerResponse maps the domain record.
func NewWorkerResponse(w domain.Worker) WorkerResponse {
	return WorkerResponse{
		ID:           w.ID,
		FullName:     w.FullName,
		Document:     w.Document,
		Role:         string(w.Role),
		Employment:   string(w.Employment),
		Company:      string(w.Company),
		AreaName:     w.AreaName,
		RegisteredAt: w.RegisteredAt,
	}
}

// AnnouncementRequest is the create/update payload.
type AnnouncementRequest struct {
	Title    string `json:"titulo"`
	Body     string `json:"contenido"`
	ImageURL string `json:"imagen,omitempty"`
}

// AnnouncementResponse is the panel view of an announcement.
type AnnouncementResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"titulo"`
	Body        string    `json:"contenido"`
	ImageURL    string    `json:"imagen,omitempty"`
	AuthorName  string    `json:"autor"`
	PublishedAt time.Time `json:"fecha_publicacion"`
}

// NewAnnouncementResponse maps the domain record.
func NewAnnouncementResponse(a domain.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Body:        a.Body,
		ImageURL:    a.ImageURL,
		AuthorName:  a.AuthorName,
		PublishedAt: a.PublishedAt,
	}
}

// RemoveExecuteRequest confirms a bulk deactivate/delete.
type RemoveExecuteRequest struct {
	Documents []string `json:"documentos"`
	Action    string   `json:"accion"` // "desactivar" | "eliminar"
}

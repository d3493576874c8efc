package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spec-kit/hr-panel-service/internal/domain"
	apperrors "github.com/spec-kit/hr-panel-service/pkg/util"
)

// SuggestionService owns normalization and operations for suggestion/complaint tickets.
type SuggestionService struct {
	api API
}

// NewSuggestionService constructs the service.
func NewSuggestionService(api API) *SuggestionService {
	return &SuggestionService{api: api}
}

type suggestionRecord struct {
	ID            json.RawMessage  `json:"id"`
	Titulo        string           `json:"titulo"`
	Tipo          string           `json:"tipo"`
	Descripcion   string           `json:"descripcion"`
	Estado        json.RawMessage  `json:"estado"`
	UsuarioID     json.RawMessage  `json:"usuario_id"`
	NombreUsuario string           `json:"nombre_usuario"`
	Usuario       *namedRelation   `json:"usuario"`
	FechaCreacion string           `json:"fecha_creacion"`
	Archivos      []wireAttachment `json:"archivos"`
}

func (s *SuggestionService) normalize(rec suggestionRecord) domain.Suggestion {
	title := rec.Titulo
	if title == "" {
		title = rec.Tipo
	}
	return domain.Suggestion{
		ID:          apperrors.CoerceID(rec.ID),
		WorkerID:    apperrors.CoerceID(rec.UsuarioID),
		WorkerName:  fallbackName(rec.NombreUsuario, rec.Usuario, domain.DefaultWorkerName),
		Title:       title,
		Kind:        rec.Tipo,
		Description: rec.Descripcion,
		Status:      domain.SuggestionStatusFromCode(apperrors.CoerceInt(rec.Estado, 0)),
		Attachments: normalizeAttachments(s.api.Origin(), rec.Archivos),
		CreatedAt:   parseWireTime(rec.FechaCreacion),
	}
}

// GetAll fetches and normalizes the full collection.
func (s *SuggestionService) GetAll(ctx context.Context) ([]domain.Suggestion, error) {
	payload, err := s.api.Request(ctx, http.MethodGet, "/suggestions", nil)
	if err != nil {
		return nil, err
	}
	var records []suggestionRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	items := make([]domain.Suggestion, 0, len(records))
	for _, rec := range records {
		items = append(items, s.normalize(rec))
	}
	return items, nil
}

// SuggestionInput is the creation payload.
type SuggestionInput struct {
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
}

// Create posts a new suggestion and returns the normalized record.
func (s *SuggestionService) Create(ctx context.Context, input SuggestionInput) (*domain.Suggestion, error) {
	payload, err := s.api.Request(ctx, http.MethodPost, "/suggestions", input)
	if err != nil {
		return nil, err
	}
	var rec suggestionRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	normalized := s.normalize(rec)
	return &normalized, nil
}

// UpdateStatus moves a suggestion to the given state.
func (s *SuggestionService) UpdateStatus(ctx context.Context, id string, status domain.SuggestionStatus) (*domain.Suggestion, error) {
	body := map[string]any{"estado": status.Code()}
	payload, err := s.api.Request(ctx, http.MethodPatch, fmt.Sprintf("/suggestions/%s/status", id), body)
	if err != nil {
		return nil, err
	}
	var rec suggestionRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	normalized := s.normalize(rec)
	return &normalized, nil
}

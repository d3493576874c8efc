package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spec-kit/hr-panel-service/internal/domain"
	apperrors "github.com/spec-kit/hr-panel-service/pkg/util"
)

// JustificationService owns normalization and CRUD for absence justifications.
type JustificationService struct {
	api API
}

// NewJustificationService constructs the service.
func NewJustificationService(api API) *JustificationService {
	return &JustificationService{api: api}
}

type justificationRecord struct {
	ID            json.RawMessage  `json:"id"`
	Titulo        string           `json:"titulo"`
	Descripcion   string           `json:"descripcion"`
	Estado        json.RawMessage  `json:"estado"`
	MotivoRechazo string           `json:"motivo_rechazo"`
	UsuarioID     json.RawMessage  `json:"usuario_id"`
	NombreUsuario string           `json:"nombre_usuario"`
	Usuario       *namedRelation   `json:"usuario"`
	AreaID        json.RawMessage  `json:"area_id"`
	NombreArea    string           `json:"nombre_area"`
	Area          *namedRelation   `json:"area"`
	FechaInicio   string           `json:"fecha_inicio"`
	FechaFin      string           `json:"fecha_fin"`
	FechaCreacion string           `json:"fecha_creacion"`
	Archivos      []wireAttachment `json:"archivos"`
}

func (s *JustificationService) normalize(rec justificationRecord) domain.Justification {
	return domain.Justification{
		ID:           apperrors.CoerceID(rec.ID),
		WorkerID:     apperrors.CoerceID(rec.UsuarioID),
		WorkerName:   fallbackName(rec.NombreUsuario, rec.Usuario, domain.DefaultWorkerName),
		AreaID:       apperrors.CoerceID(rec.AreaID),
		AreaName:     fallbackName(rec.NombreArea, rec.Area, domain.DefaultAreaName),
		Title:        rec.Titulo,
		Description:  rec.Descripcion,
		Status:       domain.JustificationStatusFromCode(apperrors.CoerceInt(rec.Estado, 0)),
		RejectReason: rec.MotivoRechazo,
		EventStart:   parseWireTimePtr(rec.FechaInicio),
		EventEnd:     parseWireTimePtr(rec.FechaFin),
		Attachments:  normalizeAttachments(s.api.Origin(), rec.Archivos),
		CreatedAt:    parseWireTime(rec.FechaCreacion),
	}
}

// GetAll fetches and normalizes the full collection.
func (s *JustificationService) GetAll(ctx context.Context) ([]domain.Justification, error) {
	payload, err := s.api.Request(ctx, http.MethodGet, "/justifications", nil)
	if err != nil {
		return nil, err
	}
	var records []justificationRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	items := make([]domain.Justification, 0, len(records))
	for _, rec := range records {
		items = append(items, s.normalize(rec))
	}
	return items, nil
}

// JustificationInput is the creation payload.
type JustificationInput struct {
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
	AreaID      string `json:"area_id"`
	EventStart  string `json:"fecha_inicio,omitempty"`
	EventEnd    string `json:"fecha_fin,omitempty"`
}

// Create posts a new justification and returns the normalized record.
func (s *JustificationService) Create(ctx context.Context, input JustificationInput) (*domain.Justification, error) {
	payload, err := s.api.Request(ctx, http.MethodPost, "/justifications", input)
	if err != nil {
		return nil, err
	}
	var rec justificationRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	normalized := s.normalize(rec)
	return &normalized, nil
}

// UpdateStatus moves a justification to a decision state. Rejection requires
// a non-empty reason; callers check this first, the service re-validates.
func (s *JustificationService) UpdateStatus(ctx context.Context, id string, status domain.JustificationStatus, note string) (*domain.Justification, error) {
	if status == domain.JustificationRejected && strings.TrimSpace(note) == "" {
		return nil, apperrors.NewValidationError("El motivo de rechazo es obligatorio", nil)
	}
	body := map[string]any{"estado": status.Code()}
	if status == domain.JustificationRejected {
		body["motivo_rechazo"] = note
	}
	payload, err := s.api.Request(ctx, http.MethodPatch, fmt.Sprintf("/justifications/%s/status", id), body)
	if err != nil {
		return nil, err
	}
	var rec justificationRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	normalized := s.normalize(rec)
	return &normalized, nil
}

// Delete removes a justification.
func (s *JustificationService) Delete(ctx context.Context, id string) error {
	_, err := s.api.Request(ctx, http.MethodDelete, fmt.Sprintf("/justifications/%s", id), nil)
	return err
}

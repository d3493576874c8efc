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

// WorkerService owns normalization and CRUD for the user roster.
type WorkerService struct {
	api API
}

// NewWorkerService constructs the service.
func NewWorkerService(api API) *WorkerService {
	return &WorkerService{api: api}
}

type workerRecord struct {
	ID             json.RawMessage `json:"id"`
	Nombre         string          `json:"nombre"`
	NombreCompleto string          `json:"nombre_completo"`
	Documento      json.RawMessage `json:"documento"`
	Rol            string          `json:"rol"`
	Estado         json.RawMessage `json:"estado"`
	Empresa        string          `json:"empresa"`
	AreaID         json.RawMessage `json:"area_id"`
	NombreArea     string          `json:"nombre_area"`
	Area           *namedRelation  `json:"area"`
	FechaRegistro  string          `json:"fecha_registro"`
}

func (s *WorkerService) normalize(rec workerRecord) domain.Worker {
	name := rec.NombreCompleto
	if name == "" {
		name = rec.Nombre
	}
	company := domain.CompanyPrimary
	if strings.EqualFold(strings.TrimSpace(rec.Empresa), string(domain.CompanySecondary)) {
		company = domain.CompanySecondary
	}
	return domain.Worker{
		ID:           apperrors.CoerceID(rec.ID),
		FullName:     name,
		Document:     apperrors.CoerceID(rec.Documento),
		Role:         domain.RoleFromText(rec.Rol),
		Employment:   domain.EmploymentFromCode(apperrors.CoerceInt(rec.Estado, 0)),
		Company:      company,
		AreaID:       apperrors.CoerceID(rec.AreaID),
		AreaName:     fallbackName(rec.NombreArea, rec.Area, domain.DefaultAreaName),
		RegisteredAt: parseWireTime(rec.FechaRegistro),
	}
}

// GetAll fetches and normalizes the roster.
func (s *WorkerService) GetAll(ctx context.Context) ([]domain.Worker, error) {
	payload, err := s.api.Request(ctx, http.MethodGet, "/users", nil)
	if err != nil {
		return nil, err
	}
	var records []workerRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	workers := make([]domain.Worker, 0, len(records))
	for _, rec := range records {
		workers = append(workers, s.normalize(rec))
	}
	return workers, nil
}

// Create registers a roster entry. The document format is validated here so
// bulk flows fail per-row instead of reaching the upstream with bad data.
func (s *WorkerService) Create(ctx context.Context, input domain.WorkerInput) (*domain.Worker, error) {
	if !domain.ValidDocument(input.Document) {
		return nil, apperrors.NewValidationError("El documento debe tener 8 dígitos", map[string]any{
			"documento": input.Document,
		})
	}
	body := map[string]any{
		"nombre":    input.FullName,
		"documento": input.Document,
		"rol":       string(input.Role),
		"empresa":   string(input.Company),
		"area_id":   input.AreaID,
	}
	payload, err := s.api.Request(ctx, http.MethodPost, "/users", body)
	if err != nil {
		return nil, err
	}
	var rec workerRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	normalized := s.normalize(rec)
	return &normalized, nil
}

// Update patches a roster entry.
func (s *WorkerService) Update(ctx context.Context, id string, input domain.WorkerInput) (*domain.Worker, error) {
	body := map[string]any{
		"nombre":    input.FullName,
		"documento": input.Document,
		"rol":       string(input.Role),
		"empresa":   string(input.Company),
		"area_id":   input.AreaID,
	}
	payload, err := s.api.Request(ctx, http.MethodPatch, fmt.Sprintf("/users/%s", id), body)
	if err != nil {
		return nil, err
	}
	var rec workerRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	normalized := s.normalize(rec)
	return &normalized, nil
}

// Delete removes a roster entry.
func (s *WorkerService) Delete(ctx context.Context, id string) error {
	_, err := s.api.Request(ctx, http.MethodDelete, fmt.Sprintf("/users/%s", id), nil)
	return err
}

// BulkRemoveResult reports the outcome of a batched remove call.
type BulkRemoveResult struct {
	Processed int      `json:"procesados"`
	Unmatched []string `json:"no_encontrados"`
}

// BulkRemove issues the single batched deactivate/delete call for the given
// document ids. hard selects deletion over soft deactivation.
func (s *WorkerService) BulkRemove(ctx context.Context, documents []string, hard bool) (*BulkRemoveResult, error) {
	action := "desactivar"
	if hard {
		action = "eliminar"
	}
	body := map[string]any{
		"documentos": documents,
		"accion":     action,
	}
	payload, err := s.api.Request(ctx, http.MethodPost, "/users/bulk-remove", body)
	if err != nil {
		return nil, err
	}
	var result BulkRemoveResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &result, nil
}

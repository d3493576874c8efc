package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spec-kit/hr-panel-service/internal/domain"
	apperrors "github.com/spec-kit/hr-panel-service/pkg/util"
)

// AnnouncementService owns normalization and CRUD for announcements.
type AnnouncementService struct {
	api API
}

// NewAnnouncementService constructs the service.
func NewAnnouncementService(api API) *AnnouncementService {
	return &AnnouncementService{api: api}
}

type announcementRecord struct {
	ID               json.RawMessage `json:"id"`
	Titulo           string          `json:"titulo"`
	Contenido        string          `json:"contenido"`
	Imagen           string          `json:"imagen"`
	AutorID          json.RawMessage `json:"autor_id"`
	NombreAutor      string          `json:"nombre_autor"`
	Autor            *namedRelation  `json:"autor"`
	FechaPublicacion string          `json:"fecha_publicacion"`
}

func (s *AnnouncementService) normalize(rec announcementRecord) domain.Announcement {
	return domain.Announcement{
		ID:          apperrors.CoerceID(rec.ID),
		Title:       rec.Titulo,
		Body:        rec.Contenido,
		ImageURL:    absoluteURL(s.api.Origin(), rec.Imagen),
		AuthorID:    apperrors.CoerceID(rec.AutorID),
		AuthorName:  fallbackName(rec.NombreAutor, rec.Autor, domain.DefaultWorkerName),
		PublishedAt: parseWireTime(rec.FechaPublicacion),
	}
}

// GetAll fetches and normalizes the full collection.
func (s *AnnouncementService) GetAll(ctx context.Context) ([]domain.Announcement, error) {
	payload, err := s.api.Request(ctx, http.MethodGet, "/comunicados", nil)
	if err != nil {
		return nil, err
	}
	var records []announcementRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	items := make([]domain.Announcement, 0, len(records))
	for _, rec := range records {
		items = append(items, s.normalize(rec))
	}
	return items, nil
}

func announcementBody(input domain.AnnouncementInput) map[string]any {
	return map[string]any{
		"titulo":    input.Title,
		"contenido": input.Body,
		"imagen":    input.ImageURL,
	}
}

// Create publishes an announcement.
func (s *AnnouncementService) Create(ctx context.Context, input domain.AnnouncementInput) (*domain.Announcement, error) {
	payload, err := s.api.Request(ctx, http.MethodPost, "/comunicados", announcementBody(input))
	if err != nil {
		return nil, err
	}
	var rec announcementRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	normalized := s.normalize(rec)
	return &normalized, nil
}

// Update replaces an announcement.
func (s *AnnouncementService) Update(ctx context.Context, id string, input domain.AnnouncementInput) (*domain.Announcement, error) {
	payload, err := s.api.Request(ctx, http.MethodPut, fmt.Sprintf("/comunicados/%s", id), announcementBody(input))
	if err != nil {
		return nil, err
	}
	var rec announcementRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	normalized := s.normalize(rec)
	return &normalized, nil
}

// Delete removes an announcement.
func (s *AnnouncementService) Delete(ctx context.Context, id string) error {
	_, err := s.api.Request(ctx, http.MethodDelete, fmt.Sprintf("/comunicados/%s", id), nil)
	return err
}

package controller

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-panel-service/internal/domain"
	apperrors "github.com/spec-kit/hr-panel-service/pkg/util"
)

// JustificationAPI is the slice of the justification service the view consumes.
type JustificationAPI interface {
	GetAll(ctx context.Context) ([]domain.Justification, error)
	UpdateStatus(ctx context.Context, id string, status domain.JustificationStatus, note string) (*domain.Justification, error)
}

// JustificationController holds the justification view state: the fetched
// collection, loading/error flags, active filters and the modal selection.
type JustificationController struct {
	svc    JustificationAPI
	logger *zap.Logger

	mu         sync.Mutex
	items      []domain.Justification
	loading    bool
	errMsg     string
	filters    JustificationFilters
	selected   *domain.Justification
	submitting bool
}

// NewJustificationController constructs the controller.
func NewJustificationController(svc JustificationAPI, logger *zap.Logger) *JustificationController {
	return &JustificationController{svc: svc, logger: logger}
}

// Load fetches the full collection, replacing items on success and recording
// the error message on failure. The loading flag always clears.
func (c *JustificationController) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	items, err := c.svc.GetAll(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.errMsg = apperrors.ToDomainError(err).Message
		return err
	}
	c.items = items
	return nil
}

// SetFilters replaces the active filters.
func (c *JustificationController) SetFilters(f JustificationFilters) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = f
}

// Visible returns the filtered collection.
func (c *JustificationController) Visible() []domain.Justification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return FilterJustifications(c.items, c.filters)
}

// Select opens the detail view for the given item.
func (c *JustificationController) Select(id string) (*domain.Justification, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			item := c.items[i]
			c.selected = &item
			return &item, nil
		}
	}
	return nil, apperrors.NewNotFound("justification", map[string]any{"id": id})
}

// Close clears the detail selection.
func (c *JustificationController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
}

// Selected returns the current detail selection, if any.
func (c *JustificationController) Selected() *domain.Justification {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return nil
	}
	item := *c.selected
	return &item
}

// Decide applies an approve/reject decision. The ordering is deliberate:
// the server call resolves first, then the matching local item is patched
// with the confirmed record, then a full reload supersedes the patch. The
// local state is never rewritten before the server confirms.
func (c *JustificationController) Decide(ctx context.Context, id string, status domain.JustificationStatus, note string) (*domain.Justification, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return nil, apperrors.NewConflict("Hay una operación en curso", nil)
	}
	c.submitting = true
	var current *domain.Justification
	for i := range c.items {
		if c.items[i].ID == id {
			current = &c.items[i]
			break
		}
	}
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	if status == domain.JustificationRejected && strings.TrimSpace(note) == "" {
		return nil, apperrors.NewValidationError("El motivo de rechazo es obligatorio", nil)
	}
	if current != nil && !current.Status.CanTransition(status) {
		return nil, apperrors.NewConflict("La justificación ya fue decidida", map[string]any{
			"estado": string(current.Status),
		})
	}

	updated, err := c.svc.UpdateStatus(ctx, id, status, note)
	if err != nil {
		return nil, err
	}

	c.patch(*updated)

	// Authoritative refresh; its failure does not undo the confirmed decision.
	if err := c.Load(ctx); err != nil {
		c.logger.Warn("post-decision reload failed", zap.String("id", id), zap.Error(err))
	}
	return updated, nil
}

func (c *JustificationController) patch(updated domain.Justification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == updated.ID {
			c.items[i] = updated
			break
		}
	}
	if c.selected != nil && c.selected.ID == updated.ID {
		item := updated
		c.selected = &item
	}
}

// Snapshot exposes the view flags for the presentation layer.
func (c *JustificationController) Snapshot() (loading bool, errMsg string, filters JustificationFilters) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading, c.errMsg, c.filters
}

package controller

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-panel-service/internal/domain"
	"github.com/spec-kit/hr-panel-service/internal/events"
	apperrors "github.com/spec-kit/hr-panel-service/pkg/util"
)

// SuggestionAPI is the slice of the suggestion service the view consumes.
type SuggestionAPI interface {
	GetAll(ctx context.Context) ([]domain.Suggestion, error)
	UpdateStatus(ctx context.Context, id string, status domain.SuggestionStatus) (*domain.Suggestion, error)
}

// SuggestionController holds the suggestion view state. Opening a pending
// ticket marks it reviewed as a side effect of the read; the autoMarked guard
// keeps one open ticket from firing the call twice.
type SuggestionController struct {
	svc    SuggestionAPI
	logger *zap.Logger

	mu         sync.Mutex
	items      []domain.Suggestion
	loading    bool
	errMsg     string
	filters    SuggestionFilters
	selected   *domain.Suggestion
	submitting bool
	autoMarked string
}

// NewSuggestionController constructs the controller.
func NewSuggestionController(svc SuggestionAPI, logger *zap.Logger) *SuggestionController {
	return &SuggestionController{svc: svc, logger: logger}
}

// Load fetches the full collection, replacing items on success and recording
// the error message on failure. The loading flag always clears.
func (c *SuggestionController) Load(ctx context.Context) error {
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
func (c *SuggestionController) SetFilters(f SuggestionFilters) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = f
}

// Visible returns the filtered collection.
func (c *SuggestionController) Visible() []domain.Suggestion {
	c.mu.Lock()
	defer c.mu.Unlock()
	return FilterSuggestions(c.items, c.filters)
}

// Select opens the detail view. A pending ticket is auto-marked reviewed,
// exactly once per open: the guard remembers the last auto-marked identity
// and is reset when the detail closes or when the mark fails, so the same
// ticket cannot double-fire while open but a retry on reopen still works.
// The mark runs on a silenced context so a failure is logged, never surfaced
// as a notification.
func (c *SuggestionController) Select(ctx context.Context, id string) (*domain.Suggestion, error) {
	c.mu.Lock()
	var found *domain.Suggestion
	for i := range c.items {
		if c.items[i].ID == id {
			item := c.items[i]
			found = &item
			break
		}
	}
	if found == nil {
		c.mu.Unlock()
		return nil, apperrors.NewNotFound("suggestion", map[string]any{"id": id})
	}
	c.selected = found
	shouldMark := found.Status == domain.SuggestionPending && c.autoMarked != id
	if shouldMark {
		c.autoMarked = id
	}
	c.mu.Unlock()

	if !shouldMark {
		return found, nil
	}

	updated, err := c.svc.UpdateStatus(events.Silence(ctx), id, domain.SuggestionReviewed)
	if err != nil {
		c.logger.Warn("auto-review failed", zap.String("id", id), zap.Error(err))
		c.mu.Lock()
		c.autoMarked = ""
		c.mu.Unlock()
		return found, nil
	}

	c.patch(*updated)
	if err := c.Load(ctx); err != nil {
		c.logger.Warn("post-review reload failed", zap.String("id", id), zap.Error(err))
	}
	return c.Selected(), nil
}

// Close clears the detail selection and the auto-mark guard, so a different
// ticket (or this one, on a later open) can trigger the side effect again.
func (c *SuggestionController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
	c.autoMarked = ""
}

// Selected returns the current detail selection, if any.
func (c *SuggestionController) Selected() *domain.Suggestion {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return nil
	}
	item := *c.selected
	return &item
}

// UpdateStatus applies an explicit status change with the confirmed-then-patch
// -then-reload ordering shared by the panel views.
func (c *SuggestionController) UpdateStatus(ctx context.Context, id string, status domain.SuggestionStatus) (*domain.Suggestion, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return nil, apperrors.NewConflict("Hay una operación en curso", nil)
	}
	c.submitting = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	updated, err := c.svc.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	c.patch(*updated)
	if err := c.Load(ctx); err != nil {
		c.logger.Warn("post-update reload failed", zap.String("id", id), zap.Error(err))
	}
	return updated, nil
}

func (c *SuggestionController) patch(updated domain.Suggestion) {
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
func (c *SuggestionController) Snapshot() (loading bool, errMsg string, filters SuggestionFilters) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading, c.errMsg, c.filters
}

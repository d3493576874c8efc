package controller

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-panel-service/internal/domain"
)

type suggestionServiceMock struct {
	items       []domain.Suggestion
	getAllErr   error
	updateErr   error
	updateCalls []string
}

func (m *suggestionServiceMock) GetAll(context.Context) ([]domain.Suggestion, error) {
	if m.getAllErr != nil {
		return nil, m.getAllErr
	}
	return m.items, nil
}

func (m *suggestionServiceMock) UpdateStatus(_ context.Context, id string, status domain.SuggestionStatus) (*domain.Suggestion, error) {
	m.updateCalls = append(m.updateCalls, id)
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Status = status
			item := m.items[i]
			return &item, nil
		}
	}
	return &domain.Suggestion{ID: id, Status: status}, nil
}

func suggestionFixture() []domain.Suggestion {
	return []domain.Suggestion{
		{ID: "s1", Title: "Reclamo por turnos", Status: domain.SuggestionPending},
		{ID: "s2", Title: "Sugerencia de comedor", Status: domain.SuggestionPending},
		{ID: "s3", Title: "Idea de mejora", Status: domain.SuggestionReviewed},
	}
}

func TestSelectAutoMarksPendingOnce(t *testing.T) {
	mock := &suggestionServiceMock{items: suggestionFixture()}
	ctrl := NewSuggestionController(mock, zap.NewNop())
	ctx := context.Background()

	if err := ctrl.Load(ctx); err != nil {
		t.Fatalf("seed load: %v", err)
	}

	item, err := ctrl.Select(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected select error: %v", err)
	}
	if item.Status != domain.SuggestionReviewed {
		t.Errorf("expected reviewed after auto-mark, got %q", item.Status)
	}
	if len(mock.updateCalls) != 1 {
		t.Fatalf("expected exactly 1 review call, got %d", len(mock.updateCalls))
	}

	// Re-selecting the same open ticket must not fire again.
	if _, err := ctrl.Select(ctx, "s1"); err != nil {
		t.Fatalf("unexpected select error: %v", err)
	}
	if len(mock.updateCalls) != 1 {
		t.Fatalf("expected still 1 review call, got %d", len(mock.updateCalls))
	}
}

func TestSelectSkipsReviewedTickets(t *testing.T) {
	mock := &suggestionServiceMock{items: suggestionFixture()}
	ctrl := NewSuggestionController(mock, zap.NewNop())
	ctx := context.Background()

	if err := ctrl.Load(ctx); err != nil {
		t.Fatalf("seed load: %v", err)
	}

	if _, err := ctrl.Select(ctx, "s3"); err != nil {
		t.Fatalf("unexpected select error: %v", err)
	}
	if len(mock.updateCalls) != 0 {
		t.Fatalf("reviewed ticket must not trigger a review call, got %d", len(mock.updateCalls))
	}
}

func TestSelectDifferentTicketStillFires(t *testing.T) {
	mock := &suggestionServiceMock{items: suggestionFixture()}
	ctrl := NewSuggestionController(mock, zap.NewNop())
	ctx := context.Background()

	if err := ctrl.Load(ctx); err != nil {
		t.Fatalf("seed load: %v", err)
	}

	if _, err := ctrl.Select(ctx, "s1"); err != nil {
		t.Fatalf("select s1: %v", err)
	}
	ctrl.Close()
	if _, err := ctrl.Select(ctx, "s2"); err != nil {
		t.Fatalf("select s2: %v", err)
	}

	if len(mock.updateCalls) != 2 {
		t.Fatalf("expected review calls for both tickets, got %v", mock.updateCalls)
	}
}

func TestSelectFailedMarkAllowsRetryAndReturnsItem(t *testing.T) {
	mock := &suggestionServiceMock{items: suggestionFixture(), updateErr: errors.New("upstream down")}
	ctrl := NewSuggestionController(mock, zap.NewNop())
	ctx := context.Background()

	if err := ctrl.Load(ctx); err != nil {
		t.Fatalf("seed load: %v", err)
	}

	// The detail still opens; the failed side effect is swallowed.
	item, err := ctrl.Select(ctx, "s1")
	if err != nil {
		t.Fatalf("mark failure must not fail the select: %v", err)
	}
	if item.Status != domain.SuggestionPending {
		t.Errorf("expected item untouched after failed mark, got %q", item.Status)
	}
	if len(mock.updateCalls) != 1 {
		t.Fatalf("expected 1 attempted call, got %d", len(mock.updateCalls))
	}

	// Guard reset on failure: reopening retries the mark.
	ctrl.Close()
	mock.updateErr = nil
	if _, err := ctrl.Select(ctx, "s1"); err != nil {
		t.Fatalf("retry select: %v", err)
	}
	if len(mock.updateCalls) != 2 {
		t.Fatalf("expected retry after failed mark, got %d calls", len(mock.updateCalls))
	}
}

func TestSuggestionVisibleByDerivedCategory(t *testing.T) {
	mock := &suggestionServiceMock{items: suggestionFixture()}
	ctrl := NewSuggestionController(mock, zap.NewNop())
	ctx := context.Background()

	if err := ctrl.Load(ctx); err != nil {
		t.Fatalf("seed load: %v", err)
	}

	ctrl.SetFilters(SuggestionFilters{Category: "Reclamo"})
	visible := ctrl.Visible()
	if len(visible) != 1 || visible[0].ID != "s1" {
		t.Fatalf("expected only the complaint ticket, got %+v", visible)
	}

	ctrl.SetFilters(SuggestionFilters{Category: "Todos", Status: "pendiente"})
	if got := len(ctrl.Visible()); got != 2 {
		t.Errorf("expected 2 pending tickets, got %d", got)
	}
}

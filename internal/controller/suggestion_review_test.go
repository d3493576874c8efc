package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-panel-service/internal/config"
	"github.com/spec-kit/hr-panel-service/internal/domain"
	"github.com/spec-kit/hr-panel-service/internal/events"
	"github.com/spec-kit/hr-panel-service/internal/service"
	"github.com/spec-kit/hr-panel-service/internal/session"
	"github.com/spec-kit/hr-panel-service/internal/transport"
)

type notificationCounter struct {
	mu    sync.Mutex
	count int
}

func (n *notificationCounter) Publish(_ context.Context, event events.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if event.Type == events.EventNotification {
		n.count++
	}
	return nil
}

func (n *notificationCounter) Subscribe(events.EventType, events.EventHandler) {}

func (n *notificationCounter) total() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.count
}

// Exercises the full client/service/controller stack: the review mark fired by
// opening a pending ticket is a background side effect, so its failure must
// stay out of the notification feed.
func TestAutoReviewFailureRaisesNoAlert(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`[{"id":1,"titulo":"Sugerencia de comedor","estado":1}]`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	counter := &notificationCounter{}
	client := transport.NewClient(config.UpstreamConfig{
		Origin:                server.URL,
		RequestTimeoutSeconds: 5,
		BreakerMaxFailures:    10,
		BreakerOpenSeconds:    60,
	}, transport.Dependencies{
		Session:    session.New(session.NewMemoryStore()),
		Dispatcher: counter,
		Logger:     zap.NewNop(),
	})
	ctrl := NewSuggestionController(service.NewSuggestionService(client), zap.NewNop())
	ctx := context.Background()

	if err := ctrl.Load(ctx); err != nil {
		t.Fatalf("seed load: %v", err)
	}

	item, err := ctrl.Select(ctx, "1")
	if err != nil {
		t.Fatalf("failed mark must not fail the select: %v", err)
	}
	if item.Status != domain.SuggestionPending {
		t.Errorf("expected item untouched after failed mark, got %q", item.Status)
	}
	if got := counter.total(); got != 0 {
		t.Fatalf("auto-review failure must not raise a user-facing alert, got %d notification(s)", got)
	}
}

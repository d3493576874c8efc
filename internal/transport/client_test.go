package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-panel-service/internal/config"
	"github.com/spec-kit/hr-panel-service/internal/events"
	"github.com/spec-kit/hr-panel-service/internal/observability"
	"github.com/spec-kit/hr-panel-service/internal/session"
	apperrors "github.com/spec-kit/hr-panel-service/pkg/util"
)

// eventRecorder captures dispatched events for assertions.
type eventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *eventRecorder) Publish(_ context.Context, event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *eventRecorder) Subscribe(events.EventType, events.EventHandler) {}

func (r *eventRecorder) byType(eventType events.EventType) []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []events.Event
	for _, e := range r.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

func newTestClient(t *testing.T, origin string) (*Client, *session.Session, *eventRecorder) {
	t.Helper()
	return newTestClientWithBreaker(t, origin, 10)
}

func newTestClientWithBreaker(t *testing.T, origin string, maxFailures int) (*Client, *session.Session, *eventRecorder) {
	t.Helper()
	sess := session.New(session.NewMemoryStore())
	recorder := &eventRecorder{}
	client := NewClient(config.UpstreamConfig{
		Origin:                origin,
		RequestTimeoutSeconds: 5,
		BreakerMaxFailures:    maxFailures,
		BreakerOpenSeconds:    60,
	}, Dependencies{
		Session:    sess,
		Dispatcher: recorder,
		Metrics:    nil,
		Logger:     zap.NewNop(),
	})
	return client, sess, recorder
}

func TestLoginPersistsSessionAndAttachesBearer(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"t","user":{"id":"1","nombre":"A","rol":"admin","email":"a@x.com"}}`))
		case "/justifications":
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, sess, _ := newTestClient(t, server.URL)
	ctx := context.Background()

	profile, err := client.Login(ctx, "12345678", "secret")
	if err != nil {
		t.Fatalf("unexpected login error: %v", err)
	}
	if profile.Role != "admin" {
		t.Errorf("expected role 'admin', got %q", profile.Role)
	}
	persisted, err := sess.Profile(ctx)
	if err != nil {
		t.Fatalf("expected persisted profile: %v", err)
	}
	if persisted.Role != "admin" || persisted.ID != "1" {
		t.Errorf("unexpected persisted profile: %+v", persisted)
	}

	if _, err := client.Request(ctx, http.MethodGet, "/justifications", nil); err != nil {
		t.Fatalf("unexpected request error: %v", err)
	}
	if gotAuth != "Bearer t" {
		t.Errorf("expected Authorization 'Bearer t', got %q", gotAuth)
	}
}

func TestRequestUnwrapsEnvelopeAndBarePayloads(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/enveloped":
			_, _ = w.Write([]byte(`{"status":true,"data":[{"id":1}],"message":"ok"}`))
		case "/bare":
			_, _ = w.Write([]byte(`[{"id":2}]`))
		}
	}))
	defer server.Close()

	client, _, _ := newTestClient(t, server.URL)
	ctx := context.Background()

	enveloped, err := client.Request(ctx, http.MethodGet, "/enveloped", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(enveloped) != `[{"id":1}]` {
		t.Errorf("expected unwrapped data, got %s", enveloped)
	}

	bare, err := client.Request(ctx, http.MethodGet, "/bare", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(bare) != `[{"id":2}]` {
		t.Errorf("expected bare payload passthrough, got %s", bare)
	}
}

func TestRequestEnvelopeFailurePublishesOneNotification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":false,"message":"The password is incorrect."}`))
	}))
	defer server.Close()

	client, _, recorder := newTestClient(t, server.URL)

	_, err := client.Request(context.Background(), http.MethodPost, "/auth/login", map[string]string{})
	if err == nil {
		t.Fatal("expected error for failure envelope")
	}
	de := apperrors.ToDomainError(err)
	if de.Message != "La contraseña es incorrecta" {
		t.Errorf("expected translated message, got %q", de.Message)
	}

	notifications := recorder.byType(events.EventNotification)
	if len(notifications) != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", len(notifications))
	}
	payload := notifications[0].Payload.(events.NotificationPayload)
	if payload.Level != events.LevelError {
		t.Errorf("expected error level, got %q", payload.Level)
	}
}

func TestRequestSuccessPublishesNotificationOnMutationsOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"data":{"id":1}}`))
	}))
	defer server.Close()

	client, _, recorder := newTestClient(t, server.URL)
	ctx := context.Background()

	if _, err := client.Request(ctx, http.MethodGet, "/justifications", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(recorder.byType(events.EventNotification)); got != 0 {
		t.Fatalf("reads must not notify, got %d notifications", got)
	}

	if _, err := client.Request(ctx, http.MethodPost, "/justifications", map[string]string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	notifications := recorder.byType(events.EventNotification)
	if len(notifications) != 1 {
		t.Fatalf("expected 1 success notification, got %d", len(notifications))
	}
	payload := notifications[0].Payload.(events.NotificationPayload)
	if payload.Level != events.LevelSuccess {
		t.Errorf("expected success level, got %q", payload.Level)
	}
}

func TestRequestAuthExpiryClearsSessionAndSignalsRedirect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client, sess, recorder := newTestClient(t, server.URL)
	ctx := context.Background()
	if err := sess.Establish(ctx, "stale-token", session.Profile{ID: "1"}); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	_, err := client.Request(ctx, http.MethodGet, "/justifications", nil)
	if err == nil {
		t.Fatal("expected session-expired error")
	}
	if !apperrors.IsSessionExpired(err) {
		t.Errorf("expected SESSION_EXPIRED, got %v", err)
	}
	if de := apperrors.ToDomainError(err); de.Message != "Sesión expirada, vuelve a iniciar sesión" {
		t.Errorf("expected fixed expired message, got %q", de.Message)
	}
	if sess.Active(ctx) {
		t.Error("expected session to be cleared")
	}
	if got := len(recorder.byType(events.EventSessionExpired)); got != 1 {
		t.Errorf("expected 1 session-expired event, got %d", got)
	}
}

func TestRequestServerErrorSurfacesOneNotification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, _, recorder := newTestClient(t, server.URL)

	_, err := client.Request(context.Background(), http.MethodGet, "/justifications", nil)
	if err == nil {
		t.Fatal("expected error for upstream 500")
	}
	if got := len(recorder.byType(events.EventNotification)); got != 1 {
		t.Errorf("expected exactly 1 notification, got %d", got)
	}
}

func TestSilencedRequestPublishesNoNotifications(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, _, recorder := newTestClient(t, server.URL)

	ctx := events.Silence(context.Background())
	_, err := client.Request(ctx, http.MethodPatch, "/suggestions/1/status", map[string]any{"estado": 2})
	if err == nil {
		t.Fatal("expected error for upstream 500")
	}
	if got := len(recorder.byType(events.EventNotification)); got != 0 {
		t.Fatalf("silenced request must not notify, got %d notifications", got)
	}
}

func TestRequestWithExpiredTokenShortCircuits(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, sess, recorder := newTestClient(t, server.URL)
	ctx := context.Background()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("any-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if err := sess.Establish(ctx, signed, session.Profile{ID: "1"}); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	_, err = client.Request(ctx, http.MethodGet, "/justifications", nil)
	if err == nil {
		t.Fatal("expected session-expired error")
	}
	if !apperrors.IsSessionExpired(err) {
		t.Errorf("expected SESSION_EXPIRED, got %v", err)
	}
	if hits != 0 {
		t.Errorf("expired token must not reach the upstream, got %d hits", hits)
	}
	if sess.Active(ctx) {
		t.Error("expected session cleared")
	}
	if got := len(recorder.byType(events.EventSessionExpired)); got != 1 {
		t.Errorf("expected 1 session-expired event, got %d", got)
	}
}

func TestMetricsCountUpstreamOutcomes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	metrics := observability.NewMetrics()
	client := NewClient(config.UpstreamConfig{
		Origin:                server.URL,
		RequestTimeoutSeconds: 5,
		BreakerMaxFailures:    10,
		BreakerOpenSeconds:    60,
	}, Dependencies{
		Session:    session.New(session.NewMemoryStore()),
		Dispatcher: &eventRecorder{},
		Metrics:    metrics,
		Logger:     zap.NewNop(),
	})
	ctx := context.Background()

	if _, err := client.Request(ctx, http.MethodGet, "/ok", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.Request(ctx, http.MethodGet, "/bad", nil); err == nil {
		t.Fatal("expected error for upstream 500")
	}

	if got := metrics.UpstreamCalls(http.MethodGet, "/ok", true); got != 1 {
		t.Errorf("expected 1 successful call recorded, got %d", got)
	}
	if got := metrics.UpstreamCalls(http.MethodGet, "/bad", false); got != 1 {
		t.Errorf("expected 1 failed call recorded, got %d", got)
	}
}

func TestOpenBreakerShortCircuitsWithUnavailableError(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, _, recorder := newTestClientWithBreaker(t, server.URL, 1)
	ctx := context.Background()

	if _, err := client.Request(ctx, http.MethodGet, "/justifications", nil); err == nil {
		t.Fatal("expected error for the tripping request")
	}

	_, err := client.Request(ctx, http.MethodGet, "/justifications", nil)
	if err == nil {
		t.Fatal("expected error while breaker is open")
	}
	de := apperrors.ToDomainError(err)
	if de.Code != "UPSTREAM_UNAVAILABLE" {
		t.Errorf("expected UPSTREAM_UNAVAILABLE, got %q", de.Code)
	}
	if de.Message != "Servicio no disponible, intenta nuevamente" {
		t.Errorf("unexpected message: %q", de.Message)
	}
	if hits != 1 {
		t.Errorf("open breaker must not reach the upstream, got %d hits", hits)
	}
	if got := len(recorder.byType(events.EventNotification)); got != 2 {
		t.Errorf("expected one notification per failed request, got %d", got)
	}
}

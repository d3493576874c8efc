package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-panel-service/internal/config"
	"github.com/spec-kit/hr-panel-service/internal/events"
	"github.com/spec-kit/hr-panel-service/internal/observability"
	"github.com/spec-kit/hr-panel-service/internal/session"
	apperrors "github.com/spec-kit/hr-panel-service/pkg/util"
)

// Client wraps every outbound call against the HR API: it attaches the bearer
// token, unwraps the response envelope, translates server messages and tears
// the session down on an auth-expiry response. It is the only component that
// raises user-visible notifications for request outcomes.
type Client struct {
	origin     string
	http       *http.Client
	session    *session.Session
	breaker    *gobreaker.CircuitBreaker
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// Dependencies bundles collaborators for the client.
type Dependencies struct {
	Session    *session.Session
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
}

// NewClient constructs a client targeting the configured API origin.
func NewClient(cfg config.UpstreamConfig, deps Dependencies) *Client {
	settings := gobreaker.Settings{
		Name:    "hr-api",
		Timeout: time.Duration(cfg.BreakerOpenSeconds) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(cfg.BreakerMaxFailures)
		},
	}
	return &Client{
		origin:     trimSlash(cfg.Origin),
		http:       &http.Client{Timeout: cfg.RequestTimeout()},
		session:    deps.Session,
		breaker:    gobreaker.NewCircuitBreaker(settings),
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
	}
}

// Origin returns the configured API origin.
func (c *Client) Origin() string {
	return c.origin
}

type wireResult struct {
	status int
	body   []byte
}

// envelope mirrors the upstream response shape. The API answers either with
// {status, data, message} or with a bare array/object; both are tolerated.
type envelope struct {
	Status  json.RawMessage `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message json.RawMessage `json:"message"`
}

// Request performs an upstream call and returns the normalized payload.
// On failure exactly one error notification is published here; callers must
// not raise a second one.
func (c *Client) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	// An already-expired token is torn down locally instead of burning a
	// round trip on a guaranteed auth-expiry response.
	if c.session.Expired(ctx) {
		return nil, c.expireSession(ctx)
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.origin+path, reader)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.session.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	raw, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		// 5xx trips the breaker; 4xx is a business answer, not an outage.
		if resp.StatusCode >= http.StatusInternalServerError {
			return wireResult{status: resp.StatusCode, body: payload}, fmt.Errorf("upstream %s", resp.Status)
		}
		return wireResult{status: resp.StatusCode, body: payload}, nil
	})
	if err != nil {
		result, _ := raw.(wireResult)
		return nil, c.failRequest(ctx, method, path, result, err)
	}

	result := raw.(wireResult)
	c.recordUpstream(method, path, true)

	if result.status == http.StatusUnauthorized {
		return nil, c.expireSession(ctx)
	}

	env, enveloped := decodeEnvelope(result.body)
	if result.status >= http.StatusBadRequest {
		message := "Error interno del servidor"
		if enveloped {
			if translated := translateWireMessage(env.Message); translated != "" {
				message = translated
			}
		}
		c.notify(ctx, events.LevelError, message)
		return nil, apperrors.NewUpstreamError(message, map[string]any{"status": result.status})
	}

	if enveloped && isFailureStatus(env.Status) {
		message := translateWireMessage(env.Message)
		if message == "" {
			message = "La operación no pudo completarse"
		}
		c.notify(ctx, events.LevelError, message)
		return nil, apperrors.NewUpstreamError(message, nil)
	}

	if method != http.MethodGet {
		message := ""
		if enveloped {
			message = translateWireMessage(env.Message)
		}
		if message == "" {
			message = "Operación realizada con éxito"
		}
		c.notify(ctx, events.LevelSuccess, message)
	}

	if enveloped && len(env.Data) > 0 {
		return env.Data, nil
	}
	return result.body, nil
}

// failRequest maps transport-level failures onto the error taxonomy and
// publishes the single error notification for the call.
func (c *Client) failRequest(ctx context.Context, method, path string, result wireResult, err error) error {
	c.recordUpstream(method, path, false)

	if result.status == http.StatusUnauthorized {
		return c.expireSession(ctx)
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		failure := apperrors.NewUpstreamUnavailable(err)
		c.notify(ctx, events.LevelError, apperrors.ToDomainError(failure).Message)
		return failure
	}

	c.logger.Warn("upstream call failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Error(err),
	)
	failure := apperrors.NewUpstreamUnavailable(err)
	c.notify(ctx, events.LevelError, apperrors.ToDomainError(failure).Message)
	return failure
}

// expireSession clears persisted state, signals the redirect to login and
// rejects with the fixed expired message. Any in-flight workflow ends here.
func (c *Client) expireSession(ctx context.Context) error {
	if err := c.session.Clear(ctx); err != nil {
		c.logger.Warn("failed to clear session", zap.Error(err))
	}
	c.publish(ctx, events.Event{Type: events.EventSessionExpired})
	return apperrors.NewSessionExpired()
}

func (c *Client) notify(ctx context.Context, level events.NotificationLevel, message string) {
	if events.Silenced(ctx) {
		return
	}
	c.publish(ctx, events.Event{
		Type:    events.EventNotification,
		Payload: events.NotificationPayload{Level: level, Message: message},
	})
}

func (c *Client) publish(ctx context.Context, event events.Event) {
	if c.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = c.dispatcher.Publish(ctx, event)
}

func (c *Client) recordUpstream(method, path string, ok bool) {
	if c.metrics != nil {
		c.metrics.RecordUpstream(method, path, ok)
	}
}

// decodeEnvelope reports whether the body carries the standard envelope.
func decodeEnvelope(body []byte) (envelope, bool) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return envelope{}, false
	}
	_, hasStatus := probe["status"]
	_, hasData := probe["data"]
	if !hasStatus && !hasData {
		return envelope{}, false
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return envelope{}, false
	}
	return env, true
}

// isFailureStatus interprets the envelope's success flag. A boolean false or
// the strings "error"/"fail" mark failure; anything else counts as success.
func isFailureStatus(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var asBool bool
	if err := json.Unmarshal(raw, &asBool); err == nil {
		return !asBool
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		switch asString {
		case "error", "fail", "failed":
			return true
		}
	}
	return false
}

func trimSlash(origin string) string {
	for len(origin) > 0 && origin[len(origin)-1] == '/' {
		origin = origin[:len(origin)-1]
	}
	return origin
}

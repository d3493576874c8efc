package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/spec-kit/hr-panel-service/internal/domain"
)

// API is the slice of the transport client the resource services consume.
type API interface {
	Request(ctx context.Context, method, path string, body any) (json.RawMessage, error)
	Origin() string
}

// namedRelation is the nested relation object shape used across resources.
type namedRelation struct {
	ID     json.RawMessage `json:"id"`
	Nombre string          `json:"nombre"`
}

// fallbackName resolves a display name through the fixed chain:
// explicit denormalized field → nested relation → literal default.
func fallbackName(explicit string, relation *namedRelation, def string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	if relation != nil && strings.TrimSpace(relation.Nombre) != "" {
		return relation.Nombre
	}
	return def
}

// absoluteURL prefixes relative attachment paths with the API origin.
// Absolute URLs and data URIs pass through unchanged.
func absoluteURL(origin, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") || strings.HasPrefix(raw, "data:") {
		return raw
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return origin + raw
}

// wireAttachment is the attachment shape common to tickets and announcements.
type wireAttachment struct {
	URL    string `json:"url"`
	Nombre string `json:"nombre"`
	Tipo   string `json:"tipo"`
}

func normalizeAttachments(origin string, files []wireAttachment) []domain.Attachment {
	if len(files) == 0 {
		return nil
	}
	out := make([]domain.Attachment, 0, len(files))
	for _, f := range files {
		out = append(out, domain.Attachment{
			URL:      absoluteURL(origin, f.URL),
			FileName: f.Nombre,
			MimeType: f.Tipo,
		})
	}
	return out
}

var wireTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseWireTime tolerates the timestamp formats the upstream emits.
func parseWireTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range wireTimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func parseWireTimePtr(raw string) *time.Time {
	parsed := parseWireTime(raw)
	if parsed.IsZero() {
		return nil
	}
	return &parsed
}

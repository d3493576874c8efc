package transport

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/spec-kit/hr-panel-service/internal/session"
	apperrors "github.com/spec-kit/hr-panel-service/pkg/util"
)

type loginRequest struct {
	Document string `json:"documento"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID     json.RawMessage `json:"id"`
		Nombre string          `json:"nombre"`
		Rol    string          `json:"rol"`
		Email  string          `json:"email"`
	} `json:"user"`
}

// Login authenticates against the HR API and establishes the session.
func (c *Client) Login(ctx context.Context, document, password string) (session.Profile, error) {
	payload, err := c.Request(ctx, http.MethodPost, "/auth/login", loginRequest{
		Document: document,
		Password: password,
	})
	if err != nil {
		return session.Profile{}, err
	}

	var resp loginResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return session.Profile{}, apperrors.NewInternalError(err)
	}
	if resp.AccessToken == "" {
		return session.Profile{}, apperrors.NewUpstreamError("La respuesta de inicio de sesión es inválida", nil)
	}

	profile := session.Profile{
		ID:    apperrors.CoerceID(resp.User.ID),
		Name:  resp.User.Nombre,
		Role:  resp.User.Rol,
		Email: resp.User.Email,
	}
	if err := c.session.Establish(ctx, resp.AccessToken, profile); err != nil {
		return session.Profile{}, apperrors.NewInternalError(err)
	}
	return profile, nil
}

// Logout tears down the persisted session.
func (c *Client) Logout(ctx context.Context) error {
	return c.session.Clear(ctx)
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-panel-service/internal/api/dto"
	"github.com/spec-kit/hr-panel-service/internal/session"
	"github.com/spec-kit/hr-panel-service/internal/transport"
)

// SessionHandler exposes the panel login/logout lifecycle.
type SessionHandler struct {
	client *transport.Client
	sess   *session.Session
}

// NewSessionHandler constructs the handler.
func NewSessionHandler(client *transport.Client, sess *session.Session) *SessionHandler {
	return &SessionHandler{client: client, sess: sess}
}

// Login handles POST /session/login.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Document == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "documento y contraseña son obligatorios")
	}

	profile, err := h.client.Login(c.UserContext(), req.Document, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": dto.ProfileResponse{
		ID:    profile.ID,
		Name:  profile.Name,
		Role:  profile.Role,
		Email: profile.Email,
	}})
}

// Logout handles POST /session/logout.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	if err := h.client.Logout(c.UserContext()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}

// Me handles GET /session/me.
func (h *SessionHandler) Me(c *fiber.Ctx) error {
	profile, err := h.sess.Profile(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusUnauthorized, "no hay sesión activa")
	}
	return c.JSON(fiber.Map{"data": dto.ProfileResponse{
		ID:    profile.ID,
		Name:  profile.Name,
		Role:  profile.Role,
		Email: profile.Email,
	}})
}

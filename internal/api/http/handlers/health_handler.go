package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HealthHandler exposes liveness/readiness endpoints.
type HealthHandler struct {
	version string
	ready   func() error
}

// NewHealthHandler constructs the handler. ready may be nil.
func NewHealthHandler(version string, ready func() error) *HealthHandler {
	return &HealthHandler{version: version, ready: ready}
}

// Live handles GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "version": h.version})
}

// Ready handles GET /health/ready.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if h.ready != nil {
		if err := h.ready(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"reason": err.Error(),
			})
		}
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-panel-service/internal/api/dto"
	"github.com/spec-kit/hr-panel-service/internal/controller"
	"github.com/spec-kit/hr-panel-service/internal/domain"
)

// JustificationsHandler exposes the justification view.
type JustificationsHandler struct {
	ctrl *controller.JustificationController
}

// NewJustificationsHandler constructs the handler.
func NewJustificationsHandler(ctrl *controller.JustificationController) *JustificationsHandler {
	return &JustificationsHandler{ctrl: ctrl}
}

// List handles GET /panel/justifications?area=&status=.
func (h *JustificationsHandler) List(c *fiber.Ctx) error {
	filters := controller.JustificationFilters{
		Area:   c.Query("area", controller.FilterAllFeminine),
		Status: c.Query("status", controller.FilterAllMasculine),
	}
	h.ctrl.SetFilters(filters)

	if err := h.ctrl.Load(c.UserContext()); err != nil {
		return err
	}

	items := h.ctrl.Visible()
	out := make([]dto.JustificationResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.NewJustificationResponse(item))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get handles GET /panel/justifications/:id — opens the detail view.
func (h *JustificationsHandler) Get(c *fiber.Ctx) error {
	item, err := h.ctrl.Select(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJustificationResponse(*item)})
}

// CloseSelection handles DELETE /panel/justifications/selection.
func (h *JustificationsHandler) CloseSelection(c *fiber.Ctx) error {
	h.ctrl.Close()
	return c.SendStatus(http.StatusNoContent)
}

// Decide handles POST /panel/justifications/:id/decision.
func (h *JustificationsHandler) Decide(c *fiber.Ctx) error {
	var req dto.DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	status, ok := domain.ParseJustificationStatus(req.Status)
	if !ok || status == domain.JustificationPending {
		return fiber.NewError(http.StatusBadRequest, "estado inválido")
	}

	updated, err := h.ctrl.Decide(c.UserContext(), c.Params("id"), status, req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJustificationResponse(*updated)})
}

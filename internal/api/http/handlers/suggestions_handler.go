package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-panel-service/internal/api/dto"
	"github.com/spec-kit/hr-panel-service/internal/controller"
	"github.com/spec-kit/hr-panel-service/internal/domain"
)

// SuggestionsHandler exposes the suggestion/complaint view.
type SuggestionsHandler struct {
	ctrl *controller.SuggestionController
}

// NewSuggestionsHandler constructs the handler.
func NewSuggestionsHandler(ctrl *controller.SuggestionController) *SuggestionsHandler {
	return &SuggestionsHandler{ctrl: ctrl}
}

// List handles GET /panel/suggestions?category=&status=.
func (h *SuggestionsHandler) List(c *fiber.Ctx) error {
	filters := controller.SuggestionFilters{
		Category: c.Query("category", controller.FilterAllFeminine),
		Status:   c.Query("status", controller.FilterAllMasculine),
	}
	h.ctrl.SetFilters(filters)

	if err := h.ctrl.Load(c.UserContext()); err != nil {
		return err
	}

	items := h.ctrl.Visible()
	out := make([]dto.SuggestionResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.NewSuggestionResponse(item))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get handles GET /panel/suggestions/:id — opens the detail view, which
// auto-marks a pending ticket as reviewed.
func (h *SuggestionsHandler) Get(c *fiber.Ctx) error {
	item, err := h.ctrl.Select(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSuggestionResponse(*item)})
}

// UpdateStatus handles PATCH /panel/suggestions/:id/status.
func (h *SuggestionsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.SuggestionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	status, ok := domain.ParseSuggestionStatus(req.Status)
	if !ok {
		return fiber.NewError(http.StatusBadRequest, "estado inválido")
	}

	updated, err := h.ctrl.UpdateStatus(c.UserContext(), c.Params("id"), status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSuggestionResponse(*updated)})
}

// CloseSelection handles DELETE /panel/suggestions/selection.
func (h *SuggestionsHandler) CloseSelection(c *fiber.Ctx) error {
	h.ctrl.Close()
	return c.SendStatus(http.StatusNoContent)
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-panel-service/internal/api/dto"
	"github.com/spec-kit/hr-panel-service/internal/domain"
	"github.com/spec-kit/hr-panel-service/internal/service"
)

// AnnouncementsHandler exposes announcement CRUD.
type AnnouncementsHandler struct {
	announcements *service.AnnouncementService
}

// NewAnnouncementsHandler constructs the handler.
func NewAnnouncementsHandler(announcements *service.AnnouncementService) *AnnouncementsHandler {
	return &AnnouncementsHandler{announcements: announcements}
}

// List handles GET /panel/announcements.
func (h *AnnouncementsHandler) List(c *fiber.Ctx) error {
	items, err := h.announcements.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.AnnouncementResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.NewAnnouncementResponse(item))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Create handles POST /panel/announcements.
func (h *AnnouncementsHandler) Create(c *fiber.Ctx) error {
	input, err := parseAnnouncementRequest(c)
	if err != nil {
		return err
	}
	created, err := h.announcements.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewAnnouncementResponse(*created)})
}

// Update handles PUT /panel/announcements/:id.
func (h *AnnouncementsHandler) Update(c *fiber.Ctx) error {
	input, err := parseAnnouncementRequest(c)
	if err != nil {
		return err
	}
	updated, err := h.announcements.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAnnouncementResponse(*updated)})
}

// Delete handles DELETE /panel/announcements/:id.
func (h *AnnouncementsHandler) Delete(c *fiber.Ctx) error {
	if err := h.announcements.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseAnnouncementRequest(c *fiber.Ctx) (domain.AnnouncementInput, error) {
	var req dto.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.AnnouncementInput{}, fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
		return domain.AnnouncementInput{}, fiber.NewError(http.StatusBadRequest, "titulo y contenido son obligatorios")
	}
	return domain.AnnouncementInput{
		Title:    req.Title,
		Body:     req.Body,
		ImageURL: req.ImageURL,
	}, nil
}

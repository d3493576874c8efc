package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/spec-kit/hr-panel-service/internal/report"
	"github.com/spec-kit/hr-panel-service/internal/service"
	apperrors "github.com/spec-kit/hr-panel-service/pkg/util"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportsHandler serves generated workbooks and bulk templates.
type ReportsHandler struct {
	justifications *service.JustificationService
	suggestions    *service.SuggestionService
}

// NewReportsHandler constructs the handler.
func NewReportsHandler(justifications *service.JustificationService, suggestions *service.SuggestionService) *ReportsHandler {
	return &ReportsHandler{justifications: justifications, suggestions: suggestions}
}

// Justifications handles GET /export/justifications.xlsx.
func (h *ReportsHandler) Justifications(c *fiber.Ctx) error {
	items, err := h.justifications.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	file, err := report.JustificationsWorkbook(items)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return sendWorkbook(c, file, "justificaciones.xlsx")
}

// Suggestions handles GET /export/suggestions.xlsx.
func (h *ReportsHandler) Suggestions(c *fiber.Ctx) error {
	items, err := h.suggestions.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	file, err := report.SuggestionsWorkbook(items)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return sendWorkbook(c, file, "sugerencias.xlsx")
}

// UploadTemplate handles GET /export/templates/upload.xlsx.
func (h *ReportsHandler) UploadTemplate(c *fiber.Ctx) error {
	file, err := report.UploadTemplate()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return sendWorkbook(c, file, "plantilla_carga.xlsx")
}

// RemoveTemplate handles GET /export/templates/remove.xlsx.
func (h *ReportsHandler) RemoveTemplate(c *fiber.Ctx) error {
	file, err := report.RemoveTemplate()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return sendWorkbook(c, file, "plantilla_baja.xlsx")
}

func sendWorkbook(c *fiber.Ctx, file *excelize.File, filename string) error {
	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

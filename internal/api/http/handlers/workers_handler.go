package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-panel-service/internal/api/dto"
	"github.com/spec-kit/hr-panel-service/internal/domain"
	"github.com/spec-kit/hr-panel-service/internal/roster"
	"github.com/spec-kit/hr-panel-service/internal/service"
)

// WorkersHandler exposes the roster view and the bulk flows.
type WorkersHandler struct {
	workers  *service.WorkerService
	importer *roster.Importer
	remover  *roster.Remover
}

// NewWorkersHandler constructs the handler.
func NewWorkersHandler(workers *service.WorkerService, importer *roster.Importer, remover *roster.Remover) *WorkersHandler {
	return &WorkersHandler{workers: workers, importer: importer, remover: remover}
}

// List handles GET /panel/workers.
func (h *WorkersHandler) List(c *fiber.Ctx) error {
	workers, err := h.workers.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		out = append(out, dto.NewWorkerResponse(w))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Create handles POST /panel/workers.
func (h *WorkersHandler) Create(c *fiber.Ctx) error {
	input, err := parseWorkerRequest(c)
	if err != nil {
		return err
	}
	created, err := h.workers.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewWorkerResponse(*created)})
}

// Update handles PATCH /panel/workers/:id.
func (h *WorkersHandler) Update(c *fiber.Ctx) error {
	input, err := parseWorkerRequest(c)
	if err != nil {
		return err
	}
	updated, err := h.workers.Update(c.UserContext(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewWorkerResponse(*updated)})
}

// Delete handles DELETE /panel/workers/:id.
func (h *WorkersHandler) Delete(c *fiber.Ctx) error {
	if err := h.workers.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Import handles POST /panel/workers/import with a multipart spreadsheet.
func (h *WorkersHandler) Import(c *fiber.Ctx) error {
	rows, err := rowsFromUpload(c)
	if err != nil {
		return err
	}
	result, err := h.importer.Import(c.UserContext(), rows)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": result})
}

// RemovePrepare handles POST /panel/workers/remove/prepare: it collects the
// document ids from the uploaded sheet for operator confirmation. No upstream
// call happens here.
func (h *WorkersHandler) RemovePrepare(c *fiber.Ctx) error {
	rows, err := rowsFromUpload(c)
	if err != nil {
		return err
	}
	documents, err := roster.CollectDocuments(rows)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"documentos": documents}})
}

// RemoveExecute handles POST /panel/workers/remove: the confirmed batched call.
func (h *WorkersHandler) RemoveExecute(c *fiber.Ctx) error {
	var req dto.RemoveExecuteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	switch req.Action {
	case "desactivar", "eliminar":
	default:
		return fiber.NewError(http.StatusBadRequest, "accion debe ser desactivar o eliminar")
	}
	result, err := h.remover.Execute(c.UserContext(), req.Documents, req.Action == "eliminar")
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": result})
}

func parseWorkerRequest(c *fiber.Ctx) (domain.WorkerInput, error) {
	var req dto.WorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.WorkerInput{}, fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Document) == "" {
		return domain.WorkerInput{}, fiber.NewError(http.StatusBadRequest, "nombre y documento son obligatorios")
	}
	company := domain.CompanyPrimary
	if strings.EqualFold(req.Company, string(domain.CompanySecondary)) {
		company = domain.CompanySecondary
	}
	return domain.WorkerInput{
		FullName: req.FullName,
		Document: req.Document,
		Role:     domain.RoleFromText(req.Role),
		Company:  company,
		AreaID:   req.AreaID,
	}, nil
}

func rowsFromUpload(c *fiber.Ctx) ([][]string, error) {
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "archivo es obligatorio")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "no se pudo abrir el archivo")
	}
	defer file.Close()
	return roster.ReadRows(file)
}

package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menuiserie-crm/internal/application/dto"
	"github.com/jhoicas/menuiserie-crm/internal/application/workflow"
	"github.com/jhoicas/menuiserie-crm/internal/domain/status"
)

// StatusHandler catálogo de estados y cambios de estado de documentos, prospectos y proyectos.
type StatusHandler struct {
	catalog   *workflow.CatalogUseCase
	documents *workflow.DocumentStatusUseCase
	pipeline  *workflow.PipelineStatusUseCase
	locales   *LocaleResolver
}

// NewStatusHandler construye el handler.
func NewStatusHandler(
	catalog *workflow.CatalogUseCase,
	documents *workflow.DocumentStatusUseCase,
	pipeline *workflow.PipelineStatusUseCase,
	locales *LocaleResolver,
) *StatusHandler {
	return &StatusHandler{catalog: catalog, documents: documents, pipeline: pipeline, locales: locales}
}

// Options opciones de estado de una entidad.
// GET /api/crm/statuses/:entity?doc_type=&locale=
func (h *StatusHandler) Options(c *fiber.Ctx) error {
	resp, err := h.catalog.StatusOptions(c.Params("entity"), c.Query("doc_type"), h.locales.Resolve(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Transitions grafo de transiciones de un tipo de documento.
// GET /api/crm/statuses/documents/:docType/transitions
func (h *StatusHandler) Transitions(c *fiber.Ctx) error {
	resp, err := h.catalog.Transitions(c.Params("docType"), h.locales.Resolve(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// DocumentTypes tipos de documento con su etiqueta.
// GET /api/crm/document-types?locale=
func (h *StatusHandler) DocumentTypes(c *fiber.Ctx) error {
	return c.JSON(h.catalog.DocumentTypes(h.locales.Resolve(c)))
}

// ChangeDocumentStatus cambia el estado de un documento.
// PUT /api/crm/documents/:id/status
func (h *StatusHandler) ChangeDocumentStatus(c *fiber.Ctx) error {
	return h.change(c, h.documents.ChangeStatus)
}

// ChangeLeadStatus cambia el estado de un prospecto.
// PUT /api/crm/leads/:id/status
func (h *StatusHandler) ChangeLeadStatus(c *fiber.Ctx) error {
	return h.change(c, h.pipeline.ChangeLeadStatus)
}

// ChangeProjectStatus cambia el estado de un proyecto.
// PUT /api/crm/projects/:id/status
func (h *StatusHandler) ChangeProjectStatus(c *fiber.Ctx) error {
	return h.change(c, h.pipeline.ChangeProjectStatus)
}

type changeStatusFunc = func(ctx context.Context, companyID, id string, in dto.ChangeStatusRequest, loc status.Locale) (*dto.StatusChangeResponse, error)

func (h *StatusHandler) change(c *fiber.Ctx, fn changeStatusFunc) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status requerido"})
	}
	resp, err := fn(c.UserContext(), companyID, id, in, h.locales.Resolve(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

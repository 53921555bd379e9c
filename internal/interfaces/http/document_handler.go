package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menuiserie-crm/internal/application/billing"
	"github.com/jhoicas/menuiserie-crm/internal/application/dto"
)

// DocumentHandler alta y consulta de documentos, y pagos de facturas (protegido).
type DocumentHandler struct {
	documents *billing.DocumentUseCase
	payments  *billing.PaymentUseCase
	locales   *LocaleResolver
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(documents *billing.DocumentUseCase, payments *billing.PaymentUseCase, locales *LocaleResolver) *DocumentHandler {
	return &DocumentHandler{documents: documents, payments: payments, locales: locales}
}

// Create crea un documento en borrador.
// POST /api/crm/documents
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	doc, err := h.documents.Create(c.UserContext(), companyID, in, h.locales.Resolve(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// GetByID detalle de un documento con sus líneas.
// GET /api/crm/documents/:id
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	doc, err := h.documents.GetByID(c.UserContext(), companyID, id, h.locales.Resolve(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(doc)
}

// List documentos de la empresa.
// GET /api/crm/documents?type=&status=&client_id=&limit=&offset=
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.ListDocumentsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de consulta inválidos"})
	}
	if _, ok := validUUIDQuery(c, "client_id"); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id debe ser un UUID"})
	}
	out, err := h.documents.List(c.UserContext(), companyID, in, h.locales.Resolve(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Convert genera el documento siguiente del pipeline a partir de :id.
// POST /api/crm/documents/:id/convert
func (h *DocumentHandler) Convert(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	var in dto.ConvertDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	doc, err := h.documents.Convert(c.UserContext(), companyID, id, in, h.locales.Resolve(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// RecordPayment registra un pago sobre una factura.
// POST /api/crm/documents/:id/payments
func (h *DocumentHandler) RecordPayment(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return unauthorized(c)
	}
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.payments.RecordPayment(c.UserContext(), companyID, userID, id, in, h.locales.Resolve(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPayments pagos de un documento.
// GET /api/crm/documents/:id/payments
func (h *DocumentHandler) ListPayments(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	list, err := h.payments.ListPayments(c.UserContext(), companyID, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

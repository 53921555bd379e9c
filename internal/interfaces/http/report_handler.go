package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menuiserie-crm/internal/application/dto"
	"github.com/jhoicas/menuiserie-crm/internal/application/reports"
)

// ReportHandler reportes de cartera (protegido).
type ReportHandler struct {
	uc      *reports.ReceivablesUseCase
	locales *LocaleResolver
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReceivablesUseCase, locales *LocaleResolver) *ReportHandler {
	return &ReportHandler{uc: uc, locales: locales}
}

// Receivables antigüedad de saldos de las facturas pendientes.
// GET /api/crm/reports/receivables?client_id=
func (h *ReportHandler) Receivables(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	clientID, ok := validUUIDQuery(c, "client_id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id debe ser un UUID"})
	}
	out, err := h.uc.Report(c.UserContext(), companyID, clientID, time.Now(), h.locales.Resolve(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menuiserie-crm/internal/application/billing"
	"github.com/jhoicas/menuiserie-crm/internal/application/reports"
	"github.com/jhoicas/menuiserie-crm/internal/application/workflow"
	"github.com/jhoicas/menuiserie-crm/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Catalog        *workflow.CatalogUseCase
	DocumentStatus *workflow.DocumentStatusUseCase
	Pipeline       *workflow.PipelineStatusUseCase
	Documents      *billing.DocumentUseCase
	Payments       *billing.PaymentUseCase
	Receivables    *reports.ReceivablesUseCase
	JWTSecret      string
	JWTIssuer      string
	DefaultLocale  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	locales := NewLocaleResolver(deps.DefaultLocale)
	statusHandler := NewStatusHandler(deps.Catalog, deps.DocumentStatus, deps.Pipeline, locales)
	documentHandler := NewDocumentHandler(deps.Documents, deps.Payments, locales)
	reportHandler := NewReportHandler(deps.Receivables, locales)

	// Todo el CRM requiere Bearer Token
	crm := app.Group("/api/crm", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleCommercial, entity.RoleComptable)
	sales := RequireRole(entity.RoleAdmin, entity.RoleCommercial)
	accounting := RequireRole(entity.RoleAdmin, entity.RoleComptable)

	// Catálogo (solo lectura)
	crm.Get("/statuses/documents/:docType/transitions", anyRole, statusHandler.Transitions)
	crm.Get("/statuses/:entity", anyRole, statusHandler.Options)
	crm.Get("/document-types", anyRole, statusHandler.DocumentTypes)

	// Pipeline comercial
	crm.Put("/leads/:id/status", sales, statusHandler.ChangeLeadStatus)
	crm.Put("/projects/:id/status", sales, statusHandler.ChangeProjectStatus)

	// Documentos
	docs := crm.Group("/documents")
	docs.Get("/", anyRole, documentHandler.List)
	docs.Post("/", sales, documentHandler.Create)
	docs.Get("/:id", anyRole, documentHandler.GetByID)
	docs.Put("/:id/status", anyRole, statusHandler.ChangeDocumentStatus)
	docs.Post("/:id/convert", sales, documentHandler.Convert)
	docs.Get("/:id/payments", anyRole, documentHandler.ListPayments)
	docs.Post("/:id/payments", accounting, documentHandler.RecordPayment)

	// Reportes
	crm.Get("/reports/receivables", accounting, reportHandler.Receivables)
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/menuiserie-crm/internal/application/billing"
	"github.com/jhoicas/menuiserie-crm/internal/application/reports"
	"github.com/jhoicas/menuiserie-crm/internal/application/workflow"
	"github.com/jhoicas/menuiserie-crm/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/menuiserie-crm/internal/interfaces/http"
	"github.com/jhoicas/menuiserie-crm/pkg/config"
	"github.com/jhoicas/menuiserie-crm/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("locale", cfg.CRM.DefaultLocale).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.RunMigrations(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	for _, name := range applied {
		log.Info().Str("migration", name).Msg("migración aplicada")
	}

	documentRepo := postgres.NewDocumentRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	receivableRepo := postgres.NewReceivableRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	catalogUC := workflow.NewCatalogUseCase()
	documentStatusUC := workflow.NewDocumentStatusUseCase(txRunner, log)
	pipelineUC := workflow.NewPipelineStatusUseCase(leadRepo, projectRepo, log)
	documentUC := billing.NewDocumentUseCase(txRunner, documentRepo, clientRepo, cfg.CRM.PaymentTermsDays, log)
	paymentUC := billing.NewPaymentUseCase(txRunner, documentRepo, paymentRepo, log)
	receivablesUC := reports.NewReceivablesUseCase(receivableRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Menuiserie CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Catalog:        catalogUC,
		DocumentStatus: documentStatusUC,
		Pipeline:       pipelineUC,
		Documents:      documentUC,
		Payments:       paymentUC,
		Receivables:    receivablesUC,
		JWTSecret:      cfg.JWT.Secret,
		JWTIssuer:      cfg.JWT.Issuer,
		DefaultLocale:  cfg.CRM.DefaultLocale,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

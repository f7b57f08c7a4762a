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

	"github.com/ejadull/l10n-ar-invoice/internal/application/auth"
	"github.com/ejadull/l10n-ar-invoice/internal/application/billing"
	appCompany "github.com/ejadull/l10n-ar-invoice/internal/application/company"
	appPartner "github.com/ejadull/l10n-ar-invoice/internal/application/partner"
	infrapdf "github.com/ejadull/l10n-ar-invoice/internal/infrastructure/pdf"
	"github.com/ejadull/l10n-ar-invoice/internal/infrastructure/postgres"
	httpRouter "github.com/ejadull/l10n-ar-invoice/internal/interfaces/http"
	"github.com/ejadull/l10n-ar-invoice/pkg/config"
	"github.com/ejadull/l10n-ar-invoice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	partnerRepo := postgres.NewPartnerRepository(pool)
	journalRepo := postgres.NewJournalRepository(pool)
	responsibilityRepo := postgres.NewResponsibilityRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	taxRepo := postgres.NewTaxRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := appCompany.NewUseCase(companyRepo)
	partnerUC := appPartner.NewUseCase(partnerRepo)
	journalEligibilityUC := billing.NewJournalEligibilityUseCase(companyRepo, partnerRepo, journalRepo)
	createInvoiceUC := billing.NewCreateInvoiceUseCase(
		txRunner, companyRepo, partnerRepo, journalRepo, productRepo, taxRepo, invoiceRepo,
	)
	confirmInvoiceUC := billing.NewConfirmInvoiceUseCase(
		txRunner, invoiceRepo, companyRepo, partnerRepo, journalRepo, responsibilityRepo, log,
	)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicePDFUC := billing.NewInvoicePDFUseCase(
		invoiceRepo, companyRepo, partnerRepo, journalRepo, pdfGenerator,
	)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "API Facturación AR",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:             authUC,
		CompanyUC:          companyUC,
		PartnerUC:          partnerUC,
		JournalEligibility: journalEligibilityUC,
		CreateInvoice:      createInvoiceUC,
		ConfirmInvoice:     confirmInvoiceUC,
		InvoicePDF:         invoicePDFUC,
		JWTSecret:          cfg.JWT.Secret,
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

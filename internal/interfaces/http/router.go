package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ejadull/l10n-ar-invoice/internal/application/auth"
	"github.com/ejadull/l10n-ar-invoice/internal/application/billing"
	appCompany "github.com/ejadull/l10n-ar-invoice/internal/application/company"
	appPartner "github.com/ejadull/l10n-ar-invoice/internal/application/partner"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC             *auth.AuthUseCase
	CompanyUC          *appCompany.UseCase
	PartnerUC          *appPartner.UseCase
	JournalEligibility *billing.JournalEligibilityUseCase
	CreateInvoice      *billing.CreateInvoiceUseCase
	ConfirmInvoice     *billing.ConfirmInvoiceUseCase
	InvoicePDF         *billing.InvoicePDFUseCase
	JWTSecret          string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; bootstrap del tenant)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Partners (protegido)
	partners := protected.Group("/partners")
	partnerHandler := NewPartnerHandler(deps.PartnerUC)
	partners.Post("/validate-document", partnerHandler.ValidateDocument)
	partners.Post("/", partnerHandler.Create)
	partners.Get("/", partnerHandler.List)
	partners.Get("/:id", partnerHandler.GetByID)
	partners.Put("/:id", partnerHandler.Update)

	// Journals (protegido)
	journals := protected.Group("/journals")
	journalHandler := NewJournalHandler(deps.JournalEligibility)
	journals.Get("/eligible", journalHandler.Eligible)

	// Invoices (protegido). Confirmar exige rol con permiso de emisión.
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.ConfirmInvoice, deps.InvoicePDF)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.GeneratePDF)
	invoices.Post("/:id/confirm",
		RequireRole(entity.RoleAdmin, entity.RoleContador, entity.RoleFacturador),
		invoiceHandler.Confirm,
	)
}

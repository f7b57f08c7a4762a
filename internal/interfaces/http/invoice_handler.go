package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ejadull/l10n-ar-invoice/internal/application/billing"
	"github.com/ejadull/l10n-ar-invoice/internal/application/dto"
	"github.com/ejadull/l10n-ar-invoice/internal/domain"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/afip"
)

// InvoiceHandler maneja las peticiones HTTP de comprobantes (protegido).
type InvoiceHandler struct {
	createUC  *billing.CreateInvoiceUseCase
	confirmUC *billing.ConfirmInvoiceUseCase
	pdfUC     *billing.InvoicePDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(createUC *billing.CreateInvoiceUseCase, confirmUC *billing.ConfirmInvoiceUseCase, pdfUC *billing.InvoicePDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{createUC: createUC, confirmUC: confirmUC, pdfUC: pdfUC}
}

// Create crea un comprobante en borrador con totales y concepto calculados.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	invoice, err := h.createUC.CreateInvoice(c.Context(), companyID, in)
	if err != nil {
		return mapInvoiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// GetByID obtiene el detalle completo de un comprobante.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	invoice, err := h.createUC.GetInvoice(c.Context(), companyID, id)
	if err != nil {
		return mapInvoiceError(c, err)
	}
	return c.JSON(invoice)
}

// List lista comprobantes de la empresa.
// GET /api/invoices?limit=20&offset=0
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de paginación inválidos"})
	}
	list, err := h.createUC.ListInvoices(c.Context(), companyID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Confirm confirma un comprobante en borrador: corre las validaciones AFIP y,
// si pasan, asigna número y lo deja abierto. Un rechazo AFIP responde 422 con
// el motivo; el comprobante queda en borrador.
// POST /api/invoices/:id/confirm
func (h *InvoiceHandler) Confirm(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	out, err := h.confirmUC.Confirm(c.Context(), companyID, id)
	if err != nil {
		return mapInvoiceError(c, err)
	}
	return c.JSON(out)
}

// GeneratePDF devuelve el PDF imprimible de un comprobante confirmado.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) GeneratePDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	pdfBytes, err := h.pdfUC.GeneratePDF(c.Context(), companyID, id)
	if err != nil {
		return mapInvoiceError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="comprobante-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}

// mapInvoiceError traduce errores de dominio a respuestas HTTP. Los rechazos
// AFIP van como 422 con su motivo; los errores de configuración como 409.
func mapInvoiceError(c *fiber.Ctx, err error) error {
	var compliance *afip.ComplianceError
	if errors.As(err, &compliance) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    string(compliance.Reason),
			Message: compliance.Message,
		})
	}
	var configuration *afip.ConfigurationError
	if errors.As(err, &configuration) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "CONFIGURATION",
			Message: configuration.Message,
		})
	}
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case domain.ErrInvoiceNotDraft:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_DRAFT", Message: "el comprobante no está en borrador"})
	case domain.ErrInvoiceNotOpen:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_CONFIRMED", Message: "el comprobante no está confirmado"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "conflicto de numeración"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

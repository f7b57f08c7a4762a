package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ejadull/l10n-ar-invoice/internal/application/billing"
	"github.com/ejadull/l10n-ar-invoice/internal/application/dto"
)

// JournalHandler maneja la resolución de diarios habilitados (protegido).
type JournalHandler struct {
	uc *billing.JournalEligibilityUseCase
}

// NewJournalHandler construye el handler.
func NewJournalHandler(uc *billing.JournalEligibilityUseCase) *JournalHandler {
	return &JournalHandler{uc: uc}
}

// Eligible devuelve los diarios habilitados para facturarle a un partner.
// GET /api/journals/eligible?partner_id=...&invoice_type=out_invoice
func (h *JournalHandler) Eligible(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.EligibleJournalsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	list, err := h.uc.EligibleJournals(c.Context(), companyID, in)
	if err != nil {
		return mapInvoiceError(c, err)
	}
	return c.JSON(list)
}

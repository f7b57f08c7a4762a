package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones del comprobante. Cada una mapea a un tipo fijo de diario
// (ver afip.JournalTypesForInvoiceType).
const (
	InvoiceTypeOutInvoice = "out_invoice" // factura de venta
	InvoiceTypeOutRefund  = "out_refund"  // nota de crédito de venta
	InvoiceTypeInInvoice  = "in_invoice"  // factura de compra
	InvoiceTypeInRefund   = "in_refund"   // nota de crédito de compra
)

// Estados del comprobante.
const (
	InvoiceStatusDraft  = "draft"  // borrador editable
	InvoiceStatusOpen   = "open"   // confirmada: pasó la validación AFIP
	InvoiceStatusCancel = "cancel" // anulada
)

// Invoice representa la cabecera de un comprobante.
// Concept se recalcula desde las líneas; ServiceStart/End solo aplican cuando
// el comprobante incluye servicios (por defecto, el mes calendario anterior).
type Invoice struct {
	ID               string
	CompanyID        string
	PartnerID        string
	JournalID        string
	Type             string // ver constantes InvoiceType*
	Number           string
	Date             time.Time
	CurrencyCode     string
	CurrencyDecimals int32
	AmountUntaxed    decimal.Decimal
	AmountTax        decimal.Decimal
	AmountTotal      decimal.Decimal
	Concept          string // código AFIP derivado: "1", "2", "3" o vacío
	ServiceStart     *time.Time
	ServiceEnd       *time.Time
	Status           string // ver constantes InvoiceStatus*
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

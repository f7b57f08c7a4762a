package billing

import (
	"context"

	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción que incluye
// los repos de facturación. Se usa para crear cabecera y líneas de forma
// atómica y para confirmar (número de secuencia + totales + estado).
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		sequenceRepo repository.SequenceRepository,
	) error) error
}

// InvoicePDFGenerator genera el PDF imprimible de un comprobante confirmado.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, data *InvoicePDFData) ([]byte, error)
}

// InvoicePDFData reúne todo lo que necesita la plantilla del comprobante.
type InvoicePDFData struct {
	Invoice       *entity.Invoice
	Company       *entity.Company
	CompanyTaxID  string // CUIT del emisor, del partner de la compañía
	Partner       *entity.Partner
	DocumentClass *entity.DocumentClass // nil si el diario no tiene clase
	Lines         []entity.InvoiceLine
	// DiscriminateVAT indica si la letra del comprobante exige IVA
	// discriminado (Factura A) o precios finales (B/C).
	DiscriminateVAT bool
}

package repository

import "github.com/ejadull/l10n-ar-invoice/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para comprobantes y líneas.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateLine(line *entity.InvoiceLine) error
	GetByID(id string) (*entity.Invoice, error)
	// GetLinesByInvoiceID devuelve las líneas con sus impuestos ya cargados.
	GetLinesByInvoiceID(invoiceID string) ([]entity.InvoiceLine, error)
	// UpdateAmounts actualiza totales, concepto, período de servicio y estado.
	UpdateAmounts(invoice *entity.Invoice) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error)
}

package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest body para POST /api/invoices. El comprobante se crea en
// borrador; los totales y el concepto AFIP se calculan en el servidor.
type CreateInvoiceRequest struct {
	PartnerID    string               `json:"partner_id"`
	JournalID    string               `json:"journal_id"`
	Type         string               `json:"type"` // out_invoice|out_refund|in_invoice|in_refund
	Date         string               `json:"date,omitempty"`
	ServiceStart string               `json:"service_start,omitempty"` // YYYY-MM-DD
	ServiceEnd   string               `json:"service_end,omitempty"`
	Lines        []InvoiceLineRequest `json:"lines"`
}

// InvoiceLineRequest línea de factura. UnitPrice opcional: si va en cero se
// toma el precio de lista del producto.
type InvoiceLineRequest struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price,omitempty"`
	Discount  decimal.Decimal `json:"discount,omitempty"` // porcentaje 0..100
	TaxIDs    []string        `json:"tax_ids,omitempty"`
}

// InvoiceResponse factura con detalle para GET /api/invoices/:id.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	CompanyID     string                `json:"company_id"`
	PartnerID     string                `json:"partner_id"`
	PartnerName   string                `json:"partner_name,omitempty"`
	JournalID     string                `json:"journal_id"`
	Type          string                `json:"type"`
	Number        string                `json:"number,omitempty"`
	Date          string                `json:"date"`
	Status        string                `json:"status"`
	Concept       string                `json:"afip_concept,omitempty"` // 1=productos, 2=servicios, 3=mixto
	ServiceStart  string                `json:"service_start,omitempty"`
	ServiceEnd    string                `json:"service_end,omitempty"`
	AmountUntaxed decimal.Decimal       `json:"amount_untaxed"`
	AmountTax     decimal.Decimal       `json:"amount_tax"`
	AmountTotal   decimal.Decimal       `json:"amount_total"`
	Taxes         []InvoiceTaxResponse  `json:"taxes,omitempty"`
	Lines         []InvoiceLineResponse `json:"lines"`
}

// InvoiceLineResponse línea en la respuesta, con precios de exhibición según
// la letra del comprobante (con o sin IVA discriminado).
type InvoiceLineResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	Name             string          `json:"name"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Discount         decimal.Decimal `json:"discount,omitempty"`
	PriceUnitShown   decimal.Decimal `json:"price_unit_shown"`
	PriceSubtotalShown decimal.Decimal `json:"price_subtotal_shown"`
}

// InvoiceTaxResponse desagregado de impuestos del comprobante.
type InvoiceTaxResponse struct {
	TaxID  string          `json:"tax_id"`
	Name   string          `json:"name"`
	Base   decimal.Decimal `json:"base"`
	Amount decimal.Decimal `json:"amount"`
}

// ConfirmInvoiceResponse resultado de POST /api/invoices/:id/confirm.
type ConfirmInvoiceResponse struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Status string `json:"status"`
}

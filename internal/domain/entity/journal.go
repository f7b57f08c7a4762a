package entity

import "time"

// Tipos de diario contable. La dirección del comprobante mapea a exactamente
// uno de estos tipos (tabla estática, no configurable).
const (
	JournalTypeSale           = "sale"
	JournalTypeSaleRefund     = "sale_refund"
	JournalTypePurchase       = "purchase"
	JournalTypePurchaseRefund = "purchase_refund"
)

// DocumentClass es una clase de comprobante regulatoria (Factura A, Nota de
// Crédito B, ...) con el código numérico que exige la AFIP.
type DocumentClass struct {
	ID       string
	Name     string
	AFIPCode int
}

// JournalClass vincula un diario con su clase de documento. Cada clase de
// diario mapea a exactamente una clase de documento.
type JournalClass struct {
	ID              string
	Name            string
	DocumentClassID string
}

// Journal es un diario contable. Un diario sin secuencia de numeración no
// puede emitir comprobantes y queda fuera de toda resolución de elegibilidad.
type Journal struct {
	ID             string
	CompanyID      string
	Name           string
	Code           string
	Type           string // ver constantes JournalType*
	JournalClassID string
	SequenceID     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

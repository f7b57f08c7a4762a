package entity

import "github.com/shopspring/decimal"

// InvoiceLine representa una línea de un comprobante. ProductKind se copia del
// producto al crear la línea para que el concepto AFIP pueda derivarse sin
// recargar productos. Taxes son los impuestos asociados a la línea, ya cargados.
type InvoiceLine struct {
	ID          string
	InvoiceID   string
	ProductID   string
	ProductKind string // ver constantes ProductKind*
	Name        string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal // porcentaje 0..100
	Taxes       []Tax
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto. Del conjunto de tipos presentes en las líneas de una
// factura se deriva el concepto AFIP (productos / servicios / mixto).
const (
	ProductKindGoods   = "consu"
	ProductKindService = "service"
)

// Product representa un producto o servicio facturable.
type Product struct {
	ID        string
	CompanyID string
	SKU       string // código único por empresa
	Name      string
	Kind      string // ver constantes ProductKind*
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

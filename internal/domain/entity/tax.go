package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxGroupVAT es el grupo de impuestos del IVA. El filtro canónico
// "todos menos el IVA" excluye exactamente los impuestos de este grupo.
const TaxGroupVAT = "IVA"

// Tax es un impuesto porcentual aplicable a una línea de factura
// (IVA 21%, IVA 10.5%, percepciones de IIBB, impuestos internos...).
type Tax struct {
	ID        string
	CompanyID string
	Name      string
	TaxGroup  string          // "IVA", "IIBB", "INTERNOS", ...
	Rate      decimal.Decimal // alícuota como fracción: 0.21 para 21%
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsVAT indica si el impuesto pertenece al grupo IVA.
func (t Tax) IsVAT() bool {
	return t.TaxGroup == TaxGroupVAT
}

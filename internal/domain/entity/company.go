package entity

import "time"

// Company representa una organización emisora de comprobantes.
// PartnerID apunta al partner propio de la compañía: de ahí salen la
// responsabilidad fiscal y el CUIT del emisor. Sin ese partner configurado
// ningún diario es legal (error de configuración, no de negocio).
type Company struct {
	ID               string
	Name             string
	PartnerID        string
	CountryCode      string // ISO 3166-1 alfa-2; las reglas AFIP solo aplican a "AR"
	CurrencyCode     string // ej: "ARS"
	CurrencyDecimals int32  // precisión de redondeo de la moneda
	Address          string
	Phone            string
	Email            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

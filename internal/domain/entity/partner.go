package entity

import "time"

// Partner representa un cliente o proveedor con su perfil fiscal argentino.
// ResponsibilityCode es obligatorio para facturar: sin responsabilidad asignada
// la resolución de diarios y la validación AFIP rechazan la operación.
type Partner struct {
	ID                 string
	CompanyID          string
	Name               string
	TaxID              string // CUIT con prefijo de país (ej: "AR20123456786")
	ResponsibilityCode string // ver pkg/afip: RI, MT, CF, EX, NR
	DocumentTypeCode   string // ver pkg/afip: CUIT, CUIL, DNI, Sigd
	DocumentNumber     string // solo dígitos
	IIBB               string // número de Ingresos Brutos
	StartDate          *time.Time // inicio de actividades
	Email              string
	Phone              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

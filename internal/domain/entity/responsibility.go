package entity

// Responsibility es una categoría de responsabilidad fiscal frente a la AFIP
// (Responsable Inscripto, Monotributo, Consumidor Final, Exento...).
// Es dato de referencia cargado por seed, no se deriva en runtime.
type Responsibility struct {
	ID   string
	Code string // ver pkg/afip.ValidResponsibilityCodes
	Name string
}

// ResponsibilityRelation es una arista dirigida (emisor → receptor → clase de
// documento) que registra qué clase de comprobante puede emitir legalmente una
// responsabilidad a otra. Una clase de documento sin relaciones se considera
// irrestricta: cualquier par emisor/receptor puede usarla.
type ResponsibilityRelation struct {
	ID              string
	DocumentClassID string
	IssuerCode      string
	ReceptorCode    string
}

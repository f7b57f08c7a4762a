// Package afip contiene catálogos y validaciones alineados a la normativa de
// facturación de la AFIP (Argentina): responsabilidades fiscales frente al IVA,
// tipos de documento de identidad y clases de comprobante con su código AFIP.
package afip

// =============================================================================
// Responsabilidades fiscales (condición frente al IVA)
// Toda empresa o partner que participa en facturación debe tener exactamente una.
// =============================================================================

const (
	ResponsibilityRI = "RI" // Responsable Inscripto
	ResponsibilityMT = "MT" // Responsable Monotributo
	ResponsibilityCF = "CF" // Consumidor Final
	ResponsibilityEX = "EX" // Exento
	ResponsibilityNR = "NR" // No Responsable
)

// ValidResponsibilityCodes contiene los códigos de responsabilidad fiscal válidos.
var ValidResponsibilityCodes = map[string]bool{
	ResponsibilityRI: true,
	ResponsibilityMT: true,
	ResponsibilityCF: true,
	ResponsibilityEX: true,
	ResponsibilityNR: true,
}

// =============================================================================
// Tipos de documento de identidad (códigos AFIP de la tabla de documentos)
// =============================================================================

const (
	DocumentTypeCUIT = "CUIT" // Clave Única de Identificación Tributaria (código AFIP 80)
	DocumentTypeCUIL = "CUIL" // Clave Única de Identificación Laboral (código AFIP 86)
	DocumentTypeDNI  = "DNI"  // Documento Nacional de Identidad (código AFIP 96)
	DocumentTypeSigd = "Sigd" // Sin identificar / venta global diaria (código AFIP 99)
)

// DocumentTypeAFIPCodes mapea el código interno del tipo de documento al
// código numérico que usa la AFIP en sus webservices.
var DocumentTypeAFIPCodes = map[string]int{
	DocumentTypeCUIT: 80,
	DocumentTypeCUIL: 86,
	DocumentTypeDNI:  96,
	DocumentTypeSigd: 99,
}

// UndeterminedDocumentTypes son los tipos que NO identifican de forma concreta
// al receptor. Un Consumidor Final con total > $1000 no puede usar ninguno.
var UndeterminedDocumentTypes = map[string]bool{
	"":               true,
	DocumentTypeSigd: true,
}

// =============================================================================
// Clases de comprobante (código AFIP por clase de documento)
// Cada diario contable lleva una clase de diario que referencia exactamente
// una clase de documento; el código numérico es el que exige la AFIP.
// =============================================================================

const (
	ClassFacturaA    = 1
	ClassNotaDebitoA = 2
	ClassNotaCreditoA = 3
	ClassFacturaB    = 6
	ClassNotaDebitoB = 7
	ClassNotaCreditoB = 8
	ClassFacturaC    = 11
	ClassNotaDebitoC = 12
	ClassNotaCreditoC = 13
	ClassFacturaE    = 19
	ClassNotaDebitoE = 20
	ClassNotaCreditoE = 21
	ClassFacturaM    = 51
	ClassNotaDebitoM = 52
	ClassNotaCreditoM = 53
)

// OutInvoiceClassCodes son los códigos AFIP admitidos para el diario de una
// factura de venta (facturas y notas de débito A, B, C, M y E).
var OutInvoiceClassCodes = map[int]bool{
	ClassFacturaA: true, ClassFacturaB: true, ClassFacturaC: true,
	ClassFacturaM: true, ClassFacturaE: true,
	ClassNotaDebitoA: true, ClassNotaDebitoB: true, ClassNotaDebitoC: true,
	ClassNotaDebitoM: true, ClassNotaDebitoE: true,
}

// OutRefundClassCodes son los códigos AFIP admitidos para el diario de una
// nota de crédito de venta (notas de crédito A, B, C, M y E).
var OutRefundClassCodes = map[int]bool{
	ClassNotaCreditoA: true, ClassNotaCreditoB: true, ClassNotaCreditoC: true,
	ClassNotaCreditoM: true, ClassNotaCreditoE: true,
}

// =============================================================================
// Conceptos de comprobante (productos / servicios / ambos)
// =============================================================================

const (
	ConceptGoods        = "1" // Productos
	ConceptServices     = "2" // Servicios
	ConceptMixed        = "3" // Productos y servicios
	ConceptUndetermined = ""  // Sin determinar: rechazar antes de informar a AFIP
)

// FinalConsumerIdentificationThreshold es el total de factura a partir del cual
// un Consumidor Final debe estar identificado con documento concreto (RG AFIP).
const FinalConsumerIdentificationThreshold = 1000

// IssuerCountryCode país del emisor al que aplican estas reglas. Facturas de
// compañías de otros países pasan la validación sin evaluarse.
const IssuerCountryCode = "AR"

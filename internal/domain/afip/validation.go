package afip

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
	"github.com/ejadull/l10n-ar-invoice/pkg/afip"
)

// ComplianceReason identifica la regla AFIP que rechazó la confirmación.
type ComplianceReason string

const (
	ReasonWrongJournalClass                    ComplianceReason = "WRONG_JOURNAL_CLASS"
	ReasonMissingResponsibility                ComplianceReason = "MISSING_RESPONSIBILITY"
	ReasonIssuerNotAuthorized                  ComplianceReason = "ISSUER_NOT_AUTHORIZED"
	ReasonReceptorNotAuthorized                ComplianceReason = "RECEPTOR_NOT_AUTHORIZED"
	ReasonIdentificationRequiredAboveThreshold ComplianceReason = "IDENTIFICATION_REQUIRED_ABOVE_THRESHOLD"
)

// ComplianceError es un rechazo determinístico de una regla de negocio AFIP.
// No es transitorio: reintentarlo sin corregir los datos volverá a fallar.
type ComplianceError struct {
	Reason  ComplianceReason
	Message string
}

func (e *ComplianceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

// ConfigurationError indica configuración faltante del emisor (compañía sin
// partner o sin responsabilidad): ningún diario puede ser legal sin eso.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "configuración: " + e.Message
}

// ConfirmationInput reúne los datos ya cargados que evalúan las reglas de
// confirmación. Relations son las relaciones de responsabilidad de la clase
// de documento del diario del comprobante.
type ConfirmationInput struct {
	CompanyCountryCode         string
	InvoiceType                string
	AmountTotal                decimal.Decimal
	JournalClassAFIPCode       int
	DocumentClassID            string
	IssuerResponsibilityCode   string
	ReceptorResponsibilityCode string
	ReceptorDocumentTypeCode   string
	ReceptorDocumentNumber     string
	Relations                  []entity.ResponsibilityRelation
}

// ValidateForConfirmation ejecuta, en orden y con corte en el primer fallo,
// las comprobaciones AFIP previas a confirmar un comprobante. Si el emisor no
// es argentino la validación pasa sin evaluarse. Todas las comprobaciones son
// lecturas puras sobre datos ya cargados; ninguna muta estado.
func ValidateForConfirmation(in ConfirmationInput) error {
	if in.CompanyCountryCode != afip.IssuerCountryCode {
		return nil
	}

	// 1. La clase del diario debe corresponder a la dirección del comprobante.
	switch in.InvoiceType {
	case entity.InvoiceTypeOutInvoice:
		if !afip.OutInvoiceClassCodes[in.JournalClassAFIPCode] {
			return &ComplianceError{
				Reason:  ReasonWrongJournalClass,
				Message: "el diario de una factura de venta debe tener una clase de comprobante válida (factura o nota de débito)",
			}
		}
	case entity.InvoiceTypeOutRefund:
		if !afip.OutRefundClassCodes[in.JournalClassAFIPCode] {
			return &ComplianceError{
				Reason:  ReasonWrongJournalClass,
				Message: "el diario de una nota de crédito de venta debe tener una clase de comprobante válida (nota de crédito)",
			}
		}
	}

	// 2. El receptor debe tener responsabilidad fiscal asignada.
	if in.ReceptorResponsibilityCode == "" {
		return &ComplianceError{
			Reason:  ReasonMissingResponsibility,
			Message: "el partner no tiene responsabilidad AFIP asignada; asígnele una antes de confirmar",
		}
	}

	// 3. El emisor debe poder emitir esta clase de documento.
	if !relationExists(in.Relations, in.DocumentClassID, func(r entity.ResponsibilityRelation) bool {
		return r.IssuerCode == in.IssuerResponsibilityCode
	}) {
		return &ComplianceError{
			Reason:  ReasonIssuerNotAuthorized,
			Message: "su responsabilidad frente a la AFIP no le permite emitir esta clase de comprobante",
		}
	}

	// 4. El receptor debe poder recibir esta clase de documento.
	if !relationExists(in.Relations, in.DocumentClassID, func(r entity.ResponsibilityRelation) bool {
		return r.ReceptorCode == in.ReceptorResponsibilityCode
	}) {
		return &ComplianceError{
			Reason:  ReasonReceptorNotAuthorized,
			Message: "el partner no puede recibir esta clase de comprobante; revise su responsabilidad AFIP o el diario del comprobante",
		}
	}

	// 5. Consumidor Final por más de $1000 requiere identificación concreta.
	threshold := decimal.NewFromInt(afip.FinalConsumerIdentificationThreshold)
	if in.ReceptorResponsibilityCode == afip.ResponsibilityCF && in.AmountTotal.GreaterThan(threshold) &&
		(afip.UndeterminedDocumentTypes[in.ReceptorDocumentTypeCode] || in.ReceptorDocumentNumber == "") {
		return &ComplianceError{
			Reason:  ReasonIdentificationRequiredAboveThreshold,
			Message: "debe definir tipo y número de documento válidos para un Consumidor Final con total mayor a $1000",
		}
	}

	return nil
}

func relationExists(relations []entity.ResponsibilityRelation, documentClassID string, match func(entity.ResponsibilityRelation) bool) bool {
	for _, r := range relations {
		if r.DocumentClassID == documentClassID && match(r) {
			return true
		}
	}
	return false
}

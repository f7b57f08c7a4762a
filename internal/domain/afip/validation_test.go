package afip_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejadull/l10n-ar-invoice/internal/domain/afip"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
	pkgafip "github.com/ejadull/l10n-ar-invoice/pkg/afip"
)

// entradaValida arma una confirmación que pasa las cinco comprobaciones:
// factura de venta clase Factura B, emisor RI, receptor CF identificado.
func entradaValida() afip.ConfirmationInput {
	return afip.ConfirmationInput{
		CompanyCountryCode:         "AR",
		InvoiceType:                entity.InvoiceTypeOutInvoice,
		AmountTotal:                decimal.RequireFromString("500"),
		JournalClassAFIPCode:       pkgafip.ClassFacturaB,
		DocumentClassID:            "dc-factura-b",
		IssuerResponsibilityCode:   pkgafip.ResponsibilityRI,
		ReceptorResponsibilityCode: pkgafip.ResponsibilityCF,
		ReceptorDocumentTypeCode:   pkgafip.DocumentTypeDNI,
		ReceptorDocumentNumber:     "12345678",
		Relations: []entity.ResponsibilityRelation{
			{ID: "r1", DocumentClassID: "dc-factura-b", IssuerCode: pkgafip.ResponsibilityRI, ReceptorCode: pkgafip.ResponsibilityCF},
		},
	}
}

func razonDe(t *testing.T, err error) afip.ComplianceReason {
	t.Helper()
	var ce *afip.ComplianceError
	require.ErrorAs(t, err, &ce)
	return ce.Reason
}

func TestValidateForConfirmation_EntradaValida_Pasa(t *testing.T) {
	assert.NoError(t, afip.ValidateForConfirmation(entradaValida()))
}

// Emisor fuera de Argentina: las reglas no se evalúan en absoluto.
func TestValidateForConfirmation_EmisorNoArgentino_PasaSinEvaluar(t *testing.T) {
	in := entradaValida()
	in.CompanyCountryCode = "UY"
	in.ReceptorResponsibilityCode = "" // rompería la comprobación 2 si se evaluara

	assert.NoError(t, afip.ValidateForConfirmation(in))
}

func TestValidateForConfirmation_FacturaConClaseDeNotaDeCredito(t *testing.T) {
	in := entradaValida()
	in.JournalClassAFIPCode = pkgafip.ClassNotaCreditoB

	assert.Equal(t, afip.ReasonWrongJournalClass, razonDe(t, afip.ValidateForConfirmation(in)))
}

func TestValidateForConfirmation_NotaDeCreditoConClaseDeFactura(t *testing.T) {
	in := entradaValida()
	in.InvoiceType = entity.InvoiceTypeOutRefund
	in.JournalClassAFIPCode = pkgafip.ClassFacturaB

	assert.Equal(t, afip.ReasonWrongJournalClass, razonDe(t, afip.ValidateForConfirmation(in)))
}

func TestValidateForConfirmation_NotaDeCreditoValida(t *testing.T) {
	in := entradaValida()
	in.InvoiceType = entity.InvoiceTypeOutRefund
	in.JournalClassAFIPCode = pkgafip.ClassNotaCreditoB

	assert.NoError(t, afip.ValidateForConfirmation(in))
}

func TestValidateForConfirmation_ReceptorSinResponsabilidad(t *testing.T) {
	in := entradaValida()
	in.ReceptorResponsibilityCode = ""

	assert.Equal(t, afip.ReasonMissingResponsibility, razonDe(t, afip.ValidateForConfirmation(in)))
}

func TestValidateForConfirmation_EmisorNoAutorizado(t *testing.T) {
	in := entradaValida()
	in.IssuerResponsibilityCode = pkgafip.ResponsibilityMT // ninguna relación lo nombra como emisor

	assert.Equal(t, afip.ReasonIssuerNotAuthorized, razonDe(t, afip.ValidateForConfirmation(in)))
}

func TestValidateForConfirmation_ReceptorNoAutorizado(t *testing.T) {
	in := entradaValida()
	in.ReceptorResponsibilityCode = pkgafip.ResponsibilityEX

	assert.Equal(t, afip.ReasonReceptorNotAuthorized, razonDe(t, afip.ValidateForConfirmation(in)))
}

// Las relaciones de otra clase de documento no autorizan esta.
func TestValidateForConfirmation_RelacionDeOtraClaseNoAplica(t *testing.T) {
	in := entradaValida()
	in.Relations[0].DocumentClassID = "dc-otra-clase"

	assert.Equal(t, afip.ReasonIssuerNotAuthorized, razonDe(t, afip.ValidateForConfirmation(in)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla del Consumidor Final: total > $1000 exige identificación concreta.
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateForConfirmation_CFSobreUmbralSinIdentificar(t *testing.T) {
	in := entradaValida()
	in.AmountTotal = decimal.RequireFromString("1500")
	in.ReceptorDocumentTypeCode = pkgafip.DocumentTypeSigd

	assert.Equal(t, afip.ReasonIdentificationRequiredAboveThreshold, razonDe(t, afip.ValidateForConfirmation(in)))
}

func TestValidateForConfirmation_CFBajoUmbralSinIdentificar_Pasa(t *testing.T) {
	in := entradaValida()
	in.AmountTotal = decimal.RequireFromString("900")
	in.ReceptorDocumentTypeCode = pkgafip.DocumentTypeSigd

	assert.NoError(t, afip.ValidateForConfirmation(in))
}

func TestValidateForConfirmation_CFSobreUmbralIdentificado_Pasa(t *testing.T) {
	in := entradaValida()
	in.AmountTotal = decimal.RequireFromString("1500")

	assert.NoError(t, afip.ValidateForConfirmation(in))
}

func TestValidateForConfirmation_CFSobreUmbralSinNumero(t *testing.T) {
	in := entradaValida()
	in.AmountTotal = decimal.RequireFromString("1500")
	in.ReceptorDocumentNumber = ""

	assert.Equal(t, afip.ReasonIdentificationRequiredAboveThreshold, razonDe(t, afip.ValidateForConfirmation(in)))
}

// El umbral es estricto: exactamente $1000 no dispara la regla.
func TestValidateForConfirmation_CFEnElUmbralExacto_Pasa(t *testing.T) {
	in := entradaValida()
	in.AmountTotal = decimal.RequireFromString("1000")
	in.ReceptorDocumentTypeCode = pkgafip.DocumentTypeSigd

	assert.NoError(t, afip.ValidateForConfirmation(in))
}

// Las comprobaciones cortan en el primer fallo: con diario y responsabilidad
// inválidos a la vez, el motivo reportado es el del diario.
func TestValidateForConfirmation_CortaEnElPrimerFallo(t *testing.T) {
	in := entradaValida()
	in.JournalClassAFIPCode = 0
	in.ReceptorResponsibilityCode = ""

	assert.Equal(t, afip.ReasonWrongJournalClass, razonDe(t, afip.ValidateForConfirmation(in)))
}

func TestComplianceError_MensajeIncluyeMotivo(t *testing.T) {
	err := afip.ValidateForConfirmation(func() afip.ConfirmationInput {
		in := entradaValida()
		in.ReceptorResponsibilityCode = ""
		return in
	}())
	require.Error(t, err)
	assert.Contains(t, err.Error(), string(afip.ReasonMissingResponsibility))

	var ce *afip.ComplianceError
	assert.True(t, errors.As(err, &ce))
}

package afip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejadull/l10n-ar-invoice/internal/domain/afip"
	pkgafip "github.com/ejadull/l10n-ar-invoice/pkg/afip"
)

// Escenario base: un diario de venta irrestricto (su clase de documento no
// tiene relaciones) y otro restringido al par (RI emisor, CF receptor).

func ventaIrrestricta() afip.JournalCandidate {
	return afip.JournalCandidate{
		JournalID:       "j-venta-b",
		JournalName:     "Ventas Factura B",
		NumberNext:      5,
		DocumentClassID: "dc-factura-b",
	}
}

func ventaRestringidaRIaCF() afip.JournalCandidate {
	return afip.JournalCandidate{
		JournalID:            "j-venta-a",
		JournalName:          "Ventas Factura A",
		NumberNext:           12,
		DocumentClassID:      "dc-factura-a",
		RelationIssuerCode:   pkgafip.ResponsibilityRI,
		RelationReceptorCode: pkgafip.ResponsibilityCF,
	}
}

func TestFilterEligibleJournals_ParNoAutorizado_SoloIrrestricto(t *testing.T) {
	rows := []afip.JournalCandidate{ventaIrrestricta(), ventaRestringidaRIaCF()}

	result := afip.FilterEligibleJournals(rows, pkgafip.ResponsibilityRI, pkgafip.ResponsibilityMT)

	require.Len(t, result, 1)
	assert.Equal(t, "j-venta-b", result[0].ID, "solo el diario irrestricto aplica al par (RI, MT)")
}

func TestFilterEligibleJournals_ParAutorizado_AmbosOrdenadosPorSecuencia(t *testing.T) {
	rows := []afip.JournalCandidate{ventaIrrestricta(), ventaRestringidaRIaCF()}

	result := afip.FilterEligibleJournals(rows, pkgafip.ResponsibilityRI, pkgafip.ResponsibilityCF)

	require.Len(t, result, 2)
	assert.Equal(t, "j-venta-a", result[0].ID, "mayor próximo número de secuencia primero")
	assert.Equal(t, "j-venta-b", result[1].ID)
}

// Un diario con varias relaciones es elegible si alguna nombra al par exacto.
func TestFilterEligibleJournals_VariasRelaciones_AlcanzaConUnMatch(t *testing.T) {
	rows := []afip.JournalCandidate{
		{
			JournalID: "j1", JournalName: "Ventas A", NumberNext: 3, DocumentClassID: "dc-a",
			RelationIssuerCode: pkgafip.ResponsibilityRI, RelationReceptorCode: pkgafip.ResponsibilityRI,
		},
		{
			JournalID: "j1", JournalName: "Ventas A", NumberNext: 3, DocumentClassID: "dc-a",
			RelationIssuerCode: pkgafip.ResponsibilityRI, RelationReceptorCode: pkgafip.ResponsibilityMT,
		},
	}

	result := afip.FilterEligibleJournals(rows, pkgafip.ResponsibilityRI, pkgafip.ResponsibilityMT)
	require.Len(t, result, 1)

	// El mismo diario no es elegible para un par que ninguna relación nombra.
	result = afip.FilterEligibleJournals(rows, pkgafip.ResponsibilityMT, pkgafip.ResponsibilityCF)
	assert.Empty(t, result)
}

// Configuración incompleta (diario sin clase de documento) se excluye en
// silencio: no es un error, pero tampoco habilita comprobantes.
func TestFilterEligibleJournals_SinClaseDeDocumento_Excluido(t *testing.T) {
	rows := []afip.JournalCandidate{
		{JournalID: "j-roto", JournalName: "Diario sin clase", NumberNext: 99},
		ventaIrrestricta(),
	}

	result := afip.FilterEligibleJournals(rows, pkgafip.ResponsibilityRI, pkgafip.ResponsibilityCF)

	require.Len(t, result, 1)
	assert.Equal(t, "j-venta-b", result[0].ID)
}

func TestFilterEligibleJournals_EmpateDeSecuencia_DesempataPorID(t *testing.T) {
	rows := []afip.JournalCandidate{
		{JournalID: "j-zz", JournalName: "Z", NumberNext: 7, DocumentClassID: "dc-1"},
		{JournalID: "j-aa", JournalName: "A", NumberNext: 7, DocumentClassID: "dc-2"},
	}

	result := afip.FilterEligibleJournals(rows, pkgafip.ResponsibilityRI, pkgafip.ResponsibilityCF)

	require.Len(t, result, 2)
	assert.Equal(t, "j-aa", result[0].ID, "a igual secuencia, ID ascendente para determinismo")
	assert.Equal(t, "j-zz", result[1].ID)
}

func TestFilterEligibleJournals_SinCandidatos(t *testing.T) {
	assert.Empty(t, afip.FilterEligibleJournals(nil, pkgafip.ResponsibilityRI, pkgafip.ResponsibilityCF),
		"lista vacía no es error: el caller bloquea la creación del comprobante")
}

package afip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ejadull/l10n-ar-invoice/pkg/afip"
)

// SuggestDocument nunca bloquea: siempre devuelve valores sugeridos y, a lo
// sumo, una advertencia. Es el reemplazo puro del on-change del formulario.

func TestSuggestDocument_CUITValido_SinAdvertencia(t *testing.T) {
	s := afip.SuggestDocument("", afip.DocumentTypeCUIT, "20-12345678-6")

	assert.Equal(t, "20123456786", s.DocumentNumber, "debe limpiar los caracteres de formato")
	assert.Equal(t, "AR20123456786", s.TaxID, "debe completar el tax ID con prefijo de país")
	assert.Empty(t, s.Warning)
}

func TestSuggestDocument_CUITInvalido_AdvierteSinBloquear(t *testing.T) {
	s := afip.SuggestDocument("", afip.DocumentTypeCUIT, "20123456780")

	assert.Equal(t, "20123456780", s.DocumentNumber, "el número limpio se sugiere aunque el checksum falle")
	assert.NotEmpty(t, s.Warning, "un CUIT inválido produce advertencia, nunca error")
}

func TestSuggestDocument_TaxIDExistente_NoSePisa(t *testing.T) {
	s := afip.SuggestDocument("AR20123456786", afip.DocumentTypeCUIT, "20123456786")
	assert.Empty(t, s.TaxID, "si el tax ID ya está definido no se sugiere otro")
}

func TestSuggestDocument_TipoNoCUIT_SinSugerencias(t *testing.T) {
	s := afip.SuggestDocument("", afip.DocumentTypeDNI, "12.345.678")
	assert.Empty(t, s.DocumentNumber)
	assert.Empty(t, s.TaxID)
	assert.Empty(t, s.Warning)
}

func TestSuggestDocument_NumeroVacio(t *testing.T) {
	s := afip.SuggestDocument("", afip.DocumentTypeCUIT, "")
	assert.Equal(t, afip.DocumentSuggestion{}, s)
}

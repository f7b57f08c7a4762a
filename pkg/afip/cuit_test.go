package afip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejadull/l10n-ar-invoice/pkg/afip"
)

// ──────────────────────────────────────────────────────────────────────────────
// Validación del dígito verificador del CUIT (módulo 11, pesos 5432765432).
// Vector base: 20-12345678-? → suma = 148, 148 mod 11 = 5, dígito = 11-5 = 6.
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateCUIT_NumeroValido(t *testing.T) {
	assert.NoError(t, afip.ValidateCUIT("20123456786"))
}

func TestValidateCUIT_DigitoVerificadorIncorrecto(t *testing.T) {
	err := afip.ValidateCUIT("20123456780")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dígito verificador")
}

func TestValidateCUIT_AceptaGuionesYPuntos(t *testing.T) {
	assert.NoError(t, afip.ValidateCUIT("20-12345678-6"))
	assert.NoError(t, afip.ValidateCUIT("20.12345678.6"))
}

func TestValidateCUIT_LongitudIncorrecta(t *testing.T) {
	assert.Error(t, afip.ValidateCUIT("2012345678"), "10 dígitos no es un CUIT")
	assert.Error(t, afip.ValidateCUIT(""), "vacío no es un CUIT")
}

func TestComputeCUITCheckDigit(t *testing.T) {
	d, err := afip.ComputeCUITCheckDigit("2012345678")
	require.NoError(t, err)
	assert.Equal(t, byte('6'), d)
}

func TestComputeCUITCheckDigit_PocosDigitos(t *testing.T) {
	_, err := afip.ComputeCUITCheckDigit("123")
	assert.Error(t, err)
}

func TestNormalizeDigits(t *testing.T) {
	assert.Equal(t, "20123456786", afip.NormalizeDigits("CUIT 20-12345678/6"))
	assert.Equal(t, "", afip.NormalizeDigits("sin dígitos"))
}

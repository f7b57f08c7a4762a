package afip

import (
	"fmt"
	"unicode"
)

// pesos para el cálculo del dígito verificador del CUIT (módulo 11, AFIP).
// Se aplican a los 10 primeros dígitos, de izquierda a derecha.
var cuitWeights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// NormalizeDigits devuelve solo los dígitos de s ("20-12345678-6" -> "20123456786").
func NormalizeDigits(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return string(out)
}

// ValidateCUIT valida que el CUIT (con o sin guiones/puntos) tenga 11 dígitos y
// dígito verificador correcto según el algoritmo módulo 11 de la AFIP.
// Los prefijos 20/23/24/27 corresponden a personas físicas y 30/33/34 a
// personas jurídicas; el algoritmo es el mismo para ambos.
func ValidateCUIT(cuit string) error {
	digits := NormalizeDigits(cuit)
	if len(digits) != 11 {
		return fmt.Errorf("afip: CUIT debe tener 11 dígitos, se encontraron %d", len(digits))
	}
	expected := cuitCheckDigit(digits)
	if digits[10] != expected {
		return fmt.Errorf("afip: dígito verificador del CUIT inválido: esperado %c, recibido %c", expected, digits[10])
	}
	return nil
}

// ComputeCUITCheckDigit calcula el dígito verificador para los 10 primeros
// dígitos del CUIT. Útil para completar un CUIT antes de informarlo a la AFIP.
func ComputeCUITCheckDigit(cuit string) (byte, error) {
	digits := NormalizeDigits(cuit)
	if len(digits) < 10 {
		return 0, fmt.Errorf("afip: se requieren al menos 10 dígitos para calcular el dígito verificador, se encontraron %d", len(digits))
	}
	return cuitCheckDigit(digits), nil
}

func cuitCheckDigit(digits string) byte {
	var sum int
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * cuitWeights[i]
	}
	check := 11 - sum%11
	switch check {
	case 11:
		check = 0
	case 10:
		check = 9
	}
	return byte('0' + check)
}

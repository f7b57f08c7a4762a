package afip

// DocumentSuggestion es el resultado de revisar los campos de identidad de un
// partner al editarlos: valores sugeridos más una advertencia no bloqueante.
type DocumentSuggestion struct {
	TaxID          string // CUIT con prefijo de país (ej: "AR20123456786"); vacío = sin cambio
	DocumentNumber string // número limpio (solo dígitos); vacío = sin cambio
	Warning        string // advertencia para el usuario; vacío = sin advertencia
}

// SuggestDocument normaliza el número de documento cuando el tipo es CUIT y
// valida su dígito verificador. Un CUIT mal formado produce una advertencia
// pero nunca un error: el valor limpio se sugiere igual y el flujo continúa.
// Si taxID está vacío se propone completarlo con el prefijo de país.
func SuggestDocument(taxID, documentTypeCode, documentNumber string) DocumentSuggestion {
	var s DocumentSuggestion
	if documentTypeCode != DocumentTypeCUIT || documentNumber == "" {
		return s
	}
	clean := NormalizeDigits(documentNumber)
	s.DocumentNumber = clean
	if err := ValidateCUIT(clean); err != nil {
		s.Warning = "El CUIT ingresado no es válido. Verifique el número antes de continuar."
	}
	if taxID == "" {
		s.TaxID = "AR" + clean
	}
	return s
}

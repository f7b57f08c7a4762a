package dto

// CreatePartnerRequest body para POST /api/partners.
type CreatePartnerRequest struct {
	Name               string `json:"name"`
	TaxID              string `json:"tax_id,omitempty"`
	ResponsibilityCode string `json:"responsibility_code"`
	DocumentTypeCode   string `json:"document_type_code,omitempty"`
	DocumentNumber     string `json:"document_number,omitempty"`
	IIBB               string `json:"iibb,omitempty"`
	StartDate          string `json:"start_date,omitempty"` // YYYY-MM-DD, inicio de actividades
	Email              string `json:"email,omitempty"`
	Phone              string `json:"phone,omitempty"`
}

// UpdatePartnerRequest body para PUT /api/partners/:id. Campos vacíos no se tocan,
// salvo document_number que sí se normaliza siempre que venga.
type UpdatePartnerRequest struct {
	Name               string `json:"name,omitempty"`
	TaxID              string `json:"tax_id,omitempty"`
	ResponsibilityCode string `json:"responsibility_code,omitempty"`
	DocumentTypeCode   string `json:"document_type_code,omitempty"`
	DocumentNumber     string `json:"document_number,omitempty"`
	IIBB               string `json:"iibb,omitempty"`
	StartDate          string `json:"start_date,omitempty"`
	Email              string `json:"email,omitempty"`
	Phone              string `json:"phone,omitempty"`
}

// PartnerResponse partner en respuestas. Warning trae la observación del
// verificador de CUIT cuando el dígito no cierra (no bloquea el guardado).
type PartnerResponse struct {
	ID                 string `json:"id"`
	CompanyID          string `json:"company_id"`
	Name               string `json:"name"`
	TaxID              string `json:"tax_id,omitempty"`
	ResponsibilityCode string `json:"responsibility_code,omitempty"`
	DocumentTypeCode   string `json:"document_type_code,omitempty"`
	DocumentNumber     string `json:"document_number,omitempty"`
	IIBB               string `json:"iibb,omitempty"`
	StartDate          string `json:"start_date,omitempty"`
	Email              string `json:"email,omitempty"`
	Phone              string `json:"phone,omitempty"`
	Warning            string `json:"warning,omitempty"`
}

// ValidateDocumentRequest body para POST /api/partners/validate-document.
type ValidateDocumentRequest struct {
	TaxID            string `json:"tax_id,omitempty"`
	DocumentTypeCode string `json:"document_type_code,omitempty"`
	DocumentNumber   string `json:"document_number"`
}

// ValidateDocumentResponse resultado de la normalización del documento.
type ValidateDocumentResponse struct {
	TaxID          string `json:"tax_id,omitempty"`
	DocumentNumber string `json:"document_number"`
	Warning        string `json:"warning,omitempty"`
}

package dto

// CreateCompanyRequest body para POST /api/companies.
type CreateCompanyRequest struct {
	Name             string `json:"name"`
	PartnerID        string `json:"partner_id,omitempty"`
	CountryCode      string `json:"country_code,omitempty"`  // default "AR"
	CurrencyCode     string `json:"currency_code,omitempty"` // default "ARS"
	CurrencyDecimals int32  `json:"currency_decimals,omitempty"`
	Address          string `json:"address,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Email            string `json:"email,omitempty"`
}

// CompanyResponse compañía en respuestas.
type CompanyResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	PartnerID        string `json:"partner_id,omitempty"`
	CountryCode      string `json:"country_code"`
	CurrencyCode     string `json:"currency_code"`
	CurrencyDecimals int32  `json:"currency_decimals"`
	Address          string `json:"address,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Email            string `json:"email,omitempty"`
}

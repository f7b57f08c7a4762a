package dto

// EligibleJournalsRequest query para GET /api/journals/eligible.
type EligibleJournalsRequest struct {
	PartnerID   string `query:"partner_id"`
	InvoiceType string `query:"invoice_type"`
}

// JournalOptionResponse diario habilitado para el par emisor/receptor. El
// primero de la lista es el sugerido (mayor number_next).
type JournalOptionResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	NumberNext int64  `json:"number_next"`
}

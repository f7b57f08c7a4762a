package afip

import "sort"

// JournalTypesForInvoiceType mapea la dirección del comprobante al tipo de
// diario que puede emitirlo. Tabla estática, no configurable.
var JournalTypesForInvoiceType = map[string][]string{
	"out_invoice": {"sale"},
	"out_refund":  {"sale_refund"},
	"in_invoice":  {"purchase"},
	"in_refund":   {"purchase_refund"},
}

// JournalCandidate es una fila del join diario → secuencia → clase de diario →
// clase de documento → relación de responsabilidad. Un diario con varias
// relaciones aparece en varias filas; los campos Relation* quedan vacíos
// cuando la clase de documento no tiene ninguna relación (clase irrestricta).
type JournalCandidate struct {
	JournalID            string
	JournalName          string
	NumberNext           int64
	DocumentClassID      string
	RelationIssuerCode   string
	RelationReceptorCode string
}

// EligibleJournal es un diario habilitado para el par emisor/receptor, con el
// próximo número de su secuencia.
type EligibleJournal struct {
	ID         string
	Name       string
	NumberNext int64
}

// FilterEligibleJournals aplica el predicado de elegibilidad sobre las filas
// candidatas: un diario es elegible si su clase de documento no tiene ninguna
// relación de responsabilidad (irrestricta) o si alguna relación nombra
// exactamente al par (emisor, receptor). Un diario sin clase de documento se
// excluye en silencio: configuración incompleta no habilita comprobantes.
// El resultado se ordena por próximo número de secuencia descendente (el
// diario más usado primero) con desempate por ID ascendente.
func FilterEligibleJournals(rows []JournalCandidate, issuerCode, receptorCode string) []EligibleJournal {
	type state struct {
		journal      EligibleJournal
		restricted   bool
		matched      bool
		missingClass bool
	}
	byID := make(map[string]*state)
	order := make([]string, 0, len(rows))

	for _, row := range rows {
		st, ok := byID[row.JournalID]
		if !ok {
			st = &state{journal: EligibleJournal{ID: row.JournalID, Name: row.JournalName, NumberNext: row.NumberNext}}
			byID[row.JournalID] = st
			order = append(order, row.JournalID)
		}
		if row.DocumentClassID == "" {
			st.missingClass = true
			continue
		}
		if row.RelationIssuerCode == "" && row.RelationReceptorCode == "" {
			continue // clase sin relaciones: irrestricta
		}
		st.restricted = true
		if row.RelationIssuerCode == issuerCode && row.RelationReceptorCode == receptorCode {
			st.matched = true
		}
	}

	result := make([]EligibleJournal, 0, len(order))
	for _, id := range order {
		st := byID[id]
		if st.missingClass {
			continue
		}
		if !st.restricted || st.matched {
			result = append(result, st.journal)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].NumberNext != result[j].NumberNext {
			return result[i].NumberNext > result[j].NumberNext
		}
		return result[i].ID < result[j].ID
	})
	return result
}

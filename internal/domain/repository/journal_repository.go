package repository

import (
	"github.com/ejadull/l10n-ar-invoice/internal/domain/afip"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
)

// JournalRepository define el puerto de persistencia para diarios contables y
// sus clases de comprobante.
type JournalRepository interface {
	GetByID(id string) (*entity.Journal, error)
	// GetDocumentClassByJournal devuelve la clase de documento del diario vía su
	// clase de diario; nil si el mapeo está incompleto (configuración rota).
	GetDocumentClassByJournal(journalID string) (*entity.DocumentClass, error)
	// ListEligibilityCandidates devuelve las filas del join diario → secuencia →
	// clase de diario → clase de documento → relación de responsabilidad para
	// los tipos de diario dados, excluyendo diarios sin secuencia de numeración.
	// El predicado de elegibilidad se aplica en dominio (afip.FilterEligibleJournals).
	ListEligibilityCandidates(companyID string, journalTypes []string) ([]afip.JournalCandidate, error)
}

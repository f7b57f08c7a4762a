package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ejadull/l10n-ar-invoice/internal/domain/afip"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/repository"
)

var _ repository.JournalRepository = (*JournalRepo)(nil)

// JournalRepo implementación de JournalRepository (usable con pool o tx).
type JournalRepo struct {
	q Querier
}

// NewJournalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewJournalRepository(q Querier) *JournalRepo {
	return &JournalRepo{q: q}
}

// GetByID obtiene un diario por ID.
func (r *JournalRepo) GetByID(id string) (*entity.Journal, error) {
	query := `
		SELECT id, company_id, name, code, type, journal_class_id, sequence_id, created_at, updated_at
		FROM journals WHERE id = $1`
	var j entity.Journal
	var classID, seqID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&j.ID, &j.CompanyID, &j.Name, &j.Code, &j.Type, &classID, &seqID, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get journal: %w", err)
	}
	j.JournalClassID = deref(classID)
	j.SequenceID = deref(seqID)
	return &j, nil
}

// GetDocumentClassByJournal resuelve la clase de documento del diario vía su
// clase de diario. Devuelve nil sin error si el mapeo está incompleto.
func (r *JournalRepo) GetDocumentClassByJournal(journalID string) (*entity.DocumentClass, error) {
	query := `
		SELECT dc.id, dc.name, dc.afip_code
		FROM journals j
		JOIN journal_classes jc ON jc.id = j.journal_class_id
		JOIN document_classes dc ON dc.id = jc.document_class_id
		WHERE j.id = $1`
	var dc entity.DocumentClass
	err := r.q.QueryRow(context.Background(), query, journalID).Scan(&dc.ID, &dc.Name, &dc.AFIPCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document class by journal: %w", err)
	}
	return &dc, nil
}

// ListEligibilityCandidates trae las filas del join diario → secuencia → clase
// de diario → clase de documento → relación de responsabilidad para los tipos
// dados. Los joins de clase y relación son LEFT: el predicado (clase faltante,
// clase irrestricta, par exacto) se decide en dominio. Los diarios sin
// secuencia quedan afuera acá: sin numeración no hay comprobante.
func (r *JournalRepo) ListEligibilityCandidates(companyID string, journalTypes []string) ([]afip.JournalCandidate, error) {
	query := `
		SELECT j.id, j.name, s.number_next,
		       COALESCE(dc.id::text, ''), COALESCE(rr.issuer_code, ''), COALESCE(rr.receptor_code, '')
		FROM journals j
		JOIN sequences s ON s.id = j.sequence_id
		LEFT JOIN journal_classes jc ON jc.id = j.journal_class_id
		LEFT JOIN document_classes dc ON dc.id = jc.document_class_id
		LEFT JOIN responsibility_relations rr ON rr.document_class_id = dc.id
		WHERE j.company_id = $1 AND j.type = ANY($2)
		ORDER BY s.number_next DESC, j.id`
	rows, err := r.q.Query(context.Background(), query, companyID, journalTypes)
	if err != nil {
		return nil, fmt.Errorf("list journal candidates: %w", err)
	}
	defer rows.Close()
	var list []afip.JournalCandidate
	for rows.Next() {
		var c afip.JournalCandidate
		if err := rows.Scan(
			&c.JournalID, &c.JournalName, &c.NumberNext,
			&c.DocumentClassID, &c.RelationIssuerCode, &c.RelationReceptorCode,
		); err != nil {
			return nil, fmt.Errorf("scan journal candidate: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

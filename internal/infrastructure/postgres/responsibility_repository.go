package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ejadull/l10n-ar-invoice/internal/domain/entity"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/repository"
)

var _ repository.ResponsibilityRepository = (*ResponsibilityRepo)(nil)

// ResponsibilityRepo implementación de ResponsibilityRepository. Son tablas de
// referencia cargadas por seed; solo lectura desde la aplicación.
type ResponsibilityRepo struct {
	q Querier
}

// NewResponsibilityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewResponsibilityRepository(q Querier) *ResponsibilityRepo {
	return &ResponsibilityRepo{q: q}
}

// GetByCode obtiene una responsabilidad por su código (RI, MT, CF, EX, NR).
func (r *ResponsibilityRepo) GetByCode(code string) (*entity.Responsibility, error) {
	query := `SELECT id, code, name FROM responsibilities WHERE code = $1`
	var resp entity.Responsibility
	err := r.q.QueryRow(context.Background(), query, code).Scan(&resp.ID, &resp.Code, &resp.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get responsibility: %w", err)
	}
	return &resp, nil
}

// ListRelationsByDocumentClass lista las relaciones emisor → receptor de una
// clase de documento. Lista vacía = clase irrestricta.
func (r *ResponsibilityRepo) ListRelationsByDocumentClass(documentClassID string) ([]entity.ResponsibilityRelation, error) {
	query := `
		SELECT id, document_class_id, issuer_code, receptor_code
		FROM responsibility_relations WHERE document_class_id = $1`
	rows, err := r.q.Query(context.Background(), query, documentClassID)
	if err != nil {
		return nil, fmt.Errorf("list responsibility relations: %w", err)
	}
	defer rows.Close()
	var list []entity.ResponsibilityRelation
	for rows.Next() {
		var rel entity.ResponsibilityRelation
		if err := rows.Scan(&rel.ID, &rel.DocumentClassID, &rel.IssuerCode, &rel.ReceptorCode); err != nil {
			return nil, fmt.Errorf("scan responsibility relation: %w", err)
		}
		list = append(list, rel)
	}
	return list, rows.Err()
}

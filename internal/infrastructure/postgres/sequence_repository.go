package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ejadull/l10n-ar-invoice/internal/domain"
	"github.com/ejadull/l10n-ar-invoice/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo implementación de SequenceRepository (usable con pool o tx).
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// NextNumber asigna el próximo número de la secuencia y la avanza en la misma
// sentencia. El UPDATE toma row lock: dos confirmaciones concurrentes sobre el
// mismo diario serializan acá y no pueden repetir número.
func (r *SequenceRepo) NextNumber(sequenceID string) (string, error) {
	query := `
		UPDATE sequences
		SET number_next = number_next + 1
		WHERE id = $1
		RETURNING prefix, number_next - 1, padding`
	var prefix string
	var number int64
	var padding int
	err := r.q.QueryRow(context.Background(), query, sequenceID).Scan(&prefix, &number, &padding)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("next sequence number: %w", err)
	}
	return fmt.Sprintf("%s%0*d", prefix, padding, number), nil
}

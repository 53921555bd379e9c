package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/menuiserie-crm/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo consecutivos anuales por empresa y serie (FAC, DEV, PAY...).
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa y devuelve el consecutivo. El UPSERT bloquea la fila hasta el fin de la tx,
// así dos emisiones concurrentes nunca reciben el mismo número.
func (r *SequenceRepo) Next(ctx context.Context, companyID, series string, year int) (int64, error) {
	query := `
		INSERT INTO document_sequences (company_id, series, year, last_value)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (company_id, series, year)
		DO UPDATE SET last_value = document_sequences.last_value + 1
		RETURNING last_value`
	var n int64
	if err := r.q.QueryRow(ctx, query, companyID, series, year).Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence %s/%d: %w", series, year, err)
	}
	return n, nil
}

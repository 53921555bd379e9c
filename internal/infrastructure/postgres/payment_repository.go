package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/menuiserie-crm/internal/domain"
	"github.com/jhoicas/menuiserie-crm/internal/domain/entity"
	"github.com/jhoicas/menuiserie-crm/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un pago.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO payments (id, number, company_id, document_id, client_id, amount, date, method, reference, notes, created_by_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Number, p.CompanyID, p.DocumentID, nullIfEmpty(p.ClientID),
		p.Amount, p.Date, p.Method, nullIfEmpty(p.Reference), nullIfEmpty(p.Notes),
		nullIfEmpty(p.CreatedByID), p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("payment number already exists: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListByDocument pagos de un documento, más antiguos primero.
func (r *PaymentRepo) ListByDocument(ctx context.Context, documentID string) ([]*entity.Payment, error) {
	query := `
		SELECT id, number, company_id, document_id, client_id, amount, date, method,
		       COALESCE(reference, ''), COALESCE(notes, ''), created_by_id, created_at
		FROM payments WHERE document_id = $1 ORDER BY date, created_at`
	rows, err := r.q.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	list := []*entity.Payment{}
	for rows.Next() {
		var p entity.Payment
		var clientID, createdBy *string
		if err := rows.Scan(
			&p.ID, &p.Number, &p.CompanyID, &p.DocumentID, &clientID, &p.Amount, &p.Date, &p.Method,
			&p.Reference, &p.Notes, &createdBy, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		p.ClientID = derefStr(clientID)
		p.CreatedByID = derefStr(createdBy)
		list = append(list, &p)
	}
	return list, rows.Err()
}

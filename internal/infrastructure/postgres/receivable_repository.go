package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/menuiserie-crm/internal/domain/receivable"
	"github.com/jhoicas/menuiserie-crm/internal/domain/repository"
	"github.com/jhoicas/menuiserie-crm/internal/domain/status"
)

var _ repository.ReceivableRepository = (*ReceivableRepo)(nil)

// ReceivableRepo consultas de cartera (read-only).
type ReceivableRepo struct {
	q Querier
}

// NewReceivableRepository construye el adaptador.
func NewReceivableRepository(q Querier) *ReceivableRepo {
	return &ReceivableRepo{q: q}
}

// OpenInvoices facturas con saldo pendiente, ordenadas por vencimiento (o fecha si no tiene).
// Si el cliente fue eliminado, el nombre sale de la copia guardada en el documento.
func (r *ReceivableRepo) OpenInvoices(ctx context.Context, companyID, clientID string) ([]receivable.Invoice, error) {
	query := `
		SELECT d.id, d.number, d.status, d.client_id, COALESCE(c.full_name, d.client_name), COALESCE(c.client_number, ''),
		       d.date, d.due_date, d.total_ttc, d.paid_amount, d.balance
		FROM documents d
		LEFT JOIN clients c ON c.id = d.client_id
		WHERE d.company_id = $1
		  AND d.type = $2
		  AND d.balance > 0
		  AND d.status IN ($3, $4, $5)
		  AND ($6::uuid IS NULL OR d.client_id = $6::uuid)
		ORDER BY COALESCE(d.due_date, d.date), d.number`
	rows, err := r.q.Query(ctx, query,
		companyID, string(status.DocTypeInvoice),
		string(status.StatusSent), string(status.StatusPartial), string(status.StatusOverdue),
		nullIfEmpty(clientID),
	)
	if err != nil {
		return nil, fmt.Errorf("list open invoices: %w", err)
	}
	defer rows.Close()
	var list []receivable.Invoice
	for rows.Next() {
		var inv receivable.Invoice
		var clientIDCol *string
		if err := rows.Scan(
			&inv.ID, &inv.Number, &inv.Status, &clientIDCol, &inv.ClientName, &inv.ClientNumber,
			&inv.Date, &inv.DueDate, &inv.TotalTTC, &inv.PaidAmount, &inv.Balance,
		); err != nil {
			return nil, fmt.Errorf("scan open invoice: %w", err)
		}
		inv.ClientID = derefStr(clientIDCol)
		list = append(list, inv)
	}
	return list, rows.Err()
}

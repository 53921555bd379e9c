package repository

import (
	"context"

	"github.com/jhoicas/menuiserie-crm/internal/domain/receivable"
)

// ReceivableRepository consulta read-only de facturas con saldo pendiente.
type ReceivableRepository interface {
	// OpenInvoices devuelve las facturas (FACTURE) con saldo > 0 en estado SENT, PARTIAL u OVERDUE,
	// ordenadas por vencimiento. clientID vacío = todos los clientes.
	OpenInvoices(ctx context.Context, companyID, clientID string) ([]receivable.Invoice, error)
}

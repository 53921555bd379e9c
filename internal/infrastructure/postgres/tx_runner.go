package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/menuiserie-crm/internal/application/billing"
	"github.com/jhoicas/menuiserie-crm/internal/application/workflow"
	"github.com/jhoicas/menuiserie-crm/internal/domain/repository"
)

// Ensure TxRunner implements workflow.DocumentTxRunner and billing.PaymentTxRunner.
var _ workflow.DocumentTxRunner = (*TxRunner)(nil)
var _ billing.PaymentTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunDocuments inicia una transacción, ejecuta fn con repos de documentos, pagos y consecutivos
// atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunDocuments(ctx context.Context, fn func(
	docRepo repository.DocumentRepository,
	paymentRepo repository.PaymentRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewDocumentRepository(tx), NewPaymentRepository(tx), NewSequenceRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

package workflow

import (
	"context"

	"github.com/jhoicas/menuiserie-crm/internal/domain/repository"
)

// DocumentTxRunner ejecuta una función dentro de una transacción con los repos de documentos,
// pagos y consecutivos atados a esa tx.
type DocumentTxRunner interface {
	RunDocuments(ctx context.Context, fn func(
		docRepo repository.DocumentRepository,
		paymentRepo repository.PaymentRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}

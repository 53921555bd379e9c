package billing

import (
	"context"

	"github.com/jhoicas/menuiserie-crm/internal/domain/repository"
)

// PaymentTxRunner ejecuta una función dentro de una transacción que incluye documentos, pagos y consecutivos.
// Lo usan la creación de documentos (cabecera + líneas) y el registro de pagos.
type PaymentTxRunner interface {
	RunDocuments(ctx context.Context, fn func(
		docRepo repository.DocumentRepository,
		paymentRepo repository.PaymentRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}

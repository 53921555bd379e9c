package repository

import (
	"context"

	"github.com/jhoicas/menuiserie-crm/internal/domain/entity"
	"github.com/jhoicas/menuiserie-crm/internal/domain/status"
)

// DocumentFilter filtros del listado de documentos.
type DocumentFilter struct {
	Type     status.DocType
	Status   status.Status
	ClientID string
	Limit    int
	Offset   int
}

// DocumentRepository define el puerto de persistencia para documentos comerciales y sus líneas.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	CreateItem(ctx context.Context, item *entity.DocumentItem) error
	GetByID(ctx context.Context, id string) (*entity.Document, error)
	// GetByIDForUpdate bloquea la fila (SELECT ... FOR UPDATE). Solo tiene sentido dentro de una tx.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Document, error)
	GetItems(ctx context.Context, documentID string) ([]*entity.DocumentItem, error)
	CountItems(ctx context.Context, documentID string) (int, error)
	List(ctx context.Context, companyID string, f DocumentFilter) ([]*entity.Document, int, error)
	// Update persiste estado, numeración, importes pagados y fechas del ciclo de vida.
	Update(ctx context.Context, doc *entity.Document) error
}

// PaymentRepository define el puerto de persistencia para pagos.
type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	ListByDocument(ctx context.Context, documentID string) ([]*entity.Payment, error)
}

// SequenceRepository entrega el siguiente consecutivo por empresa, serie y año.
type SequenceRepository interface {
	Next(ctx context.Context, companyID, series string, year int) (int64, error)
}

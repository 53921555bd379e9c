package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/menuiserie-crm/internal/application/dto"
	"github.com/jhoicas/menuiserie-crm/internal/domain"
	"github.com/jhoicas/menuiserie-crm/internal/domain/billing"
	"github.com/jhoicas/menuiserie-crm/internal/domain/entity"
	"github.com/jhoicas/menuiserie-crm/internal/domain/repository"
	"github.com/jhoicas/menuiserie-crm/internal/domain/status"
	"github.com/jhoicas/menuiserie-crm/pkg/logger"
)

// DocumentStatusUseCase cambia el estado de un documento comercial respetando su grafo de transiciones.
type DocumentStatusUseCase struct {
	txRunner DocumentTxRunner
	log      *logger.Logger
}

// NewDocumentStatusUseCase construye el caso de uso.
func NewDocumentStatusUseCase(txRunner DocumentTxRunner, log *logger.Logger) *DocumentStatusUseCase {
	return &DocumentStatusUseCase{txRunner: txRunner, log: log}
}

// ChangeStatus valida y aplica la transición dentro de una transacción.
// Salir de DRAFT (salvo hacia CANCELLED) emite el documento: valida cliente, líneas y fecha,
// asigna la numeración oficial y lo bloquea.
func (uc *DocumentStatusUseCase) ChangeStatus(
	ctx context.Context,
	companyID, documentID string,
	in dto.ChangeStatusRequest,
	loc status.Locale,
) (*dto.StatusChangeResponse, error) {
	target := status.Status(strings.ToUpper(strings.TrimSpace(in.Status)))
	if target == "" {
		return nil, fmt.Errorf("%w: status requerido", domain.ErrInvalidInput)
	}

	var doc *entity.Document
	var previous status.Status
	err := uc.txRunner.RunDocuments(ctx, func(
		docRepo repository.DocumentRepository,
		_ repository.PaymentRepository,
		seqRepo repository.SequenceRepository,
	) error {
		d, err := docRepo.GetByIDForUpdate(ctx, documentID)
		if err != nil {
			return err
		}
		if d == nil {
			return domain.ErrNotFound
		}
		if d.CompanyID != companyID {
			return domain.ErrForbidden
		}

		if !status.IsValidTransition(d.Status, target, d.Type) {
			return NewTransitionError(d.Status, target, status.NextStatuses(d.Status, status.EntityDocument, d.Type))
		}

		issuing := d.Status == status.StatusDraft && target != status.StatusCancelled
		if issuing {
			if err := validateIssuable(ctx, docRepo, d); err != nil {
				return err
			}
		}
		if target == status.StatusCancelled && d.Status != status.StatusDraft && strings.TrimSpace(in.Reason) == "" {
			return domain.ErrCancellationReason
		}

		now := time.Now()
		previous = d.Status
		ApplyTransition(d, target, in.Reason, now)

		if issuing && d.IsDraftNumber() {
			prefix := status.NumberPrefix(d.Type)
			seq, err := seqRepo.Next(ctx, companyID, prefix, now.Year())
			if err != nil {
				return err
			}
			d.Number = billing.FormatNumber(prefix, now.Year(), seq)
			d.IssuedAt = &now
			d.IsLocked = true
		}

		if err := docRepo.Update(ctx, d); err != nil {
			return err
		}
		doc = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("company_id", companyID).
		Str("document_id", doc.ID).
		Str("doc_type", string(doc.Type)).
		Str("number", doc.Number).
		Str("from", string(previous)).
		Str("to", string(doc.Status)).
		Msg("estado de documento actualizado")

	return &dto.StatusChangeResponse{
		ID:             doc.ID,
		Number:         doc.Number,
		PreviousStatus: StatusRef(previous, status.EntityDocument, loc, doc.Type),
		Status:         StatusRef(doc.Status, status.EntityDocument, loc, doc.Type),
		IsTerminal:     status.IsTerminal(doc.Status, status.EntityDocument, doc.Type),
		NextStatuses:   NextStatusRefs(doc.Status, status.EntityDocument, loc, doc.Type),
	}, nil
}

// ApplyTransition fija el nuevo estado y las fechas/importes que dependen de él.
// No valida: el llamador ya comprobó la transición.
func ApplyTransition(d *entity.Document, target status.Status, reason string, now time.Time) {
	switch target {
	case status.StatusSent:
		d.SentAt = &now
	case status.StatusConfirmed:
		d.ConfirmedAt = &now
	case status.StatusPaid:
		d.PaidAt = &now
		d.PaidAmount = d.TotalTTC
		d.Balance = d.TotalTTC.Sub(d.PaidAmount)
	case status.StatusCancelled:
		d.CancelledAt = &now
		d.CancellationReason = strings.TrimSpace(reason)
	}
	d.Status = target
	d.UpdatedAt = now
}

func validateIssuable(ctx context.Context, docRepo repository.DocumentRepository, d *entity.Document) error {
	var details []string
	if d.ClientID == "" {
		details = append(details, "el documento debe tener un cliente")
	}
	n, err := docRepo.CountItems(ctx, d.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		details = append(details, "el documento debe tener al menos una línea")
	}
	if d.Date.IsZero() {
		details = append(details, "el documento debe tener una fecha")
	}
	if len(details) > 0 {
		return &domain.ValidationError{Details: details}
	}
	return nil
}

package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/menuiserie-crm/internal/application/dto"
	"github.com/jhoicas/menuiserie-crm/internal/application/workflow"
	"github.com/jhoicas/menuiserie-crm/internal/domain"
	calc "github.com/jhoicas/menuiserie-crm/internal/domain/billing"
	"github.com/jhoicas/menuiserie-crm/internal/domain/entity"
	"github.com/jhoicas/menuiserie-crm/internal/domain/repository"
	"github.com/jhoicas/menuiserie-crm/internal/domain/status"
	"github.com/jhoicas/menuiserie-crm/pkg/logger"
)

// PaymentUseCase registro y consulta de pagos de facturas.
type PaymentUseCase struct {
	txRunner    PaymentTxRunner
	docRepo     repository.DocumentRepository
	paymentRepo repository.PaymentRepository
	log         *logger.Logger
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(
	txRunner PaymentTxRunner,
	docRepo repository.DocumentRepository,
	paymentRepo repository.PaymentRepository,
	log *logger.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{txRunner: txRunner, docRepo: docRepo, paymentRepo: paymentRepo, log: log}
}

// RecordPayment registra el pago, actualiza saldo y mueve la factura a PARTIAL o PAID.
// El nuevo estado debe ser alcanzable desde el actual según el grafo de la factura.
func (uc *PaymentUseCase) RecordPayment(
	ctx context.Context,
	companyID, userID, documentID string,
	in dto.RecordPaymentRequest,
	loc status.Locale,
) (*dto.RecordPaymentResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: el monto debe ser mayor a cero", domain.ErrInvalidInput)
	}
	method := strings.ToUpper(strings.TrimSpace(in.Method))
	if !entity.IsValidPaymentMethod(method) {
		return nil, fmt.Errorf("%w: medio de pago inválido %q", domain.ErrInvalidInput, in.Method)
	}

	now := time.Now()
	var doc *entity.Document
	var payment *entity.Payment
	var previous status.Status
	err := uc.txRunner.RunDocuments(ctx, func(
		docRepo repository.DocumentRepository,
		paymentRepo repository.PaymentRepository,
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
		if !status.IsPayable(d.Type) {
			return domain.ErrNotPayable
		}
		if in.Amount.GreaterThan(d.Balance) {
			return domain.ErrPaymentExceedsBalance
		}

		paid := d.PaidAmount.Add(in.Amount)
		balance := d.TotalTTC.Sub(paid)
		target := status.StatusPartial
		if !balance.IsPositive() {
			target = status.StatusPaid
		}
		if target != d.Status && !status.IsValidTransition(d.Status, target, d.Type) {
			te := workflow.NewTransitionError(d.Status, target, status.NextStatuses(d.Status, status.EntityDocument, d.Type))
			return fmt.Errorf("%w: %w", domain.ErrConflict, te)
		}

		seq, err := seqRepo.Next(ctx, companyID, calc.PaymentSeries, now.Year())
		if err != nil {
			return err
		}
		p := &entity.Payment{
			ID:          uuid.New().String(),
			Number:      calc.FormatNumber(calc.PaymentSeries, now.Year(), seq),
			CompanyID:   companyID,
			DocumentID:  d.ID,
			ClientID:    d.ClientID,
			Amount:      in.Amount,
			Date:        now,
			Method:      method,
			Reference:   in.Reference,
			Notes:       in.Notes,
			CreatedByID: userID,
			CreatedAt:   now,
		}
		if in.Date != nil {
			p.Date = *in.Date
		}
		if err := paymentRepo.Create(ctx, p); err != nil {
			return err
		}

		previous = d.Status
		d.PaidAmount = paid
		d.Balance = balance
		if target != d.Status {
			workflow.ApplyTransition(d, target, "", now)
		}
		d.UpdatedAt = now
		if err := docRepo.Update(ctx, d); err != nil {
			return err
		}
		doc, payment = d, p
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("company_id", companyID).
		Str("document_id", doc.ID).
		Str("payment_number", payment.Number).
		Str("amount", payment.Amount.StringFixed(2)).
		Str("balance", doc.Balance.StringFixed(2)).
		Str("from", string(previous)).
		Str("to", string(doc.Status)).
		Msg("pago registrado")

	return &dto.RecordPaymentResponse{
		Payment:    paymentResponse(payment),
		Status:     workflow.StatusRef(doc.Status, status.EntityDocument, loc, doc.Type),
		PaidAmount: doc.PaidAmount,
		Balance:    doc.Balance,
	}, nil
}

// ListPayments pagos de un documento de la empresa.
func (uc *PaymentUseCase) ListPayments(ctx context.Context, companyID, documentID string) ([]dto.PaymentResponse, error) {
	doc, err := uc.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	list, err := uc.paymentRepo.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, paymentResponse(p))
	}
	return out, nil
}

func paymentResponse(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:         p.ID,
		Number:     p.Number,
		DocumentID: p.DocumentID,
		Amount:     p.Amount,
		Date:       p.Date,
		Method:     p.Method,
		Reference:  p.Reference,
		Notes:      p.Notes,
		CreatedAt:  p.CreatedAt,
	}
}

package reports

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/menuiserie-crm/internal/application/dto"
	"github.com/jhoicas/menuiserie-crm/internal/application/workflow"
	"github.com/jhoicas/menuiserie-crm/internal/domain/receivable"
	"github.com/jhoicas/menuiserie-crm/internal/domain/repository"
	"github.com/jhoicas/menuiserie-crm/internal/domain/status"
)

// ReceivablesUseCase reporte de antigüedad de saldos (cartera).
type ReceivablesUseCase struct {
	repo repository.ReceivableRepository
}

// NewReceivablesUseCase construye el caso de uso.
func NewReceivablesUseCase(repo repository.ReceivableRepository) *ReceivablesUseCase {
	return &ReceivablesUseCase{repo: repo}
}

// Report arma el aging a la fecha now. clientID vacío = todos los clientes.
func (uc *ReceivablesUseCase) Report(ctx context.Context, companyID, clientID string, now time.Time, loc status.Locale) (*dto.ReceivablesReportResponse, error) {
	invoices, err := uc.repo.OpenInvoices(ctx, companyID, clientID)
	if err != nil {
		return nil, err
	}
	rep := receivable.Build(invoices, now)

	resp := &dto.ReceivablesReportResponse{
		GeneratedAt: now,
		Summary: dto.ReceivablesSummary{
			TotalOutstanding:   rep.Summary.TotalOutstanding,
			TotalInvoices:      rep.Summary.TotalInvoices,
			TotalClients:       rep.Summary.TotalClients,
			Current:            rep.Summary.Current,
			Overdue:            rep.Summary.Overdue,
			OverduePercent:     rep.Summary.OverduePercent.Round(2),
			AvgDaysOutstanding: int(math.Round(rep.Summary.AvgDaysOutstanding)),
		},
		Aging:    make(map[string]dto.AgingBucket, len(receivable.Buckets)),
		ByClient: make([]dto.ClientReceivable, 0, len(rep.ByClient)),
		Invoices: make([]dto.ReceivableInvoice, 0, len(rep.Lines)),
	}
	for _, b := range receivable.Buckets {
		bt := rep.Aging[b]
		resp.Aging[string(b)] = dto.AgingBucket{Count: bt.Count, Total: bt.Total}
	}
	for _, c := range rep.ByClient {
		cr := dto.ClientReceivable{
			ClientID:      c.ClientID,
			ClientName:    c.ClientName,
			ClientNumber:  c.ClientNumber,
			Total:         c.Total,
			InvoicesCount: c.InvoicesCount,
			Buckets:       make(map[string]decimal.Decimal, len(c.ByBucket)),
		}
		for b, v := range c.ByBucket {
			cr.Buckets[string(b)] = v
		}
		resp.ByClient = append(resp.ByClient, cr)
	}
	for _, l := range rep.Lines {
		resp.Invoices = append(resp.Invoices, dto.ReceivableInvoice{
			ID:          l.Invoice.ID,
			Number:      l.Invoice.Number,
			Status:      workflow.StatusRef(status.Status(l.Invoice.Status), status.EntityDocument, loc, status.DocTypeInvoice),
			ClientName:  l.Invoice.ClientName,
			Date:        l.Invoice.Date,
			DueDate:     l.Invoice.EffectiveDueDate(),
			TotalTTC:    l.Invoice.TotalTTC,
			PaidAmount:  l.Invoice.PaidAmount,
			Balance:     l.Invoice.Balance,
			DaysOverdue: l.DaysOverdue,
			Bucket:      string(l.Bucket),
		})
	}
	return resp, nil
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceivablesSummary totales del reporte de cartera.
type ReceivablesSummary struct {
	TotalOutstanding   decimal.Decimal `json:"totalOutstanding"`
	TotalInvoices      int             `json:"totalInvoices"`
	TotalClients       int             `json:"totalClients"`
	Current            decimal.Decimal `json:"current"`
	Overdue            decimal.Decimal `json:"overdue"`
	OverduePercent     decimal.Decimal `json:"overduePercent"`
	AvgDaysOutstanding int             `json:"avgDaysOutstanding"`
}

// AgingBucket conteo y total de un rango de vencimiento.
type AgingBucket struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// ClientReceivable saldo pendiente de un cliente.
type ClientReceivable struct {
	ClientID      string                     `json:"clientId,omitempty"`
	ClientName    string                     `json:"clientName"`
	ClientNumber  string                     `json:"clientNumber,omitempty"`
	Total         decimal.Decimal            `json:"total"`
	InvoicesCount int                        `json:"invoicesCount"`
	Buckets       map[string]decimal.Decimal `json:"buckets"`
}

// ReceivableInvoice factura pendiente con sus días de vencimiento.
type ReceivableInvoice struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	Status      StatusRef       `json:"status"`
	ClientName  string          `json:"clientName"`
	Date        time.Time       `json:"date"`
	DueDate     time.Time       `json:"dueDate"`
	TotalTTC    decimal.Decimal `json:"totalTTC"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	Balance     decimal.Decimal `json:"balance"`
	DaysOverdue int             `json:"daysOverdue"`
	Bucket      string          `json:"bucket"`
}

// ReceivablesReportResponse respuesta de GET /api/crm/reports/receivables.
type ReceivablesReportResponse struct {
	GeneratedAt time.Time              `json:"generatedAt"`
	Summary     ReceivablesSummary     `json:"summary"`
	Aging       map[string]AgingBucket `json:"aging"`
	ByClient    []ClientReceivable     `json:"byClient"`
	Invoices    []ReceivableInvoice    `json:"invoices"`
}

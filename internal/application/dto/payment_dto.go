package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordPaymentRequest body para POST /api/crm/documents/:id/payments.
type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Date      *time.Time      `json:"date,omitempty"`
	Method    string          `json:"method"`
	Reference string          `json:"reference,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

// PaymentResponse pago en respuestas.
type PaymentResponse struct {
	ID         string          `json:"id"`
	Number     string          `json:"number"`
	DocumentID string          `json:"document_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Method     string          `json:"method"`
	Reference  string          `json:"reference,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// RecordPaymentResponse pago registrado y nuevo estado de la factura.
type RecordPaymentResponse struct {
	Payment    PaymentResponse `json:"payment"`
	Status     StatusRef       `json:"status"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	Balance    decimal.Decimal `json:"balance"`
}

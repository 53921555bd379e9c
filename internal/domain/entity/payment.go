package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medios de pago aceptados.
const (
	PaymentCash         = "CASH"
	PaymentCheck        = "CHECK"
	PaymentBankTransfer = "BANK_TRANSFER"
	PaymentCard         = "CARD"
	PaymentOther        = "OTHER"
)

// IsValidPaymentMethod valida el medio de pago recibido.
func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCheck, PaymentBankTransfer, PaymentCard, PaymentOther:
		return true
	}
	return false
}

// Payment pago registrado contra una factura.
type Payment struct {
	ID          string
	Number      string // PAY-2026-000001
	CompanyID   string
	DocumentID  string
	ClientID    string
	Amount      decimal.Decimal
	Date        time.Time
	Method      string
	Reference   string
	Notes       string
	CreatedByID string
	CreatedAt   time.Time
}

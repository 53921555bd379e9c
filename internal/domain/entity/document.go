package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/menuiserie-crm/internal/domain/status"
)

// DraftNumberPrefix prefijo del número temporal de un documento en borrador.
const DraftNumberPrefix = "DRAFT-"

// Tipos de descuento global.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Document documento comercial (devis, BC, BL, PV, factura, anticipo, avoir).
// El estado solo se modifica a través de los casos de uso de workflow.
type Document struct {
	ID        string
	CompanyID string
	Type      status.DocType
	Number    string
	Status    status.Status

	ClientID   string // vacío si el cliente fue eliminado
	ClientName string
	ProjectID  string
	ParentID   string // documento de origen (devis → BC → BL ...)

	Date    time.Time
	DueDate *time.Time

	DiscountType   string
	DiscountValue  decimal.Decimal
	DepositPercent decimal.Decimal
	DepositAmount  decimal.Decimal

	TotalHT        decimal.Decimal
	DiscountAmount decimal.Decimal
	NetHT          decimal.Decimal
	TotalTVA       decimal.Decimal
	TotalTTC       decimal.Decimal
	PaidAmount     decimal.Decimal
	Balance        decimal.Decimal

	IsLocked           bool
	CancellationReason string

	IssuedAt    *time.Time
	SentAt      *time.Time
	ConfirmedAt *time.Time
	PaidAt      *time.Time
	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsDraftNumber indica si el documento aún no tiene numeración oficial.
func (d *Document) IsDraftNumber() bool {
	return d.Number == "" || strings.HasPrefix(d.Number, DraftNumberPrefix)
}

// DocumentItem línea de un documento. Los importes ya vienen calculados.
type DocumentItem struct {
	ID              string
	DocumentID      string
	Reference       string
	Designation     string
	Description     string
	Quantity        decimal.Decimal
	Unit            string
	UnitPriceHT     decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
	TVARate         decimal.Decimal
	TotalHT         decimal.Decimal
	TotalTVA        decimal.Decimal
	TotalTTC        decimal.Decimal
	Position        int
}

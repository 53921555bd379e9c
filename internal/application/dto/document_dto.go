package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDocumentRequest body para POST /api/crm/documents.
type CreateDocumentRequest struct {
	Type           string                      `json:"type"`
	ClientID       string                      `json:"client_id,omitempty"`
	ProjectID      string                      `json:"project_id,omitempty"`
	ParentID       string                      `json:"parent_id,omitempty"`
	Date           *time.Time                  `json:"date,omitempty"`     // por defecto: ahora
	DueDate        *time.Time                  `json:"due_date,omitempty"` // facturas: fecha + plazo de pago configurado
	DiscountType   string                      `json:"discount_type,omitempty"`
	DiscountValue  decimal.Decimal             `json:"discount_value"`
	DepositPercent decimal.Decimal             `json:"deposit_percent"`
	Items          []CreateDocumentItemRequest `json:"items"`
}

// CreateDocumentItemRequest línea del documento.
type CreateDocumentItemRequest struct {
	Reference       string           `json:"reference,omitempty"`
	Designation     string           `json:"designation"`
	Description     string           `json:"description,omitempty"`
	Quantity        decimal.Decimal  `json:"quantity"`
	Unit            string           `json:"unit,omitempty"`
	UnitPriceHT     decimal.Decimal  `json:"unit_price_ht"`
	DiscountPercent decimal.Decimal  `json:"discount_percent"`
	TVARate         *decimal.Decimal `json:"tva_rate,omitempty"` // nil → 20
}

// ConvertDocumentRequest body para POST /api/crm/documents/:id/convert.
type ConvertDocumentRequest struct {
	TargetType string               `json:"target_type"`
	DueDate    *time.Time           `json:"due_date,omitempty"`
	Items      []ConvertItemRequest `json:"items,omitempty"` // vacío: todas las líneas con su cantidad
}

// ConvertItemRequest línea a trasladar en una conversión parcial (ej. entrega parcial).
type ConvertItemRequest struct {
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ListDocumentsRequest filtros de GET /api/crm/documents.
type ListDocumentsRequest struct {
	PageRequest
	Type     string `query:"type"`
	Status   string `query:"status"`
	ClientID string `query:"client_id"`
}

// DocumentItemResponse línea en respuestas.
type DocumentItemResponse struct {
	ID              string          `json:"id"`
	Reference       string          `json:"reference,omitempty"`
	Designation     string          `json:"designation"`
	Description     string          `json:"description,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	UnitPriceHT     decimal.Decimal `json:"unit_price_ht"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TVARate         decimal.Decimal `json:"tva_rate"`
	TotalHT         decimal.Decimal `json:"total_ht"`
	TotalTVA        decimal.Decimal `json:"total_tva"`
	TotalTTC        decimal.Decimal `json:"total_ttc"`
}

// DocumentResponse documento con etiquetas de estado y tipo ya traducidas.
type DocumentResponse struct {
	ID                 string                 `json:"id"`
	Type               string                 `json:"type"`
	TypeLabel          string                 `json:"type_label"`
	Number             string                 `json:"number"`
	Status             string                 `json:"status"`
	StatusLabel        string                 `json:"status_label"`
	IsTerminal         bool                   `json:"is_terminal"`
	NextStatuses       []StatusRef            `json:"next_statuses"`
	ClientID           string                 `json:"client_id,omitempty"`
	ClientName         string                 `json:"client_name,omitempty"`
	ProjectID          string                 `json:"project_id,omitempty"`
	ParentID           string                 `json:"parent_id,omitempty"`
	Date               time.Time              `json:"date"`
	DueDate            *time.Time             `json:"due_date,omitempty"`
	DiscountType       string                 `json:"discount_type"`
	DiscountValue      decimal.Decimal        `json:"discount_value"`
	DepositPercent     decimal.Decimal        `json:"deposit_percent"`
	DepositAmount      decimal.Decimal        `json:"deposit_amount"`
	TotalHT            decimal.Decimal        `json:"total_ht"`
	DiscountAmount     decimal.Decimal        `json:"discount_amount"`
	NetHT              decimal.Decimal        `json:"net_ht"`
	TotalTVA           decimal.Decimal        `json:"total_tva"`
	TotalTTC           decimal.Decimal        `json:"total_ttc"`
	PaidAmount         decimal.Decimal        `json:"paid_amount"`
	Balance            decimal.Decimal        `json:"balance"`
	IsLocked           bool                   `json:"is_locked"`
	CancellationReason string                 `json:"cancellation_reason,omitempty"`
	IssuedAt           *time.Time             `json:"issued_at,omitempty"`
	SentAt             *time.Time             `json:"sent_at,omitempty"`
	ConfirmedAt        *time.Time             `json:"confirmed_at,omitempty"`
	PaidAt             *time.Time             `json:"paid_at,omitempty"`
	CancelledAt        *time.Time             `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	Items              []DocumentItemResponse `json:"items,omitempty"`
}

// DocumentListResponse página de documentos.
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

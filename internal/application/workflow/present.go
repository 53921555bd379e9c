package workflow

import (
	"github.com/jhoicas/menuiserie-crm/internal/application/dto"
	"github.com/jhoicas/menuiserie-crm/internal/domain/entity"
	"github.com/jhoicas/menuiserie-crm/internal/domain/status"
)

// StatusRef estado con su etiqueta en el idioma pedido.
func StatusRef(s status.Status, e status.Entity, loc status.Locale, dt status.DocType) dto.StatusRef {
	return dto.StatusRef{Value: string(s), Label: status.Label(s, e, loc, dt)}
}

// NextStatusRefs estados alcanzables desde current, etiquetados. Nunca nil.
func NextStatusRefs(current status.Status, e status.Entity, loc status.Locale, dt status.DocType) []dto.StatusRef {
	next := status.NextStatuses(current, e, dt)
	out := make([]dto.StatusRef, 0, len(next))
	for _, s := range next {
		out = append(out, StatusRef(s, e, loc, dt))
	}
	return out
}

// DocumentResponse arma la respuesta de un documento con etiquetas traducidas.
// items puede ser nil (listados).
func DocumentResponse(d *entity.Document, items []*entity.DocumentItem, loc status.Locale) dto.DocumentResponse {
	resp := dto.DocumentResponse{
		ID:                 d.ID,
		Type:               string(d.Type),
		TypeLabel:          status.DocTypeLabel(d.Type, loc),
		Number:             d.Number,
		Status:             string(d.Status),
		StatusLabel:        status.Label(d.Status, status.EntityDocument, loc, d.Type),
		IsTerminal:         status.IsTerminal(d.Status, status.EntityDocument, d.Type),
		NextStatuses:       NextStatusRefs(d.Status, status.EntityDocument, loc, d.Type),
		ClientID:           d.ClientID,
		ClientName:         d.ClientName,
		ProjectID:          d.ProjectID,
		ParentID:           d.ParentID,
		Date:               d.Date,
		DueDate:            d.DueDate,
		DiscountType:       d.DiscountType,
		DiscountValue:      d.DiscountValue,
		DepositPercent:     d.DepositPercent,
		DepositAmount:      d.DepositAmount,
		TotalHT:            d.TotalHT,
		DiscountAmount:     d.DiscountAmount,
		NetHT:              d.NetHT,
		TotalTVA:           d.TotalTVA,
		TotalTTC:           d.TotalTTC,
		PaidAmount:         d.PaidAmount,
		Balance:            d.Balance,
		IsLocked:           d.IsLocked,
		CancellationReason: d.CancellationReason,
		IssuedAt:           d.IssuedAt,
		SentAt:             d.SentAt,
		ConfirmedAt:        d.ConfirmedAt,
		PaidAt:             d.PaidAt,
		CancelledAt:        d.CancelledAt,
		CreatedAt:          d.CreatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.DocumentItemResponse{
			ID:              it.ID,
			Reference:       it.Reference,
			Designation:     it.Designation,
			Description:     it.Description,
			Quantity:        it.Quantity,
			Unit:            it.Unit,
			UnitPriceHT:     it.UnitPriceHT,
			DiscountPercent: it.DiscountPercent,
			TVARate:         it.TVARate,
			TotalHT:         it.TotalHT,
			TotalTVA:        it.TotalTVA,
			TotalTTC:        it.TotalTTC,
		})
	}
	return resp
}

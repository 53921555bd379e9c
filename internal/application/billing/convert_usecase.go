package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/menuiserie-crm/internal/application/dto"
	"github.com/jhoicas/menuiserie-crm/internal/application/workflow"
	"github.com/jhoicas/menuiserie-crm/internal/domain"
	calc "github.com/jhoicas/menuiserie-crm/internal/domain/billing"
	"github.com/jhoicas/menuiserie-crm/internal/domain/entity"
	"github.com/jhoicas/menuiserie-crm/internal/domain/repository"
	"github.com/jhoicas/menuiserie-crm/internal/domain/status"
)

// Convert genera el documento siguiente del pipeline (devis → BC, BC → BL ...) a partir de source.
// El origen debe estar en el estado de éxito de su workflow (devis ACCEPTED, BL DELIVERED, factura PAID).
// El hijo nace en borrador, enlazado por ParentID, con las líneas del origen o la selección parcial de in.Items.
func (uc *DocumentUseCase) Convert(ctx context.Context, companyID, sourceID string, in dto.ConvertDocumentRequest, loc status.Locale) (*dto.DocumentResponse, error) {
	target, ok := status.ParseDocType(strings.ToUpper(strings.TrimSpace(in.TargetType)))
	if !ok {
		return nil, fmt.Errorf("%w: tipo de destino desconocido %q", domain.ErrInvalidInput, in.TargetType)
	}
	overrides, err := quantityOverrides(in.Items)
	if err != nil {
		return nil, err
	}

	var child *entity.Document
	var items []*entity.DocumentItem
	err = uc.txRunner.RunDocuments(ctx, func(
		docRepo repository.DocumentRepository,
		_ repository.PaymentRepository,
		_ repository.SequenceRepository,
	) error {
		src, err := docRepo.GetByIDForUpdate(ctx, sourceID)
		if err != nil {
			return err
		}
		if src == nil {
			return domain.ErrNotFound
		}
		if src.CompanyID != companyID {
			return domain.ErrForbidden
		}
		if !status.CanConvert(src.Type, target) {
			return fmt.Errorf("%w: %s no puede convertirse en %s", domain.ErrInvalidInput, src.Type, target)
		}
		if !status.IsSuccess(src.Status, status.EntityDocument, src.Type) {
			return fmt.Errorf("%w: %s %s en estado %s no admite conversión", domain.ErrConflict, src.Type, src.Number, src.Status)
		}
		srcItems, err := docRepo.GetItems(ctx, src.ID)
		if err != nil {
			return err
		}
		child, items, err = uc.buildConversion(src, srcItems, target, overrides, in.DueDate, time.Now())
		if err != nil {
			return err
		}
		if err := docRepo.Create(ctx, child); err != nil {
			return err
		}
		for _, it := range items {
			if err := docRepo.CreateItem(ctx, it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("company_id", companyID).
		Str("parent_id", sourceID).
		Str("document_id", child.ID).
		Str("doc_type", string(child.Type)).
		Bool("partial", overrides != nil).
		Str("total_ttc", child.TotalTTC.StringFixed(2)).
		Msg("documento convertido")

	resp := workflow.DocumentResponse(child, items, loc)
	return &resp, nil
}

// quantityOverrides nil si la conversión es total.
func quantityOverrides(in []dto.ConvertItemRequest) (map[string]decimal.Decimal, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[string]decimal.Decimal, len(in))
	for i, it := range in {
		if it.ItemID == "" || !it.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: línea %d requiere item_id y cantidad positiva", domain.ErrInvalidInput, i+1)
		}
		if _, dup := out[it.ItemID]; dup {
			return nil, fmt.Errorf("%w: línea %s repetida", domain.ErrInvalidInput, it.ItemID)
		}
		out[it.ItemID] = it.Quantity
	}
	return out, nil
}

func (uc *DocumentUseCase) buildConversion(
	src *entity.Document,
	srcItems []*entity.DocumentItem,
	target status.DocType,
	overrides map[string]decimal.Decimal,
	dueDate *time.Time,
	now time.Time,
) (*entity.Document, []*entity.DocumentItem, error) {
	picked := srcItems
	if overrides != nil {
		picked = make([]*entity.DocumentItem, 0, len(overrides))
		for _, it := range srcItems {
			q, ok := overrides[it.ID]
			if !ok {
				continue
			}
			if q.GreaterThan(it.Quantity) {
				return nil, nil, fmt.Errorf("%w: la cantidad de %q supera la del documento de origen (%s)",
					domain.ErrInvalidInput, it.Designation, it.Quantity.String())
			}
			cp := *it
			cp.Quantity = q
			picked = append(picked, &cp)
		}
		if len(picked) != len(overrides) {
			return nil, nil, fmt.Errorf("%w: líneas que no pertenecen a %s", domain.ErrInvalidInput, src.Number)
		}
	}

	// Un descuento fijo no se reparte entre conversiones parciales.
	discountType, discountValue := src.DiscountType, src.DiscountValue
	if overrides != nil && discountType == entity.DiscountFixed {
		discountValue = decimal.Zero
	}
	deposit := decimal.Zero
	if status.IsPayable(target) {
		deposit = src.DepositPercent
	}

	lines := make([]calc.Line, 0, len(picked))
	for _, it := range picked {
		lines = append(lines, calc.Line{
			Quantity:        it.Quantity,
			UnitPriceHT:     it.UnitPriceHT,
			DiscountPercent: it.DiscountPercent,
			TVARate:         it.TVARate,
		})
	}
	totals := calc.Compute(lines, discountType, discountValue, deposit)

	child := &entity.Document{
		ID:             uuid.New().String(),
		CompanyID:      src.CompanyID,
		Type:           target,
		Number:         calc.DraftNumber(),
		Status:         status.StatusDraft,
		ClientID:       src.ClientID,
		ClientName:     src.ClientName,
		ProjectID:      src.ProjectID,
		ParentID:       src.ID,
		Date:           now,
		DueDate:        dueDate,
		DiscountType:   discountType,
		DiscountValue:  discountValue,
		DepositPercent: deposit,
		DepositAmount:  totals.DepositAmount,
		TotalHT:        totals.TotalHT,
		DiscountAmount: totals.DiscountAmount,
		NetHT:          totals.NetHT,
		TotalTVA:       totals.TotalTVA,
		TotalTTC:       totals.TotalTTC,
		PaidAmount:     decimal.Zero,
		Balance:        totals.TotalTTC,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if child.DueDate == nil && status.IsPayable(target) && uc.paymentTermsDays > 0 {
		due := now.AddDate(0, 0, uc.paymentTermsDays)
		child.DueDate = &due
	}

	items := make([]*entity.DocumentItem, 0, len(picked))
	for i, it := range picked {
		lt := totals.Lines[i]
		items = append(items, &entity.DocumentItem{
			ID:              uuid.New().String(),
			DocumentID:      child.ID,
			Reference:       it.Reference,
			Designation:     it.Designation,
			Description:     it.Description,
			Quantity:        it.Quantity,
			Unit:            it.Unit,
			UnitPriceHT:     it.UnitPriceHT,
			DiscountPercent: it.DiscountPercent,
			DiscountAmount:  lt.DiscountAmount,
			TVARate:         it.TVARate,
			TotalHT:         lt.TotalHT,
			TotalTVA:        lt.TotalTVA,
			TotalTTC:        lt.TotalTTC,
			Position:        i + 1,
		})
	}
	return child, items, nil
}

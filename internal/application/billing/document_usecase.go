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
	"github.com/jhoicas/menuiserie-crm/pkg/logger"
)

var defaultTVARate = decimal.NewFromInt(20)

// DocumentUseCase alta y consulta de documentos comerciales.
type DocumentUseCase struct {
	txRunner         PaymentTxRunner
	docRepo          repository.DocumentRepository
	clientRepo       repository.ClientRepository
	paymentTermsDays int
	log              *logger.Logger
}

// NewDocumentUseCase construye el caso de uso. paymentTermsDays fija el vencimiento por defecto de las facturas.
func NewDocumentUseCase(
	txRunner PaymentTxRunner,
	docRepo repository.DocumentRepository,
	clientRepo repository.ClientRepository,
	paymentTermsDays int,
	log *logger.Logger,
) *DocumentUseCase {
	return &DocumentUseCase{
		txRunner:         txRunner,
		docRepo:          docRepo,
		clientRepo:       clientRepo,
		paymentTermsDays: paymentTermsDays,
		log:              log,
	}
}

// Create calcula los totales y guarda el documento en borrador con su número provisional.
func (uc *DocumentUseCase) Create(ctx context.Context, companyID string, in dto.CreateDocumentRequest, loc status.Locale) (*dto.DocumentResponse, error) {
	dt, ok := status.ParseDocType(strings.ToUpper(strings.TrimSpace(in.Type)))
	if !ok {
		return nil, fmt.Errorf("%w: tipo de documento desconocido %q", domain.ErrInvalidInput, in.Type)
	}
	discountType := in.DiscountType
	if discountType == "" {
		discountType = entity.DiscountPercentage
	}
	if discountType != entity.DiscountPercentage && discountType != entity.DiscountFixed {
		return nil, fmt.Errorf("%w: discount_type debe ser percentage o fixed", domain.ErrInvalidInput)
	}
	if in.DiscountValue.IsNegative() || in.DepositPercent.IsNegative() {
		return nil, fmt.Errorf("%w: descuento y anticipo no pueden ser negativos", domain.ErrInvalidInput)
	}

	lines := make([]calc.Line, 0, len(in.Items))
	for i, it := range in.Items {
		if strings.TrimSpace(it.Designation) == "" {
			return nil, fmt.Errorf("%w: línea %d sin designación", domain.ErrInvalidInput, i+1)
		}
		if !it.Quantity.IsPositive() || it.UnitPriceHT.IsNegative() {
			return nil, fmt.Errorf("%w: línea %d con cantidad o precio inválido", domain.ErrInvalidInput, i+1)
		}
		rate := defaultTVARate
		if it.TVARate != nil {
			rate = *it.TVARate
		}
		lines = append(lines, calc.Line{
			Quantity:        it.Quantity,
			UnitPriceHT:     it.UnitPriceHT,
			DiscountPercent: it.DiscountPercent,
			TVARate:         rate,
		})
	}

	now := time.Now()
	doc := &entity.Document{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		Type:           dt,
		Number:         calc.DraftNumber(),
		Status:         status.StatusDraft,
		ProjectID:      in.ProjectID,
		ParentID:       in.ParentID,
		Date:           now,
		DueDate:        in.DueDate,
		DiscountType:   discountType,
		DiscountValue:  in.DiscountValue,
		DepositPercent: in.DepositPercent,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.Date != nil {
		doc.Date = *in.Date
	}
	if doc.DueDate == nil && status.IsPayable(dt) && uc.paymentTermsDays > 0 {
		due := doc.Date.AddDate(0, 0, uc.paymentTermsDays)
		doc.DueDate = &due
	}

	if in.ClientID != "" {
		client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrNotFound
		}
		if client.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
		doc.ClientID = client.ID
		doc.ClientName = client.FullName
	}

	totals := calc.Compute(lines, discountType, in.DiscountValue, in.DepositPercent)
	doc.TotalHT = totals.TotalHT
	doc.DiscountAmount = totals.DiscountAmount
	doc.NetHT = totals.NetHT
	doc.TotalTVA = totals.TotalTVA
	doc.TotalTTC = totals.TotalTTC
	doc.DepositAmount = totals.DepositAmount
	doc.PaidAmount = decimal.Zero
	doc.Balance = totals.TotalTTC

	items := make([]*entity.DocumentItem, 0, len(in.Items))
	for i, it := range in.Items {
		lt := totals.Lines[i]
		unit := it.Unit
		if unit == "" {
			unit = "u"
		}
		items = append(items, &entity.DocumentItem{
			ID:              uuid.New().String(),
			DocumentID:      doc.ID,
			Reference:       it.Reference,
			Designation:     strings.TrimSpace(it.Designation),
			Description:     it.Description,
			Quantity:        it.Quantity,
			Unit:            unit,
			UnitPriceHT:     it.UnitPriceHT,
			DiscountPercent: it.DiscountPercent,
			DiscountAmount:  lt.DiscountAmount,
			TVARate:         lines[i].TVARate,
			TotalHT:         lt.TotalHT,
			TotalTVA:        lt.TotalTVA,
			TotalTTC:        lt.TotalTTC,
			Position:        i + 1,
		})
	}

	err := uc.txRunner.RunDocuments(ctx, func(
		docRepo repository.DocumentRepository,
		_ repository.PaymentRepository,
		_ repository.SequenceRepository,
	) error {
		if err := docRepo.Create(ctx, doc); err != nil {
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
		Str("document_id", doc.ID).
		Str("doc_type", string(doc.Type)).
		Str("number", doc.Number).
		Str("total_ttc", doc.TotalTTC.StringFixed(2)).
		Msg("documento creado en borrador")

	resp := workflow.DocumentResponse(doc, items, loc)
	return &resp, nil
}

// GetByID documento con sus líneas, validando que pertenezca a la empresa.
func (uc *DocumentUseCase) GetByID(ctx context.Context, companyID, id string, loc status.Locale) (*dto.DocumentResponse, error) {
	doc, err := uc.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.docRepo.GetItems(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := workflow.DocumentResponse(doc, items, loc)
	return &resp, nil
}

// List documentos de la empresa (sin líneas).
func (uc *DocumentUseCase) List(ctx context.Context, companyID string, in dto.ListDocumentsRequest, loc status.Locale) (*dto.DocumentListResponse, error) {
	in.DefaultPage()
	f := repository.DocumentFilter{
		Status:   status.Status(strings.ToUpper(strings.TrimSpace(in.Status))),
		ClientID: in.ClientID,
		Limit:    in.Limit,
		Offset:   in.Offset,
	}
	if in.Type != "" {
		dt, ok := status.ParseDocType(strings.ToUpper(in.Type))
		if !ok {
			return nil, fmt.Errorf("%w: tipo de documento desconocido %q", domain.ErrInvalidInput, in.Type)
		}
		f.Type = dt
	}
	docs, total, err := uc.docRepo.List(ctx, companyID, f)
	if err != nil {
		return nil, err
	}
	out := &dto.DocumentListResponse{
		Items: make([]dto.DocumentResponse, 0, len(docs)),
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}
	for _, d := range docs {
		out.Items = append(out.Items, workflow.DocumentResponse(d, nil, loc))
	}
	return out, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/menuiserie-crm/internal/domain"
	"github.com/jhoicas/menuiserie-crm/internal/domain/entity"
	"github.com/jhoicas/menuiserie-crm/internal/domain/repository"
	"github.com/jhoicas/menuiserie-crm/internal/domain/status"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository (usable con pool o tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

const documentColumns = `
	d.id, d.company_id, d.type, d.number, d.status,
	d.client_id, COALESCE(c.full_name, d.client_name), d.project_id, d.parent_id,
	d.date, d.due_date,
	d.discount_type, d.discount_value, d.deposit_percent, d.deposit_amount,
	d.total_ht, d.discount_amount, d.net_ht, d.total_tva, d.total_ttc, d.paid_amount, d.balance,
	d.is_locked, COALESCE(d.cancellation_reason, ''),
	d.issued_at, d.sent_at, d.confirmed_at, d.paid_at, d.cancelled_at,
	d.created_at, d.updated_at`

const documentFrom = `
	FROM documents d
	LEFT JOIN clients c ON c.id = d.client_id`

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var doc entity.Document
	var docType, st string
	var clientID, projectID, parentID *string
	err := row.Scan(
		&doc.ID, &doc.CompanyID, &docType, &doc.Number, &st,
		&clientID, &doc.ClientName, &projectID, &parentID,
		&doc.Date, &doc.DueDate,
		&doc.DiscountType, &doc.DiscountValue, &doc.DepositPercent, &doc.DepositAmount,
		&doc.TotalHT, &doc.DiscountAmount, &doc.NetHT, &doc.TotalTVA, &doc.TotalTTC, &doc.PaidAmount, &doc.Balance,
		&doc.IsLocked, &doc.CancellationReason,
		&doc.IssuedAt, &doc.SentAt, &doc.ConfirmedAt, &doc.PaidAt, &doc.CancelledAt,
		&doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	doc.Type = status.DocType(docType)
	doc.Status = status.Status(st)
	doc.ClientID = derefStr(clientID)
	doc.ProjectID = derefStr(projectID)
	doc.ParentID = derefStr(parentID)
	return &doc, nil
}

// Create persiste la cabecera del documento.
func (r *DocumentRepo) Create(ctx context.Context, doc *entity.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	query := `
		INSERT INTO documents (
			id, company_id, type, number, status, client_id, client_name, project_id, parent_id, date, due_date,
			discount_type, discount_value, deposit_percent, deposit_amount,
			total_ht, discount_amount, net_ht, total_tva, total_ttc, paid_amount, balance,
			is_locked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`
	_, err := r.q.Exec(ctx, query,
		doc.ID, doc.CompanyID, string(doc.Type), doc.Number, string(doc.Status),
		nullIfEmpty(doc.ClientID), doc.ClientName, nullIfEmpty(doc.ProjectID), nullIfEmpty(doc.ParentID),
		doc.Date, doc.DueDate,
		doc.DiscountType, doc.DiscountValue, doc.DepositPercent, doc.DepositAmount,
		doc.TotalHT, doc.DiscountAmount, doc.NetHT, doc.TotalTVA, doc.TotalTTC, doc.PaidAmount, doc.Balance,
		doc.IsLocked, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("document number already exists: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// CreateItem persiste una línea del documento.
func (r *DocumentRepo) CreateItem(ctx context.Context, item *entity.DocumentItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO document_items (
			id, document_id, reference, designation, description, quantity, unit, unit_price_ht,
			discount_percent, discount_amount, tva_rate, total_ht, total_tva, total_ttc, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.DocumentID, nullIfEmpty(item.Reference), item.Designation, nullIfEmpty(item.Description),
		item.Quantity, item.Unit, item.UnitPriceHT,
		item.DiscountPercent, item.DiscountAmount, item.TVARate,
		item.TotalHT, item.TotalTVA, item.TotalTTC, item.Position,
	)
	if err != nil {
		return fmt.Errorf("insert document item: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID. nil, nil si no existe.
func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	return r.get(ctx, `SELECT`+documentColumns+documentFrom+` WHERE d.id = $1`, id)
}

// GetByIDForUpdate igual que GetByID pero bloquea la fila del documento hasta el fin de la tx.
func (r *DocumentRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Document, error) {
	return r.get(ctx, `SELECT`+documentColumns+documentFrom+` WHERE d.id = $1 FOR UPDATE OF d`, id)
}

func (r *DocumentRepo) get(ctx context.Context, query, id string) (*entity.Document, error) {
	doc, err := scanDocument(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// GetItems líneas del documento en orden de posición.
func (r *DocumentRepo) GetItems(ctx context.Context, documentID string) ([]*entity.DocumentItem, error) {
	query := `
		SELECT id, document_id, COALESCE(reference, ''), designation, COALESCE(description, ''),
		       quantity, unit, unit_price_ht, discount_percent, discount_amount, tva_rate,
		       total_ht, total_tva, total_ttc, position
		FROM document_items WHERE document_id = $1 ORDER BY position, id`
	rows, err := r.q.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list document items: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentItem
	for rows.Next() {
		var it entity.DocumentItem
		if err := rows.Scan(
			&it.ID, &it.DocumentID, &it.Reference, &it.Designation, &it.Description,
			&it.Quantity, &it.Unit, &it.UnitPriceHT, &it.DiscountPercent, &it.DiscountAmount, &it.TVARate,
			&it.TotalHT, &it.TotalTVA, &it.TotalTTC, &it.Position,
		); err != nil {
			return nil, fmt.Errorf("scan document item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// CountItems número de líneas del documento.
func (r *DocumentRepo) CountItems(ctx context.Context, documentID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM document_items WHERE document_id = $1`, documentID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count document items: %w", err)
	}
	return n, nil
}

// List documentos de la empresa con filtros opcionales, más recientes primero. Devuelve también el total.
func (r *DocumentRepo) List(ctx context.Context, companyID string, f repository.DocumentFilter) ([]*entity.Document, int, error) {
	where := []string{"d.company_id = $1"}
	args := []any{companyID}
	if f.Type != "" {
		args = append(args, string(f.Type))
		where = append(where, fmt.Sprintf("d.type = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		where = append(where, fmt.Sprintf("d.status = $%d", len(args)))
	}
	if f.ClientID != "" {
		args = append(args, f.ClientID)
		where = append(where, fmt.Sprintf("d.client_id = $%d", len(args)))
	}
	cond := " WHERE " + strings.Join(where, " AND ")

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM documents d`+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count documents: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit, f.Offset)
	query := `SELECT` + documentColumns + documentFrom + cond +
		fmt.Sprintf(" ORDER BY d.date DESC, d.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, doc)
	}
	return list, total, rows.Err()
}

// Update persiste estado, numeración, pagos y fechas del ciclo de vida.
func (r *DocumentRepo) Update(ctx context.Context, doc *entity.Document) error {
	query := `
		UPDATE documents
		SET status              = $2,
		    number              = $3,
		    paid_amount         = $4,
		    balance             = $5,
		    is_locked           = $6,
		    cancellation_reason = $7,
		    issued_at           = $8,
		    sent_at             = $9,
		    confirmed_at        = $10,
		    paid_at             = $11,
		    cancelled_at        = $12,
		    updated_at          = $13
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		doc.ID, string(doc.Status), doc.Number, doc.PaidAmount, doc.Balance, doc.IsLocked,
		nullIfEmpty(doc.CancellationReason),
		doc.IssuedAt, doc.SentAt, doc.ConfirmedAt, doc.PaidAt, doc.CancelledAt,
		doc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("document number already exists: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("update document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

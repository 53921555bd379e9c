package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/menuiserie-crm/internal/domain"
	"github.com/jhoicas/menuiserie-crm/internal/domain/entity"
	"github.com/jhoicas/menuiserie-crm/internal/domain/repository"
	"github.com/jhoicas/menuiserie-crm/internal/domain/status"
)

var (
	_ repository.LeadRepository    = (*LeadRepo)(nil)
	_ repository.ProjectRepository = (*ProjectRepo)(nil)
	_ repository.ClientRepository  = (*ClientRepo)(nil)
)

// LeadRepo implementación de LeadRepository.
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador.
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

// GetByID obtiene un prospecto. nil, nil si no existe.
func (r *LeadRepo) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `
		SELECT id, company_id, number, full_name, COALESCE(email, ''), COALESCE(phone, ''), status, created_at, updated_at
		FROM leads WHERE id = $1`
	var l entity.Lead
	var st string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.CompanyID, &l.Number, &l.FullName, &l.Email, &l.Phone, &st, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	l.Status = status.Status(st)
	return &l, nil
}

// UpdateStatus cambia el estado del prospecto si sigue en from.
func (r *LeadRepo) UpdateStatus(ctx context.Context, id string, from, to status.Status) error {
	return updateStatus(ctx, r.q, "leads", id, from, to)
}

// ProjectRepo implementación de ProjectRepository.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador.
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// GetByID obtiene un proyecto. nil, nil si no existe.
func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	query := `
		SELECT id, company_id, client_id, number, name, status, created_at, updated_at
		FROM projects WHERE id = $1`
	var p entity.Project
	var st string
	var clientID *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.CompanyID, &clientID, &p.Number, &p.Name, &st, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	p.Status = status.Status(st)
	p.ClientID = derefStr(clientID)
	return &p, nil
}

// UpdateStatus cambia el estado del proyecto si sigue en from.
func (r *ProjectRepo) UpdateStatus(ctx context.Context, id string, from, to status.Status) error {
	return updateStatus(ctx, r.q, "projects", id, from, to)
}

// updateStatus compare-and-set sobre la columna status. table es siempre una constante
// interna (leads | projects). 0 filas: la fila no existe o su estado ya no es from.
func updateStatus(ctx context.Context, q Querier, table, id string, from, to status.Status) error {
	tag, err := q.Exec(ctx,
		`UPDATE `+table+` SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`,
		id, string(from), string(to))
	if err != nil {
		return fmt.Errorf("update %s status: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s %s ya no está en %s", domain.ErrConflict, table, id, from)
	}
	return nil
}

// ClientRepo lectura de clientes.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// GetByID obtiene un cliente. nil, nil si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `
		SELECT id, company_id, client_number, full_name, COALESCE(email, ''), COALESCE(phone, ''), created_at, updated_at
		FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.CompanyID, &c.ClientNumber, &c.FullName, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

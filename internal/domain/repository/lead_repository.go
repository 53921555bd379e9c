package repository

import (
	"context"

	"github.com/jhoicas/menuiserie-crm/internal/domain/entity"
	"github.com/jhoicas/menuiserie-crm/internal/domain/status"
)

// LeadRepository define el puerto de persistencia para prospectos.
type LeadRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Lead, error)
	// UpdateStatus cambia de from a to solo si el estado guardado sigue siendo from;
	// si otro cambio se adelantó devuelve domain.ErrConflict.
	UpdateStatus(ctx context.Context, id string, from, to status.Status) error
}

// ProjectRepository define el puerto de persistencia para proyectos.
type ProjectRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	// UpdateStatus igual que LeadRepository.UpdateStatus.
	UpdateStatus(ctx context.Context, id string, from, to status.Status) error
}

// ClientRepository lectura de clientes (nombre para documentos y reportes).
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Client, error)
}

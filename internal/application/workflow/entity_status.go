package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/menuiserie-crm/internal/application/dto"
	"github.com/jhoicas/menuiserie-crm/internal/domain"
	"github.com/jhoicas/menuiserie-crm/internal/domain/repository"
	"github.com/jhoicas/menuiserie-crm/internal/domain/status"
	"github.com/jhoicas/menuiserie-crm/pkg/logger"
)

// PipelineStatusUseCase cambios de estado de prospectos y proyectos.
type PipelineStatusUseCase struct {
	leadRepo    repository.LeadRepository
	projectRepo repository.ProjectRepository
	log         *logger.Logger
}

// NewPipelineStatusUseCase construye el caso de uso.
func NewPipelineStatusUseCase(
	leadRepo repository.LeadRepository,
	projectRepo repository.ProjectRepository,
	log *logger.Logger,
) *PipelineStatusUseCase {
	return &PipelineStatusUseCase{leadRepo: leadRepo, projectRepo: projectRepo, log: log}
}

// ChangeLeadStatus mueve un prospecto a un estado alcanzable desde el actual.
// La escritura es condicional al estado leído: si otro cambio se adelantó, ErrConflict.
func (uc *PipelineStatusUseCase) ChangeLeadStatus(ctx context.Context, companyID, leadID string, in dto.ChangeStatusRequest, loc status.Locale) (*dto.StatusChangeResponse, error) {
	target, err := parseTarget(in.Status)
	if err != nil {
		return nil, err
	}
	lead, err := uc.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	if lead.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if err := checkTransition(lead.Status, target, status.EntityLead); err != nil {
		return nil, err
	}
	if err := uc.leadRepo.UpdateStatus(ctx, lead.ID, lead.Status, target); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("company_id", companyID).
		Str("lead_id", lead.ID).
		Str("from", string(lead.Status)).
		Str("to", string(target)).
		Msg("estado de prospecto actualizado")
	return pipelineResponse(lead.ID, lead.Number, lead.Status, target, status.EntityLead, loc), nil
}

// ChangeProjectStatus mueve un proyecto a un estado alcanzable desde el actual.
func (uc *PipelineStatusUseCase) ChangeProjectStatus(ctx context.Context, companyID, projectID string, in dto.ChangeStatusRequest, loc status.Locale) (*dto.StatusChangeResponse, error) {
	target, err := parseTarget(in.Status)
	if err != nil {
		return nil, err
	}
	p, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if err := checkTransition(p.Status, target, status.EntityProject); err != nil {
		return nil, err
	}
	if err := uc.projectRepo.UpdateStatus(ctx, p.ID, p.Status, target); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("company_id", companyID).
		Str("project_id", p.ID).
		Str("from", string(p.Status)).
		Str("to", string(target)).
		Msg("estado de proyecto actualizado")
	return pipelineResponse(p.ID, p.Number, p.Status, target, status.EntityProject, loc), nil
}

func parseTarget(raw string) (status.Status, error) {
	target := status.Status(strings.ToUpper(strings.TrimSpace(raw)))
	if target == "" {
		return "", fmt.Errorf("%w: status requerido", domain.ErrInvalidInput)
	}
	return target, nil
}

func checkTransition(from, to status.Status, e status.Entity) error {
	allowed := status.NextStatuses(from, e, "")
	for _, s := range allowed {
		if s == to {
			return nil
		}
	}
	return NewTransitionError(from, to, allowed)
}

// NewTransitionError error de transición con las alternativas válidas desde from.
func NewTransitionError(from, to status.Status, allowed []status.Status) *domain.TransitionError {
	te := &domain.TransitionError{From: string(from), To: string(to), Allowed: make([]string, 0, len(allowed))}
	for _, s := range allowed {
		te.Allowed = append(te.Allowed, string(s))
	}
	return te
}

func pipelineResponse(id, number string, from, to status.Status, e status.Entity, loc status.Locale) *dto.StatusChangeResponse {
	return &dto.StatusChangeResponse{
		ID:             id,
		Number:         number,
		PreviousStatus: StatusRef(from, e, loc, ""),
		Status:         StatusRef(to, e, loc, ""),
		IsTerminal:     status.IsTerminal(to, e, ""),
		NextStatuses:   NextStatusRefs(to, e, loc, ""),
	}
}

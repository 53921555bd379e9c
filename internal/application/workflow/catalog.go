package workflow

import (
	"fmt"

	"github.com/jhoicas/menuiserie-crm/internal/application/dto"
	"github.com/jhoicas/menuiserie-crm/internal/domain"
	"github.com/jhoicas/menuiserie-crm/internal/domain/status"
)

// CatalogUseCase expone el catálogo de estados y tipos de documento para los selectores del front.
// Solo lectura, sin base de datos.
type CatalogUseCase struct{}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase() *CatalogUseCase {
	return &CatalogUseCase{}
}

// StatusOptions opciones de estado de una entidad. docType solo aplica a documentos;
// un tipo desconocido devuelve el catálogo genérico.
func (uc *CatalogUseCase) StatusOptions(entityRaw, docTypeRaw string, loc status.Locale) (*dto.StatusOptionsResponse, error) {
	e, ok := status.ParseEntity(entityRaw)
	if !ok {
		return nil, fmt.Errorf("%w: entidad desconocida %q", domain.ErrInvalidInput, entityRaw)
	}
	dt := status.DocType(docTypeRaw)
	if e != status.EntityDocument {
		dt = ""
	}
	opts := status.Options(e, loc, dt)
	resp := &dto.StatusOptionsResponse{
		Entity:  string(e),
		DocType: string(dt),
		Locale:  string(loc),
		Options: make([]dto.StatusOptionResponse, 0, len(opts)),
	}
	for _, o := range opts {
		resp.Options = append(resp.Options, dto.StatusOptionResponse{Value: string(o.Value), Label: o.Label, Config: o.Config})
	}
	return resp, nil
}

// Transitions grafo completo de un tipo de documento, en orden de catálogo.
func (uc *CatalogUseCase) Transitions(docTypeRaw string, loc status.Locale) (*dto.TransitionsResponse, error) {
	dt, ok := status.ParseDocType(docTypeRaw)
	if !ok {
		return nil, fmt.Errorf("%w: tipo de documento desconocido %q", domain.ErrNotFound, docTypeRaw)
	}
	graph := status.DocumentTransitions(dt)
	resp := &dto.TransitionsResponse{
		DocType:   string(dt),
		TypeLabel: status.DocTypeLabel(dt, loc),
	}
	for _, o := range status.Options(status.EntityDocument, loc, dt) {
		if _, inGraph := graph[o.Value]; !inGraph {
			continue
		}
		resp.Nodes = append(resp.Nodes, dto.TransitionNode{
			Status:     dto.StatusRef{Value: string(o.Value), Label: o.Label},
			Next:       NextStatusRefs(o.Value, status.EntityDocument, loc, dt),
			IsTerminal: status.IsTerminal(o.Value, status.EntityDocument, dt),
			IsSuccess:  status.IsSuccess(o.Value, status.EntityDocument, dt),
			IsFailure:  status.IsFailure(o.Value, status.EntityDocument, dt),
		})
	}
	return resp, nil
}

// DocumentTypes todos los tipos de documento con su etiqueta.
func (uc *CatalogUseCase) DocumentTypes(loc status.Locale) []dto.DocumentTypeResponse {
	out := make([]dto.DocumentTypeResponse, 0, len(status.DocTypes))
	for _, dt := range status.DocTypes {
		out = append(out, dto.DocumentTypeResponse{
			Value:   string(dt),
			Label:   status.DocTypeLabel(dt, loc),
			Prefix:  status.NumberPrefix(dt),
			Payable: status.IsPayable(dt),
		})
	}
	return out
}

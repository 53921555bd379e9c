package dto

import "github.com/jhoicas/menuiserie-crm/internal/domain/status"

// StatusRef estado con su etiqueta traducida.
type StatusRef struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// StatusOptionResponse opción de un selector de estados.
type StatusOptionResponse struct {
	Value  string        `json:"value"`
	Label  string        `json:"label"`
	Config status.Config `json:"config"`
}

// StatusOptionsResponse respuesta de GET /api/crm/statuses/:entity.
type StatusOptionsResponse struct {
	Entity  string                 `json:"entity"`
	DocType string                 `json:"doc_type,omitempty"`
	Locale  string                 `json:"locale"`
	Options []StatusOptionResponse `json:"options"`
}

// TransitionNode nodo del grafo de transiciones de un tipo de documento.
type TransitionNode struct {
	Status     StatusRef   `json:"status"`
	Next       []StatusRef `json:"next"`
	IsTerminal bool        `json:"is_terminal"`
	IsSuccess  bool        `json:"is_success"`
	IsFailure  bool        `json:"is_failure"`
}

// TransitionsResponse respuesta de GET /api/crm/statuses/documents/:docType/transitions.
type TransitionsResponse struct {
	DocType   string           `json:"doc_type"`
	TypeLabel string           `json:"type_label"`
	Nodes     []TransitionNode `json:"nodes"`
}

// DocumentTypeResponse tipo de documento con su etiqueta.
type DocumentTypeResponse struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Prefix  string `json:"prefix"`
	Payable bool   `json:"payable"`
}

// ChangeStatusRequest body para PUT .../:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// StatusChangeResponse resultado de un cambio de estado.
type StatusChangeResponse struct {
	ID             string      `json:"id"`
	Number         string      `json:"number,omitempty"`
	PreviousStatus StatusRef   `json:"previous_status"`
	Status         StatusRef   `json:"status"`
	IsTerminal     bool        `json:"is_terminal"`
	NextStatuses   []StatusRef `json:"next_statuses"`
}

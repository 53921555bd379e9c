package status

// Category máquina de estados independiente. Cada tipo de documento se asigna a una
// categoría; factura, factura de anticipo y nota de crédito comparten la de factura.
type Category string

const (
	CategoryLead      Category = "lead"
	CategoryProject   Category = "project"
	CategoryQuote     Category = "quote"
	CategoryInvoice   Category = "invoice"
	CategoryOrder     Category = "order"
	CategoryDelivery  Category = "delivery"
	CategoryReception Category = "reception"
)

// edge transición saliente. Las reactivaciones (LOST → NEW, CANCELLED → STUDY) son
// transiciones válidas pero no cuentan para decidir si un estado es terminal.
type edge struct {
	to           Status
	reactivation bool
}

func forward(to ...Status) []edge {
	out := make([]edge, len(to))
	for i, s := range to {
		out[i] = edge{to: s}
	}
	return out
}

func reactivate(to Status) []edge {
	return []edge{{to: to, reactivation: true}}
}

// workflow declaración completa de una categoría: catálogo ordenado, grafo y
// clasificación semántica. Terminal = estado del grafo sin transiciones hacia adelante.
type workflow struct {
	category Category
	entries  []Entry
	edges    map[Status][]edge
	success  []Status
	failure  []Status

	// graphless: catálogo sin grafo (documento genérico). Usa terminal en lugar del grafo.
	graphless bool
	terminal  []Status
}

var leadWorkflow = &workflow{
	category: CategoryLead,
	entries:  leadEntries,
	edges: map[Status][]edge{
		StatusNew:            forward(StatusContacted, StatusLost),
		StatusContacted:      forward(StatusVisitScheduled, StatusQuoteSent, StatusLost),
		StatusVisitScheduled: forward(StatusMeasuresTaken, StatusContacted, StatusLost),
		StatusMeasuresTaken:  forward(StatusQuoteSent, StatusLost),
		StatusQuoteSent:      forward(StatusNegotiation, StatusWon, StatusLost),
		StatusNegotiation:    forward(StatusWon, StatusLost),
		StatusWon:            nil,
		StatusLost:           reactivate(StatusNew),
	},
	success: []Status{StatusWon},
	failure: []Status{StatusLost},
}

// RECEIVED no es terminal: confirma la recepción y solo puede pasar a CLOSED.
var projectWorkflow = &workflow{
	category: CategoryProject,
	entries:  projectEntries,
	edges: map[Status][]edge{
		StatusStudy:        forward(StatusMeasures, StatusQuote, StatusCancelled),
		StatusMeasures:     forward(StatusQuote, StatusStudy, StatusCancelled),
		StatusQuote:        forward(StatusPending, StatusStudy, StatusCancelled),
		StatusPending:      forward(StatusProduction, StatusQuote, StatusCancelled),
		StatusProduction:   forward(StatusReady, StatusCancelled),
		StatusReady:        forward(StatusDelivery, StatusInstallation, StatusCancelled),
		StatusDelivery:     forward(StatusInstallation, StatusCompleted, StatusCancelled),
		StatusInstallation: forward(StatusCompleted, StatusCancelled),
		StatusCompleted:    forward(StatusReceived, StatusInstallation),
		StatusReceived:     forward(StatusClosed),
		StatusClosed:       nil,
		StatusCancelled:    reactivate(StatusStudy),
	},
	success: []Status{StatusCompleted, StatusReceived, StatusClosed},
	failure: []Status{StatusCancelled},
}

// Devis: DRAFT → SENT → VIEWED → ACCEPTED/REJECTED.
var quoteWorkflow = &workflow{
	category: CategoryQuote,
	entries:  pick(StatusDraft, StatusSent, StatusViewed, StatusAccepted, StatusRejected, StatusCancelled),
	edges: map[Status][]edge{
		StatusDraft:     forward(StatusSent, StatusCancelled),
		StatusSent:      forward(StatusViewed, StatusAccepted, StatusRejected, StatusCancelled),
		StatusViewed:    forward(StatusAccepted, StatusRejected, StatusCancelled),
		StatusAccepted:  nil, // se convierte en BC o factura de anticipo
		StatusRejected:  nil,
		StatusCancelled: nil,
	},
	success: []Status{StatusAccepted},
	failure: []Status{StatusRejected, StatusCancelled},
}

// Factura, factura de anticipo y avoir: DRAFT → SENT → PARTIAL → PAID / OVERDUE.
var invoiceWorkflow = &workflow{
	category: CategoryInvoice,
	entries:  pick(StatusDraft, StatusSent, StatusPartial, StatusPaid, StatusOverdue, StatusCancelled),
	edges: map[Status][]edge{
		StatusDraft:     forward(StatusSent, StatusCancelled),
		StatusSent:      forward(StatusPartial, StatusPaid, StatusOverdue, StatusCancelled),
		StatusPartial:   forward(StatusPaid, StatusOverdue, StatusCancelled),
		StatusPaid:      nil,
		StatusOverdue:   forward(StatusPartial, StatusPaid, StatusCancelled),
		StatusCancelled: nil,
	},
	success: []Status{StatusPaid},
	failure: []Status{StatusOverdue, StatusCancelled},
}

// Bon de commande: DRAFT → CONFIRMED → PARTIAL → DELIVERED.
var orderWorkflow = &workflow{
	category: CategoryOrder,
	entries:  pick(StatusDraft, StatusConfirmed, StatusPartial, StatusDelivered, StatusCancelled),
	edges: map[Status][]edge{
		StatusDraft:     forward(StatusConfirmed, StatusCancelled),
		StatusConfirmed: forward(StatusPartial, StatusDelivered, StatusCancelled),
		StatusPartial:   forward(StatusDelivered, StatusCancelled),
		StatusDelivered: nil, // habilita el BL
		StatusCancelled: nil,
	},
	success: []Status{StatusDelivered},
	failure: []Status{StatusCancelled},
}

// Bon de livraison: DRAFT → PARTIAL → DELIVERED.
var deliveryWorkflow = &workflow{
	category: CategoryDelivery,
	entries:  pick(StatusDraft, StatusDelivered, StatusPartial, StatusCancelled),
	edges: map[Status][]edge{
		StatusDraft:     forward(StatusPartial, StatusDelivered, StatusCancelled),
		StatusPartial:   forward(StatusDelivered, StatusCancelled),
		StatusDelivered: nil, // habilita el PV
		StatusCancelled: nil,
	},
	success: []Status{StatusDelivered},
	failure: []Status{StatusCancelled},
}

// PV de réception: DRAFT → SIGNED.
var receptionWorkflow = &workflow{
	category: CategoryReception,
	entries:  pick(StatusDraft, StatusSigned, StatusCancelled),
	edges: map[Status][]edge{
		StatusDraft:     forward(StatusSigned, StatusCancelled),
		StatusSigned:    nil, // dispara la factura final
		StatusCancelled: nil,
	},
	success: []Status{StatusSigned},
	failure: []Status{StatusCancelled},
}

// documentCatalog documento sin tipo: todos los estados, sin grafo.
var documentCatalog = &workflow{
	entries:   documentEntries,
	graphless: true,
	terminal:  []Status{StatusPaid, StatusCancelled, StatusRejected, StatusSigned, StatusDelivered},
	success:   []Status{StatusAccepted, StatusConfirmed, StatusDelivered, StatusSigned, StatusPaid},
	failure:   []Status{StatusRejected, StatusOverdue, StatusCancelled},
}

// unknownDocument tipo de documento no reconocido: se presenta con el catálogo genérico
// pero no admite ninguna transición.
var unknownDocument = &workflow{
	entries: documentEntries,
	edges:   map[Status][]edge{},
	success: documentCatalog.success,
	failure: []Status{StatusCancelled},
}

var workflowsByCategory = map[Category]*workflow{
	CategoryLead:      leadWorkflow,
	CategoryProject:   projectWorkflow,
	CategoryQuote:     quoteWorkflow,
	CategoryInvoice:   invoiceWorkflow,
	CategoryOrder:     orderWorkflow,
	CategoryDelivery:  deliveryWorkflow,
	CategoryReception: receptionWorkflow,
}

// resolve elige el workflow según entidad y tipo de documento (vacío = sin tipo).
func resolve(entity Entity, docType DocType) *workflow {
	switch entity {
	case EntityLead:
		return leadWorkflow
	case EntityProject:
		return projectWorkflow
	}
	if docType == "" {
		return documentCatalog
	}
	if cat, ok := CategoryOf(docType); ok {
		return workflowsByCategory[cat]
	}
	return unknownDocument
}

func (w *workflow) config(s Status) (Config, bool) {
	for _, e := range w.entries {
		if e.Status == s {
			return e.Config, true
		}
	}
	return Config{}, false
}

func (w *workflow) next(s Status) []Status {
	edges := w.edges[s]
	out := make([]Status, len(edges))
	for i, e := range edges {
		out[i] = e.to
	}
	return out
}

func (w *workflow) isTerminal(s Status) bool {
	if w.graphless {
		return contains(w.terminal, s)
	}
	edges, ok := w.edges[s]
	if !ok {
		return false
	}
	for _, e := range edges {
		if !e.reactivation {
			return false
		}
	}
	return true
}

func contains(list []Status, s Status) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Package status concentra los estados de leads, proyectos y documentos comerciales:
// catálogo de presentación (color + etiquetas por idioma), grafos de transición por
// categoría de documento y las consultas de workflow que usan los handlers.
//
// Todas las consultas son puras y nunca fallan: ante una clave desconocida devuelven
// el valor crudo, false, una lista vacía o un valor por defecto.
package status

// Status etiqueta de estado tal como se persiste en la base de datos.
type Status string

// Estados de documentos comerciales (unión de todas las categorías).
const (
	StatusDraft     Status = "DRAFT"
	StatusSent      Status = "SENT"
	StatusViewed    Status = "VIEWED"
	StatusAccepted  Status = "ACCEPTED"
	StatusRejected  Status = "REJECTED"
	StatusConfirmed Status = "CONFIRMED"
	StatusPartial   Status = "PARTIAL"
	StatusDelivered Status = "DELIVERED"
	StatusSigned    Status = "SIGNED"
	StatusPaid      Status = "PAID"
	StatusOverdue   Status = "OVERDUE"
	StatusCancelled Status = "CANCELLED"
)

// Estados de lead.
const (
	StatusNew            Status = "NEW"
	StatusContacted      Status = "CONTACTED"
	StatusVisitScheduled Status = "VISIT_SCHEDULED"
	StatusMeasuresTaken  Status = "MEASURES_TAKEN"
	StatusQuoteSent      Status = "QUOTE_SENT"
	StatusNegotiation    Status = "NEGOTIATION"
	StatusWon            Status = "WON"
	StatusLost           Status = "LOST"
)

// Estados de proyecto. CANCELLED se comparte con documentos.
const (
	StatusStudy        Status = "STUDY"
	StatusMeasures     Status = "MEASURES"
	StatusQuote        Status = "QUOTE"
	StatusPending      Status = "PENDING"
	StatusProduction   Status = "PRODUCTION"
	StatusReady        Status = "READY"
	StatusDelivery     Status = "DELIVERY"
	StatusInstallation Status = "INSTALLATION"
	StatusCompleted    Status = "COMPLETED"
	StatusReceived     Status = "RECEIVED"
	StatusClosed       Status = "CLOSED"
)

// Entity tipo de entidad cuyo estado se consulta.
type Entity string

const (
	EntityLead     Entity = "lead"
	EntityProject  Entity = "project"
	EntityDocument Entity = "document"
)

// ParseEntity acepta singular o plural ("lead", "leads", ...).
func ParseEntity(s string) (Entity, bool) {
	switch s {
	case "lead", "leads":
		return EntityLead, true
	case "project", "projects":
		return EntityProject, true
	case "document", "documents":
		return EntityDocument, true
	}
	return "", false
}

// Config metadatos de presentación de un estado. Es un valor inmutable:
// las funciones del paquete siempre devuelven copias.
type Config struct {
	Color       string `json:"color"`
	BgColor     string `json:"bg_color"`
	TextColor   string `json:"text_color"`
	BorderColor string `json:"border_color"`
	Labels      Labels `json:"labels"`
}

// Entry estado + su configuración, en orden de declaración.
type Entry struct {
	Status Status
	Config Config
}

// Option elemento para construir un selector de estados.
type Option struct {
	Value  Status `json:"value"`
	Label  string `json:"label"`
	Config Config `json:"config"`
}

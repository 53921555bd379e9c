package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrConflict              = errors.New("conflicto con el estado actual")
	ErrInvalidTransition     = errors.New("transición de estado inválida")
	ErrCancellationReason    = errors.New("motivo de anulación requerido")
	ErrNotPayable            = errors.New("el documento no admite pagos")
	ErrPaymentExceedsBalance = errors.New("el monto supera el saldo pendiente")
)

// ValidationError agrupa los motivos por los que un documento no puede emitirse.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validación fallida: " + strings.Join(e.Details, "; ")
}

// TransitionError describe una transición rechazada y las alternativas válidas.
// errors.Is(err, ErrInvalidTransition) es true.
type TransitionError struct {
	From    string
	To      string
	Allowed []string
}

func (e *TransitionError) Error() string {
	allowed := "ninguna"
	if len(e.Allowed) > 0 {
		allowed = strings.Join(e.Allowed, ", ")
	}
	return "transición inválida: " + e.From + " → " + e.To + ". Transiciones posibles: " + allowed
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

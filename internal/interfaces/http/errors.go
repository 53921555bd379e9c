package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/menuiserie-crm/internal/application/dto"
	"github.com/jhoicas/menuiserie-crm/internal/domain"
)

// writeError traduce los errores de dominio a HTTP. El orden importa: un conflicto de pago
// envuelve también ErrInvalidTransition y debe responder 409.
func writeError(c *fiber.Ctx, err error) error {
	var ve *domain.ValidationError
	var te *domain.TransitionError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el documento no puede emitirse", Details: ve.Details})
	case errors.Is(err, domain.ErrConflict):
		resp := dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()}
		if errors.As(err, &te) {
			resp.Code = "INVALID_TRANSITION"
			resp.Details = te.Allowed
		}
		return c.Status(fiber.StatusConflict).JSON(resp)
	case errors.As(err, &te):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: te.Error(), Details: te.Allowed})
	case errors.Is(err, domain.ErrCancellationReason):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "REASON_REQUIRED", Message: err.Error()})
	case errors.Is(err, domain.ErrNotPayable):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_PAYABLE", Message: err.Error()})
	case errors.Is(err, domain.ErrPaymentExceedsBalance):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "AMOUNT_EXCEEDS_BALANCE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// paramID id de ruta. Un id que no es UUID no puede existir: 404 sin llegar a la DB.
func paramID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
}

// validUUIDQuery filtros opcionales por id (client_id): vacío o UUID.
func validUUIDQuery(c *fiber.Ctx, key string) (string, bool) {
	v := c.Query(key)
	if v == "" {
		return "", true
	}
	if _, err := uuid.Parse(v); err != nil {
		return "", false
	}
	return v, true
}

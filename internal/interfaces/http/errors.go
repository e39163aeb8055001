package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compensa-api/internal/application/dto"
	"github.com/jhoicas/Compensa-api/internal/domain"
)

// respondError mapea los errores de dominio a status + cuerpo {code, message}.
// Todos los errores de dominio son recuperables y dejan el estado intacto;
// el mensaje es apto para mostrarse al usuario.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	case errors.Is(err, domain.ErrSystemLocked):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SYSTEM_LOCKED", Message: "exclusión del sistema: no se puede modificar manualmente"})
	case errors.Is(err, domain.ErrCutoffPassed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CUTOFF_PASSED", Message: "el corte del ciclo ya pasó: el set quedó en solo lectura"})
	case errors.Is(err, domain.ErrWithdrawalClosed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "WITHDRAWAL_CLOSED", Message: "la ventana de retiro cerró: contactar a soporte"})
	case errors.Is(err, domain.ErrNothingToSubmit):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NOTHING_TO_SUBMIT", Message: "no hay facturas listas para enviar"})
	case errors.Is(err, domain.ErrInvalidReason), errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

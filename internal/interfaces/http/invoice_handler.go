package http

import (
	"github.com/gofiber/fiber/v2"

	appclearing "github.com/jhoicas/Compensa-api/internal/application/clearing"
	"github.com/jhoicas/Compensa-api/internal/application/dto"
)

// InvoiceHandler maneja el doble tick sobre las facturas (protegido).
type InvoiceHandler struct {
	ledger *appclearing.LedgerUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(ledger *appclearing.LedgerUseCase) *InvoiceHandler {
	return &InvoiceHandler{ledger: ledger}
}

// Submit marca el tick local de la factura.
// POST /api/invoices/:id/submit
func (h *InvoiceHandler) Submit(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.ledger.Submit(c.Context(), businessID, id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reject deshace el tick local de la factura (vuelve a none).
// POST /api/invoices/:id/reject
func (h *InvoiceHandler) Reject(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.ledger.Reject(c.Context(), businessID, id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

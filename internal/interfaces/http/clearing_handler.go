package http

import (
	"github.com/gofiber/fiber/v2"

	appclearing "github.com/jhoicas/Compensa-api/internal/application/clearing"
	"github.com/jhoicas/Compensa-api/internal/application/dto"
)

// ClearingHandler maneja la superficie de compensación (protegido).
type ClearingHandler struct {
	overview   *appclearing.OverviewUseCase
	inclusion  *appclearing.InclusionUseCase
	submission *appclearing.SubmissionUseCase
	visits     *appclearing.VisitUseCase
}

// NewClearingHandler construye el handler.
func NewClearingHandler(
	overview *appclearing.OverviewUseCase,
	inclusion *appclearing.InclusionUseCase,
	submission *appclearing.SubmissionUseCase,
	visits *appclearing.VisitUseCase,
) *ClearingHandler {
	return &ClearingHandler{overview: overview, inclusion: inclusion, submission: submission, visits: visits}
}

func (h *ClearingHandler) businessID(c *fiber.Ctx) (string, error) {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return "", c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	return businessID, nil
}

// Overview resumen del ciclo: ventana, conteos y envío vigente.
// GET /api/clearing/overview
func (h *ClearingHandler) Overview(c *fiber.Ctx) error {
	businessID, err := h.businessID(c)
	if businessID == "" {
		return err
	}
	out, err := h.overview.Overview(c.Context(), businessID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Invoices facturas elegibles con su estado de compensación.
// GET /api/clearing/invoices
func (h *ClearingHandler) Invoices(c *fiber.Ctx) error {
	businessID, err := h.businessID(c)
	if businessID == "" {
		return err
	}
	out, err := h.overview.Invoices(c.Context(), businessID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Include incluye una factura en el set del ciclo.
// POST /api/clearing/invoices/:id/include
func (h *ClearingHandler) Include(c *fiber.Ctx) error {
	businessID, err := h.businessID(c)
	if businessID == "" {
		return err
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.inclusion.Include(c.Context(), businessID, id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Exclude excluye una factura del set del ciclo.
// POST /api/clearing/invoices/:id/exclude
func (h *ClearingHandler) Exclude(c *fiber.Ctx) error {
	businessID, err := h.businessID(c)
	if businessID == "" {
		return err
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.ExcludeRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	if err := h.inclusion.Exclude(c.Context(), businessID, id, in.Reason); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// IncludeAll incluye un lote; responde aplicados y omitidos con causa.
// POST /api/clearing/include-all
func (h *ClearingHandler) IncludeAll(c *fiber.Ctx) error {
	businessID, err := h.businessID(c)
	if businessID == "" {
		return err
	}
	var in dto.BatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.inclusion.IncludeAll(c.Context(), businessID, in.IDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExcludeAll excluye un lote con la misma política de omisión.
// POST /api/clearing/exclude-all
func (h *ClearingHandler) ExcludeAll(c *fiber.Ctx) error {
	businessID, err := h.businessID(c)
	if businessID == "" {
		return err
	}
	var in dto.BatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.inclusion.ExcludeAll(c.Context(), businessID, in.IDs, in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Submit bloquea el set incluido en el envío versionado.
// POST /api/clearing/submit
func (h *ClearingHandler) Submit(c *fiber.Ctx) error {
	businessID, err := h.businessID(c)
	if businessID == "" {
		return err
	}
	out, err := h.submission.Submit(c.Context(), businessID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Withdraw descarta el envío vigente (la inclusión no cambia).
// DELETE /api/clearing/submission
func (h *ClearingHandler) Withdraw(c *fiber.Ctx) error {
	businessID, err := h.businessID(c)
	if businessID == "" {
		return err
	}
	if err := h.submission.Withdraw(c.Context(), businessID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkVisited registra la visita a una superficie (home | clearing).
// POST /api/visits/:surface
func (h *ClearingHandler) MarkVisited(c *fiber.Ctx) error {
	businessID, err := h.businessID(c)
	if businessID == "" {
		return err
	}
	if err := h.visits.MarkVisited(c.Context(), businessID, c.Params("surface")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// NewCount elegibles nuevas desde la última visita a clearing.
// GET /api/clearing/new-count
func (h *ClearingHandler) NewCount(c *fiber.Ctx) error {
	businessID, err := h.businessID(c)
	if businessID == "" {
		return err
	}
	count, err := h.visits.NewCount(c.Context(), businessID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewCountResponse{NewCount: count})
}

package clearing

import (
	"context"

	"github.com/jhoicas/Compensa-api/internal/domain"
	"github.com/jhoicas/Compensa-api/internal/domain/entity"
	"github.com/jhoicas/Compensa-api/internal/domain/repository"
)

// LedgerUseCase las dos operaciones del ledger de doble tick. Solo muta la
// acción del negocio local; no decide inclusión ni toca el set del ciclo.
type LedgerUseCase struct {
	invoices repository.InvoiceRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(invoices repository.InvoiceRepository) *LedgerUseCase {
	return &LedgerUseCase{invoices: invoices}
}

// Submit marca la factura para compensación por parte del negocio local.
func (uc *LedgerUseCase) Submit(ctx context.Context, businessID, invoiceID string) error {
	return uc.invoices.SetUserAction(ctx, businessID, invoiceID, entity.ActionSubmitted)
}

// Reject deshace el tick local: vuelve la acción a none. Es el camino de
// "des-enviar" observado en el toggle de dos vías, no un rechazo terminal.
func (uc *LedgerUseCase) Reject(ctx context.Context, businessID, invoiceID string) error {
	return uc.invoices.SetUserAction(ctx, businessID, invoiceID, entity.ActionNone)
}

// CounterpartyAction devuelve la acción de la contraparte sobre la factura.
func (uc *LedgerUseCase) CounterpartyAction(ctx context.Context, businessID, invoiceID string) (string, error) {
	invs, err := uc.invoices.ListByBusiness(ctx, businessID)
	if err != nil {
		return "", err
	}
	for _, inv := range invs {
		if inv.ID == invoiceID {
			return inv.SupplierAction, nil
		}
	}
	return "", domain.ErrNotFound
}

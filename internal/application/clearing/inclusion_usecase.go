package clearing

import (
	"context"

	"github.com/jhoicas/Compensa-api/internal/application/dto"
	"github.com/jhoicas/Compensa-api/internal/domain"
	domclearing "github.com/jhoicas/Compensa-api/internal/domain/clearing"
	"github.com/jhoicas/Compensa-api/internal/domain/cycle"
	"github.com/jhoicas/Compensa-api/internal/domain/entity"
	"github.com/jhoicas/Compensa-api/internal/domain/repository"
)

// InclusionUseCase alta/baja manual de facturas en el set de compensación.
// Cada mutación reevalúa la puerta de corte con un instante fresco y
// reconcilia el pool antes de aplicar la transición.
type InclusionUseCase struct {
	invoices repository.InvoiceRepository
	states   *Container
	clock    *cycle.CycleClock
	now      cycle.Clock
}

// NewInclusionUseCase construye el caso de uso.
func NewInclusionUseCase(invoices repository.InvoiceRepository, states *Container, clock *cycle.CycleClock, now cycle.Clock) *InclusionUseCase {
	return &InclusionUseCase{invoices: invoices, states: states, clock: clock, now: now}
}

// Include incluye la factura en el set del ciclo vigente.
func (uc *InclusionUseCase) Include(ctx context.Context, businessID, invoiceID string) error {
	return uc.mutate(ctx, businessID, func(st *domclearing.State) error {
		return st.Include(invoiceID)
	})
}

// Exclude excluye la factura con el motivo dado (vacío = by_customer).
func (uc *InclusionUseCase) Exclude(ctx context.Context, businessID, invoiceID, reason string) error {
	if reason == "" {
		reason = entity.ReasonByCustomer
	}
	return uc.mutate(ctx, businessID, func(st *domclearing.State) error {
		return st.Exclude(invoiceID, reason)
	})
}

// IncludeAll incluye un lote de facturas; los ids inválidos se omiten y se
// reportan, el resto se aplica.
func (uc *InclusionUseCase) IncludeAll(ctx context.Context, businessID string, ids []string) (*dto.BatchResult, error) {
	var skipped []domclearing.Skipped
	err := uc.mutate(ctx, businessID, func(st *domclearing.State) error {
		skipped = st.IncludeAll(ids)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return batchResult(ids, skipped), nil
}

// ExcludeAll excluye un lote con la misma política de omisión.
func (uc *InclusionUseCase) ExcludeAll(ctx context.Context, businessID string, ids []string, reason string) (*dto.BatchResult, error) {
	if reason == "" {
		reason = entity.ReasonByCustomer
	}
	var skipped []domclearing.Skipped
	err := uc.mutate(ctx, businessID, func(st *domclearing.State) error {
		skipped = st.ExcludeAll(ids, reason)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return batchResult(ids, skipped), nil
}

// mutate aplica la transición con puerta de corte, reconciliación previa y
// persistencia fire-and-forget vía el contenedor.
func (uc *InclusionUseCase) mutate(ctx context.Context, businessID string, fn func(*domclearing.State) error) error {
	now := uc.now.Now()
	if uc.clock.IsPastCutoff(now) {
		return domain.ErrCutoffPassed
	}
	invs, err := uc.invoices.ListByBusiness(ctx, businessID)
	if err != nil {
		return err
	}
	return uc.states.Mutate(ctx, businessID, uc.clock.CycleKey(now), func(st *domclearing.State) error {
		st.Reconcile(invs)
		return fn(st)
	})
}

func batchResult(ids []string, skipped []domclearing.Skipped) *dto.BatchResult {
	omitted := make(map[string]bool, len(skipped))
	for _, s := range skipped {
		omitted[s.ID] = true
	}
	applied := make([]string, 0, len(ids))
	for _, id := range ids {
		if !omitted[id] {
			applied = append(applied, id)
		}
	}
	if skipped == nil {
		skipped = []domclearing.Skipped{}
	}
	return &dto.BatchResult{Applied: applied, Skipped: skipped}
}

package clearing

import (
	"context"

	domclearing "github.com/jhoicas/Compensa-api/internal/domain/clearing"
	"github.com/jhoicas/Compensa-api/internal/domain/cycle"
	"github.com/jhoicas/Compensa-api/internal/domain/repository"
)

// VisitUseCase seguimiento de visitas por superficie y contador de facturas
// elegibles nuevas. Independiente de inclusión/exclusión.
type VisitUseCase struct {
	invoices repository.InvoiceRepository
	states   *Container
	clock    *cycle.CycleClock
	now      cycle.Clock
}

// NewVisitUseCase construye el caso de uso.
func NewVisitUseCase(invoices repository.InvoiceRepository, states *Container, clock *cycle.CycleClock, now cycle.Clock) *VisitUseCase {
	return &VisitUseCase{invoices: invoices, states: states, clock: clock, now: now}
}

// MarkVisited registra la visita a la superficie y, para clearing, fija el
// set de elegibles vistos (el contador de nuevas vuelve a cero).
func (uc *VisitUseCase) MarkVisited(ctx context.Context, businessID, surface string) error {
	now := uc.now.Now()

	invs, err := uc.invoices.ListByBusiness(ctx, businessID)
	if err != nil {
		return err
	}
	eligibleIDs := domclearing.EligibleIDs(invs)

	return uc.states.Mutate(ctx, businessID, uc.clock.CycleKey(now), func(st *domclearing.State) error {
		return st.MarkVisited(surface, now, eligibleIDs)
	})
}

// NewCount facturas elegibles que no estaban presentes en la última visita a
// la superficie de compensación.
func (uc *VisitUseCase) NewCount(ctx context.Context, businessID string) (int, error) {
	now := uc.now.Now()

	invs, err := uc.invoices.ListByBusiness(ctx, businessID)
	if err != nil {
		return 0, err
	}
	eligibleIDs := domclearing.EligibleIDs(invs)

	count := 0
	uc.states.View(ctx, businessID, uc.clock.CycleKey(now), func(st *domclearing.State) {
		count = st.NewSinceLastVisit(eligibleIDs)
	})
	return count, nil
}

package clearing

import (
	"context"

	"github.com/jhoicas/Compensa-api/internal/application/dto"
	domclearing "github.com/jhoicas/Compensa-api/internal/domain/clearing"
	"github.com/jhoicas/Compensa-api/internal/domain/cycle"
	"github.com/jhoicas/Compensa-api/internal/domain/entity"
	"github.com/jhoicas/Compensa-api/internal/domain/repository"
)

// OverviewUseCase lecturas de la superficie de compensación: ventana del
// ciclo, conteos y proyección de facturas con su estado.
type OverviewUseCase struct {
	invoices repository.InvoiceRepository
	states   *Container
	clock    *cycle.CycleClock
	now      cycle.Clock
}

// NewOverviewUseCase construye el caso de uso.
func NewOverviewUseCase(invoices repository.InvoiceRepository, states *Container, clock *cycle.CycleClock, now cycle.Clock) *OverviewUseCase {
	return &OverviewUseCase{invoices: invoices, states: states, clock: clock, now: now}
}

// Overview resumen del ciclo vigente para el negocio.
func (uc *OverviewUseCase) Overview(ctx context.Context, businessID string) (*dto.ClearingOverview, error) {
	now := uc.now.Now()
	w := uc.clock.CurrentWindow(now)

	invs, err := uc.invoices.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	eligible := domclearing.Eligible(invs)

	out := &dto.ClearingOverview{
		Window: dto.CycleWindowResponse{
			Start:           w.Start,
			End:             w.End,
			CutoffAt:        w.CutoffAt,
			DayIndex:        w.DayIndex,
			DaysRemaining:   w.DaysRemaining,
			IsConsentWindow: uc.clock.IsConsentWindow(now),
			IsPastCutoff:    uc.clock.IsPastCutoff(now),
		},
		EligibleCount: len(eligible),
	}

	uc.states.View(ctx, businessID, uc.clock.CycleKey(now), func(st *domclearing.State) {
		st.Reconcile(invs)
		out.IncludedCount = len(st.Included(eligible))
		out.ExcludedCount = len(st.Excluded(eligible))
		out.ReadyCount = len(st.ReadyToSubmit(eligible))
		if st.Submission != nil {
			out.Submission = &dto.SubmissionResponse{
				Version:      st.Submission.Version,
				SubmittedAt:  st.Submission.SubmittedAt,
				SubmittedIDs: domclearing.SortedIDs(st.Submission.SubmittedIDs),
			}
		}
	})

	return out, nil
}

// Invoices proyección de las facturas elegibles del negocio con dirección,
// doble tick, inclusión y estado frente al envío vigente.
func (uc *OverviewUseCase) Invoices(ctx context.Context, businessID string) ([]dto.ClearingInvoice, error) {
	now := uc.now.Now()

	invs, err := uc.invoices.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	eligible := domclearing.Eligible(invs)

	out := make([]dto.ClearingInvoice, 0, len(eligible))
	uc.states.View(ctx, businessID, uc.clock.CycleKey(now), func(st *domclearing.State) {
		st.Reconcile(invs)
		for _, inv := range eligible {
			rec := st.Record(inv.ID)
			item := dto.ClearingInvoice{
				ID:             inv.ID,
				From:           inv.From,
				To:             inv.To,
				Amount:         inv.Amount,
				Currency:       inv.Currency,
				Description:    inv.Description,
				DueDate:        inv.DueDate,
				Direction:      inv.Direction(businessID),
				UserAction:     inv.UserAction,
				SupplierAction: inv.SupplierAction,
				BothSubmitted:  inv.BothSubmitted(),
				Submitted:      st.Submission.Has(inv.ID),
			}
			if rec != nil {
				item.Inclusion = rec.Inclusion
				item.ExclusionReason = rec.ExclusionReason
			}
			item.Ready = item.Inclusion == entity.InclusionIncluded && !item.Submitted
			out = append(out, item)
		}
	})

	return out, nil
}

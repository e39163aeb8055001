package clearing

import (
	"context"

	"github.com/jhoicas/Compensa-api/internal/application/dto"
	"github.com/jhoicas/Compensa-api/internal/domain"
	domclearing "github.com/jhoicas/Compensa-api/internal/domain/clearing"
	"github.com/jhoicas/Compensa-api/internal/domain/cycle"
	"github.com/jhoicas/Compensa-api/internal/domain/repository"
)

// SubmissionUseCase envío y retiro del set de compensación. Las puertas
// temporales se evalúan con un instante fresco en cada llamada; cruzar el
// corte entre dos llamadas nunca deja un permiso obsoleto.
type SubmissionUseCase struct {
	invoices repository.InvoiceRepository
	states   *Container
	clock    *cycle.CycleClock
	now      cycle.Clock
}

// NewSubmissionUseCase construye el caso de uso.
func NewSubmissionUseCase(invoices repository.InvoiceRepository, states *Container, clock *cycle.CycleClock, now cycle.Clock) *SubmissionUseCase {
	return &SubmissionUseCase{invoices: invoices, states: states, clock: clock, now: now}
}

// Submit bloquea el set incluido actual en el envío versionado del ciclo.
func (uc *SubmissionUseCase) Submit(ctx context.Context, businessID string) (*dto.SubmitResponse, error) {
	now := uc.now.Now()
	if uc.clock.IsPastCutoff(now) {
		return nil, domain.ErrCutoffPassed
	}

	invs, err := uc.invoices.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	eligible := domclearing.Eligible(invs)

	var resp *dto.SubmitResponse
	err = uc.states.Mutate(ctx, businessID, uc.clock.CycleKey(now), func(st *domclearing.State) error {
		st.Reconcile(invs)

		newly := make([]string, 0)
		for _, inv := range st.ReadyToSubmit(eligible) {
			newly = append(newly, inv.ID)
		}

		sub, err := st.SubmitClearing(eligible, now)
		if err != nil {
			return err
		}
		resp = &dto.SubmitResponse{
			Version:      sub.Version,
			SubmittedAt:  sub.SubmittedAt,
			SubmittedIDs: domclearing.SortedIDs(sub.SubmittedIDs),
			NewlyLocked:  newly,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Withdraw descarta el envío vigente. El mapa de inclusión queda intacto.
// El último día del ciclo no hay retiro autoservicio: contactar soporte.
func (uc *SubmissionUseCase) Withdraw(ctx context.Context, businessID string) error {
	now := uc.now.Now()
	if uc.clock.IsWithdrawalClosed(now) {
		return domain.ErrWithdrawalClosed
	}
	return uc.states.Mutate(ctx, businessID, uc.clock.CycleKey(now), func(st *domclearing.State) error {
		st.WithdrawSubmission()
		return nil
	})
}

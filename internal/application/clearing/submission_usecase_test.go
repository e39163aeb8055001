package clearing_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appclearing "github.com/jhoicas/Compensa-api/internal/application/clearing"
	"github.com/jhoicas/Compensa-api/internal/domain"
	domclearing "github.com/jhoicas/Compensa-api/internal/domain/clearing"
	"github.com/jhoicas/Compensa-api/internal/domain/cycle"
	"github.com/jhoicas/Compensa-api/internal/domain/entity"
	"github.com/jhoicas/Compensa-api/internal/domain/repository/mocks"
	"github.com/jhoicas/Compensa-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testBusinessID = "biz-local"
	testCycleKey   = "2024-01-01"
)

var (
	testAnchor   = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	testMidCycle = time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC) // día 10: todas las puertas abiertas
	testLastDay  = time.Date(2024, 1, 28, 10, 0, 0, 0, time.UTC) // día 28 (índice 27): solo lectura
)

type fixture struct {
	repo   *mocks.MockInvoiceRepository
	store  *mocks.MockStateStore
	states *appclearing.Container
	clock  *cycle.CycleClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockInvoiceRepository(ctrl)
	store := mocks.NewMockStateStore(ctrl)
	return &fixture{
		repo:   repo,
		store:  store,
		states: appclearing.NewContainer(store, logger.Nop()),
		clock:  cycle.New(testAnchor, 28, 2),
	}
}

func (f *fixture) submissionUC(now time.Time) *appclearing.SubmissionUseCase {
	return appclearing.NewSubmissionUseCase(f.repo, f.states, f.clock, cycle.FixedClock{Instant: now})
}

func (f *fixture) inclusionUC(now time.Time) *appclearing.InclusionUseCase {
	return appclearing.NewInclusionUseCase(f.repo, f.states, f.clock, cycle.FixedClock{Instant: now})
}

func feedInvoice(id string, matched bool) entity.Invoice {
	return entity.Invoice{
		ID:             id,
		From:           testBusinessID,
		To:             "biz-contraparte",
		Amount:         decimal.NewFromInt(2000),
		Currency:       "COP",
		Matched:        matched,
		UserAction:     entity.ActionNone,
		SupplierAction: entity.ActionNone,
	}
}

// capturedState decodifica el último payload guardado por el contenedor.
func capturedState(t *testing.T, payload []byte) *domclearing.State {
	t.Helper()
	st, err := domclearing.DecodeState(payload)
	require.NoError(t, err)
	return st
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_FlujoFeliz(t *testing.T) {
	f := newFixture(t)
	defer f.states.Wait()

	f.repo.EXPECT().ListByBusiness(gomock.Any(), testBusinessID).
		Return([]entity.Invoice{feedInvoice("X", true), feedInvoice("Y", true)}, nil)
	f.store.EXPECT().Load(gomock.Any(), testBusinessID, testCycleKey).Return(nil, nil)
	f.store.EXPECT().Save(gomock.Any(), testBusinessID, testCycleKey, gomock.Any()).Return(nil)

	resp, err := f.submissionUC(testMidCycle).Submit(context.Background(), testBusinessID)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Version)
	assert.Equal(t, testMidCycle, resp.SubmittedAt)
	assert.Equal(t, []string{"X", "Y"}, resp.SubmittedIDs)
	assert.Equal(t, []string{"X", "Y"}, resp.NewlyLocked)
}

func TestSubmit_CutoffPasadoRechazaSinTocarNada(t *testing.T) {
	f := newFixture(t)

	// Ni el feed ni el store deben consultarse: la puerta se evalúa primero.
	_, err := f.submissionUC(testLastDay).Submit(context.Background(), testBusinessID)

	assert.ErrorIs(t, err, domain.ErrCutoffPassed)
}

func TestSubmit_PrimeraVezSinListasFalla(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().ListByBusiness(gomock.Any(), testBusinessID).
		Return([]entity.Invoice{feedInvoice("S", false)}, nil)
	f.store.EXPECT().Load(gomock.Any(), testBusinessID, testCycleKey).Return(nil, nil)
	// Sin Save: la transición falló y no se persiste nada.

	_, err := f.submissionUC(testMidCycle).Submit(context.Background(), testBusinessID)

	assert.ErrorIs(t, err, domain.ErrNothingToSubmit)
}

// La persistencia es fire-and-forget: un Save fallido se registra y no afecta
// el resultado de la operación.
func TestSubmit_FalloDePersistenciaNoSePropaga(t *testing.T) {
	f := newFixture(t)
	defer f.states.Wait()

	f.repo.EXPECT().ListByBusiness(gomock.Any(), testBusinessID).
		Return([]entity.Invoice{feedInvoice("X", true)}, nil)
	f.store.EXPECT().Load(gomock.Any(), testBusinessID, testCycleKey).Return(nil, nil)
	f.store.EXPECT().Save(gomock.Any(), testBusinessID, testCycleKey, gomock.Any()).
		Return(assert.AnError)

	resp, err := f.submissionUC(testMidCycle).Submit(context.Background(), testBusinessID)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Version)
}

func TestSubmit_SnapshotCorruptoCaeADefaults(t *testing.T) {
	f := newFixture(t)
	defer f.states.Wait()

	f.repo.EXPECT().ListByBusiness(gomock.Any(), testBusinessID).
		Return([]entity.Invoice{feedInvoice("X", true)}, nil)
	f.store.EXPECT().Load(gomock.Any(), testBusinessID, testCycleKey).
		Return([]byte(`{"inclusions": [`), nil)
	f.store.EXPECT().Save(gomock.Any(), testBusinessID, testCycleKey, gomock.Any()).Return(nil)

	resp, err := f.submissionUC(testMidCycle).Submit(context.Background(), testBusinessID)

	require.NoError(t, err, "datos corruptos degradan a estado fresco, nunca a crash")
	assert.Equal(t, []string{"X"}, resp.SubmittedIDs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Withdraw
// ──────────────────────────────────────────────────────────────────────────────

func TestWithdraw_DescartaElEnvioSinTocarInclusion(t *testing.T) {
	f := newFixture(t)

	// Estado previo: A incluida y enviada, B excluida por el cliente.
	prev := domclearing.NewState()
	p := []entity.Invoice{feedInvoice("A", true), feedInvoice("B", true)}
	prev.Reconcile(p)
	require.NoError(t, prev.Exclude("B", entity.ReasonByCustomer))
	_, err := prev.SubmitClearing(domclearing.Eligible(p), testMidCycle)
	require.NoError(t, err)
	payload, err := domclearing.EncodeState(prev)
	require.NoError(t, err)

	f.store.EXPECT().Load(gomock.Any(), testBusinessID, testCycleKey).Return(payload, nil)

	saved := make(chan []byte, 1)
	f.store.EXPECT().Save(gomock.Any(), testBusinessID, testCycleKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, data []byte) error {
			saved <- data
			return nil
		})

	err = f.submissionUC(testMidCycle).Withdraw(context.Background(), testBusinessID)
	require.NoError(t, err)
	f.states.Wait()

	st := capturedState(t, <-saved)
	assert.Nil(t, st.Submission, "el envío queda descartado")
	assert.Equal(t, entity.InclusionIncluded, st.Record("A").Inclusion)
	assert.Equal(t, entity.ReasonByCustomer, st.Record("B").ExclusionReason,
		"el retiro no toca el mapa de inclusión")
}

func TestWithdraw_UltimoDiaSoloSoporte(t *testing.T) {
	f := newFixture(t)

	err := f.submissionUC(testLastDay).Withdraw(context.Background(), testBusinessID)

	assert.ErrorIs(t, err, domain.ErrWithdrawalClosed)
}

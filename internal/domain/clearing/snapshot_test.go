package clearing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compensa-api/internal/domain/clearing"
	"github.com/jhoicas/Compensa-api/internal/domain/entity"
)

func buildPopulatedState(t *testing.T) *clearing.State {
	t.Helper()
	st := clearing.NewState()
	p := pool(inv("A", true), inv("B", true), inv("S", false))
	st.Reconcile(p)
	require.NoError(t, st.Exclude("B", entity.ReasonBySupplier))

	_, err := st.SubmitClearing(clearing.Eligible(p), time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	visit := time.Date(2024, 1, 11, 8, 30, 0, 0, time.UTC)
	require.NoError(t, st.MarkVisited(entity.SurfaceClearing, visit, []string{"A", "B"}))
	require.NoError(t, st.MarkVisited(entity.SurfaceHome, visit.Add(time.Hour), nil))
	return st
}

func TestSnapshot_RoundTripEstructural(t *testing.T) {
	st := buildPopulatedState(t)

	data, err := clearing.EncodeState(st)
	require.NoError(t, err)

	restored, err := clearing.DecodeState(data)
	require.NoError(t, err)

	// Igualdad estructural de inclusiones, envío y visitas.
	assert.Equal(t, st.Inclusions, restored.Inclusions)
	assert.Equal(t, st.Submission, restored.Submission)
	assert.Equal(t, st.Visits, restored.Visits)
}

func TestSnapshot_CodificacionDeterminista(t *testing.T) {
	st := buildPopulatedState(t)

	data1, err := clearing.EncodeState(st)
	require.NoError(t, err)
	data2, err := clearing.EncodeState(st)
	require.NoError(t, err)

	assert.Equal(t, data1, data2, "sets y mapas se serializan ordenados por id")
}

func TestSnapshot_EstadoVacioRoundTrip(t *testing.T) {
	st := clearing.NewState()

	data, err := clearing.EncodeState(st)
	require.NoError(t, err)

	restored, err := clearing.DecodeState(data)
	require.NoError(t, err)

	assert.Empty(t, restored.Inclusions)
	assert.Nil(t, restored.Submission)
	assert.NotNil(t, restored.Visits.SeenIDs, "los sets vacíos vuelven inicializados")
}

func TestDecodeState_JSONCorrupto(t *testing.T) {
	_, err := clearing.DecodeState([]byte(`{"inclusions": [`))

	assert.Error(t, err, "el llamador decide el fallback; aquí solo se reporta")
}

func TestDecodeState_ClavesFaltantesCaenADefaults(t *testing.T) {
	st, err := clearing.DecodeState([]byte(`{}`))

	require.NoError(t, err)
	assert.NotNil(t, st.Inclusions)
	assert.NotNil(t, st.Visits.SeenIDs)
	assert.Nil(t, st.Submission)
	assert.Equal(t, 2, st.NewSinceLastVisit([]string{"A", "B"}),
		"sin visita registrada todo cuenta como nuevo")
}

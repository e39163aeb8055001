package clearing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compensa-api/internal/domain"
	"github.com/jhoicas/Compensa-api/internal/domain/clearing"
	"github.com/jhoicas/Compensa-api/internal/domain/entity"
)

var visitAt = time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)

func TestNewSinceLastVisit_SinVisitaTodoEsNuevo(t *testing.T) {
	st := clearing.NewState()

	assert.Equal(t, 3, st.NewSinceLastVisit([]string{"A", "B", "C"}))
}

func TestMarkVisited_ClearingReseteaElContador(t *testing.T) {
	st := clearing.NewState()

	require.NoError(t, st.MarkVisited(entity.SurfaceClearing, visitAt, []string{"A", "B"}))

	assert.Equal(t, 0, st.NewSinceLastVisit([]string{"A", "B"}))
	require.NotNil(t, st.Visits.LastVisitClearing)
	assert.Equal(t, visitAt, *st.Visits.LastVisitClearing)
}

// Diferencia de sets, no de conteos: si entre visitas entran C y D y sale A,
// el contador es 2 (las nuevas), aunque el total apenas cambió.
func TestNewSinceLastVisit_AltasYBajasSimultaneas(t *testing.T) {
	st := clearing.NewState()
	require.NoError(t, st.MarkVisited(entity.SurfaceClearing, visitAt, []string{"A", "B"}))

	assert.Equal(t, 2, st.NewSinceLastVisit([]string{"B", "C", "D"}))
}

func TestMarkVisited_HomeNoTocaElContador(t *testing.T) {
	st := clearing.NewState()
	require.NoError(t, st.MarkVisited(entity.SurfaceClearing, visitAt, []string{"A"}))

	require.NoError(t, st.MarkVisited(entity.SurfaceHome, visitAt.Add(time.Hour), []string{"A", "B"}))

	assert.Equal(t, 1, st.NewSinceLastVisit([]string{"A", "B"}),
		"visitar home no resetea el contador de clearing")
	require.NotNil(t, st.Visits.LastVisitHome)
}

func TestMarkVisited_SuperficieDesconocida(t *testing.T) {
	st := clearing.NewState()

	err := st.MarkVisited("dashboard", visitAt, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, st.Visits.LastVisitHome)
	assert.Nil(t, st.Visits.LastVisitClearing)
}

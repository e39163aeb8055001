package cycle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compensa-api/internal/domain/cycle"
)

var anchor = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newClock() *cycle.CycleClock {
	return cycle.New(anchor, 28, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de referencia: ancla 2024-01-01T00:00Z, now 2024-01-26T10:00Z.
// Día 26 del ciclo (índice 25), quedan 3 días, ventana de consentimiento
// abierta, corte todavía no pasado.
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrentWindow_EscenarioReferencia(t *testing.T) {
	c := newClock()
	now := time.Date(2024, 1, 26, 10, 0, 0, 0, time.UTC)

	w := c.CurrentWindow(now)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC), w.End)
	assert.Equal(t, 25, w.DayIndex, "día base 0 dentro del ciclo")
	assert.Equal(t, 3, w.DaysRemaining, "días hasta el fin de la ventana")
	assert.True(t, c.IsConsentWindow(now), "día 26 cae en la ventana de consentimiento")
	assert.False(t, c.IsPastCutoff(now), "el corte aún no pasó")
}

func TestCurrentWindow_InvarianteContieneNow(t *testing.T) {
	c := newClock()
	instants := []time.Time{
		anchor,
		anchor.Add(time.Nanosecond),
		time.Date(2024, 1, 28, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC), // primer instante del segundo ciclo
		time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC),
		time.Date(2031, 12, 3, 4, 5, 6, 0, time.UTC),
		time.Date(2023, 12, 20, 8, 0, 0, 0, time.UTC), // antes del ancla
		time.Date(2019, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	for _, now := range instants {
		w := c.CurrentWindow(now)
		assert.False(t, now.Before(w.Start), "start <= now para %s", now)
		assert.True(t, now.Before(w.End), "now < end para %s", now)
		assert.Equal(t, 28*24*time.Hour, w.End.Sub(w.Start), "la ventana dura 28 días exactos")
		assert.GreaterOrEqual(t, w.DayIndex, 0)
		assert.Less(t, w.DayIndex, 28)
		assert.Equal(t, 28-w.DayIndex, w.DaysRemaining)
	}
}

func TestIsConsentWindow_Bordes(t *testing.T) {
	c := newClock()

	// El corte es el inicio del último día (día 28, índice 27): la ventana de
	// consentimiento son los 2 días previos al corte.
	assert.False(t, c.IsConsentWindow(time.Date(2024, 1, 25, 23, 0, 0, 0, time.UTC)),
		"día 25 todavía fuera de la ventana")
	assert.True(t, c.IsConsentWindow(time.Date(2024, 1, 26, 0, 0, 0, 0, time.UTC)),
		"la ventana abre exactamente 2 días antes del corte")
	assert.True(t, c.IsConsentWindow(time.Date(2024, 1, 27, 23, 59, 59, 0, time.UTC)))
	assert.False(t, c.IsConsentWindow(time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC)),
		"en el corte la ventana ya cerró")
}

func TestIsPastCutoff_UltimoDiaSoloLectura(t *testing.T) {
	c := newClock()

	beforeCutoff := time.Date(2024, 1, 27, 23, 59, 59, 0, time.UTC)
	lastDay := time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC)

	assert.False(t, c.IsPastCutoff(beforeCutoff))
	assert.True(t, c.IsPastCutoff(lastDay), "el último día del ciclo es de solo lectura")
	assert.True(t, c.IsPastCutoff(lastDay.Add(10*time.Hour)))
}

func TestIsWithdrawalClosed_UltimoDia(t *testing.T) {
	c := newClock()

	assert.False(t, c.IsWithdrawalClosed(time.Date(2024, 1, 27, 12, 0, 0, 0, time.UTC)),
		"día 27 (índice 26): retiro autoservicio todavía permitido")
	assert.True(t, c.IsWithdrawalClosed(time.Date(2024, 1, 28, 12, 0, 0, 0, time.UTC)),
		"día 28 (índice 27): solo soporte puede retirar")
}

func TestCycleKey_EstablePorCicloYRotacion(t *testing.T) {
	c := newClock()

	day3 := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	day27 := time.Date(2024, 1, 27, 21, 0, 0, 0, time.UTC)
	nextCycle := time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)

	require.Equal(t, c.CycleKey(day3), c.CycleKey(day27), "misma clave dentro del ciclo")
	assert.NotEqual(t, c.CycleKey(day3), c.CycleKey(nextCycle), "la rotación cambia la clave")
	assert.Equal(t, "2024-01-01", c.CycleKey(day3))
	assert.Equal(t, "2024-01-29", c.CycleKey(nextCycle))
}

func TestCurrentWindow_AntesDelAncla(t *testing.T) {
	c := newClock()
	now := time.Date(2023, 12, 20, 8, 0, 0, 0, time.UTC)

	w := c.CurrentWindow(now)

	assert.Equal(t, time.Date(2023, 12, 4, 0, 0, 0, 0, time.UTC), w.Start,
		"los ciclos también se proyectan hacia atrás desde el ancla")
	assert.Equal(t, 16, w.DayIndex)
}

package cycle

import "time"

// Clock fuente del instante autoritativo. En producción es el reloj del
// servidor; en el prototipo puede fijarse a un instante configurado.
type Clock interface {
	Now() time.Time
}

// SystemClock reloj de pared en UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock instante congelado (prototipo y tests).
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time { return c.Instant }

// Window ventana del ciclo vigente. Valor calculado, nunca persistido.
//
// End es el fin exclusivo de la ventana (Start + días del ciclo). CutoffAt es
// el instante de corte de envíos: el último día del ciclo es de liquidación y
// queda en solo lectura, por eso CutoffAt = End - 1 día.
type Window struct {
	Start         time.Time
	End           time.Time
	CutoffAt      time.Time
	DayIndex      int // día dentro del ciclo, base 0
	DaysRemaining int // días hasta End, contando el día en curso
}

// CycleClock calcula ventanas de un ciclo de duración fija a partir de un
// instante ancla. Función pura de now: sin efectos ni modos de fallo.
type CycleClock struct {
	anchor      time.Time
	cycleDays   int
	consentDays int
}

// New construye el reloj de ciclo. cycleDays y consentDays menores o iguales
// a cero caen a los valores del producto (28 y 2).
func New(anchor time.Time, cycleDays, consentDays int) *CycleClock {
	if cycleDays <= 0 {
		cycleDays = 28
	}
	if consentDays <= 0 {
		consentDays = 2
	}
	return &CycleClock{anchor: anchor.UTC(), cycleDays: cycleDays, consentDays: consentDays}
}

const day = 24 * time.Hour

// CurrentWindow devuelve la ventana que contiene now.
// Invariante: Start <= now < End y End-Start == cycleDays.
func (c *CycleClock) CurrentWindow(now time.Time) Window {
	now = now.UTC()
	length := time.Duration(c.cycleDays) * day

	elapsed := now.Sub(c.anchor)
	idx := elapsed / length
	if elapsed < 0 && elapsed%length != 0 {
		idx-- // división hacia abajo también antes del ancla
	}

	start := c.anchor.Add(idx * length)
	dayIndex := int(now.Sub(start) / day)

	return Window{
		Start:         start,
		End:           start.Add(length),
		CutoffAt:      start.Add(length - day),
		DayIndex:      dayIndex,
		DaysRemaining: c.cycleDays - dayIndex,
	}
}

// IsPastCutoff indica si los envíos del ciclo ya cerraron (now >= corte).
// Se evalúa fresco en cada mutación: nunca cachear este resultado.
func (c *CycleClock) IsPastCutoff(now time.Time) bool {
	return !now.UTC().Before(c.CurrentWindow(now).CutoffAt)
}

// IsConsentWindow indica si now cae en la ventana de consentimiento: los
// últimos consentDays días previos al corte.
func (c *CycleClock) IsConsentWindow(now time.Time) bool {
	w := c.CurrentWindow(now)
	from := w.CutoffAt.Add(-time.Duration(c.consentDays) * day)
	n := now.UTC()
	return !n.Before(from) && n.Before(w.CutoffAt)
}

// IsWithdrawalClosed indica si el retiro autoservicio ya no está permitido
// (el último día del ciclo se resuelve con soporte, no con self-service).
func (c *CycleClock) IsWithdrawalClosed(now time.Time) bool {
	return c.CurrentWindow(now).DayIndex >= c.cycleDays-1
}

// CycleKey clave estable del ciclo vigente para persistencia: al rotar el
// ciclo cambia la clave y el estado arranca desde los defaults de
// reconciliación, sin migración explícita.
func (c *CycleClock) CycleKey(now time.Time) string {
	return c.CurrentWindow(now).Start.Format("2006-01-02")
}

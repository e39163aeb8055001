package entity

import "time"

// Estados de inclusión de una factura en el set de compensación del ciclo.
const (
	InclusionIncluded = "included"
	InclusionExcluded = "excluded"
)

// Motivos de exclusión. ReasonBySystem solo lo asigna la reconciliación
// automática (factura sin contraparte miembro) y no puede tocarse manualmente.
const (
	ReasonBySystem   = "by_system"
	ReasonBySupplier = "by_supplier"
	ReasonByCustomer = "by_customer"
)

// InclusionRecord estado de inclusión de una factura, independiente del ledger.
// Invariante: ExclusionReason no vacío solo cuando Inclusion == excluded.
type InclusionRecord struct {
	Inclusion       string
	ExclusionReason string
}

// Submission foto versionada del set incluido, inmutable una vez creada salvo
// por la unión aditiva de cada envío. SubmittedIDs nunca decrece por submit;
// solo el retiro explícito descarta el registro completo.
type Submission struct {
	Version      int
	SubmittedIDs map[string]bool
	SubmittedAt  time.Time
}

// Has indica si la factura ya quedó bloqueada en el envío.
func (s *Submission) Has(invoiceID string) bool {
	return s != nil && s.SubmittedIDs[invoiceID]
}

// Superficies visitables del prototipo.
const (
	SurfaceHome     = "home"
	SurfaceClearing = "clearing"
)

// VisitState marcas de última visita por superficie más el set de facturas
// elegibles vistas en la última visita a clearing (para el contador de nuevas).
type VisitState struct {
	LastVisitHome     *time.Time
	LastVisitClearing *time.Time
	SeenIDs           map[string]bool
}

package clearing

import (
	"github.com/jhoicas/Compensa-api/internal/domain"
	"github.com/jhoicas/Compensa-api/internal/domain/entity"
)

// State contenedor explícito del estado de compensación de un negocio dentro
// de un ciclo: mapa de inclusión, envío versionado y estado de visitas.
// Todas las transiciones son síncronas y dejan el estado válido o intacto;
// las puertas temporales (corte, ventana de retiro) se evalúan en la capa de
// aplicación con el reloj del ciclo.
type State struct {
	Inclusions map[string]*entity.InclusionRecord
	Submission *entity.Submission
	Visits     entity.VisitState
}

// NewState estado vacío: equivale a "nunca guardado, aplicar defaults de
// reconciliación".
func NewState() *State {
	return &State{
		Inclusions: make(map[string]*entity.InclusionRecord),
		Visits:     entity.VisitState{SeenIDs: make(map[string]bool)},
	}
}

// Reconcile alinea el mapa de inclusión con el pool de facturas actual:
//
//   - toda factura elegible sin registro entra como included por defecto;
//   - toda factura sin contraparte miembro (matched=false) queda excluida con
//     motivo by_system, pisando cualquier estado manual previo;
//   - una exclusión by_system obsoleta (la factura volvió a matched=true) se
//     reevalúa desde cero en vez de confiar en el registro viejo.
//
// Idempotente: repetir la llamada con el mismo pool no tiene efecto observable.
func (s *State) Reconcile(invoices []entity.Invoice) {
	for _, inv := range invoices {
		if !inv.Matched {
			s.Inclusions[inv.ID] = &entity.InclusionRecord{
				Inclusion:       entity.InclusionExcluded,
				ExclusionReason: entity.ReasonBySystem,
			}
			continue
		}
		rec, ok := s.Inclusions[inv.ID]
		if !ok || rec.ExclusionReason == entity.ReasonBySystem {
			s.Inclusions[inv.ID] = &entity.InclusionRecord{Inclusion: entity.InclusionIncluded}
		}
	}
}

// Include mueve la factura a included y limpia el motivo de exclusión.
// No-op si ya está incluida. Falla con ErrSystemLocked si la exclusión vigente
// es del sistema y con ErrNotFound si la factura no está en el set.
func (s *State) Include(id string) error {
	rec, ok := s.Inclusions[id]
	if !ok {
		return domain.ErrNotFound
	}
	if rec.ExclusionReason == entity.ReasonBySystem {
		return domain.ErrSystemLocked
	}
	rec.Inclusion = entity.InclusionIncluded
	rec.ExclusionReason = ""
	return nil
}

// Exclude mueve la factura a excluded con el motivo dado. Los motivos
// manuales se limitan a by_supplier y by_customer; by_system solo lo asigna
// la reconciliación.
func (s *State) Exclude(id, reason string) error {
	if reason != entity.ReasonBySupplier && reason != entity.ReasonByCustomer {
		return domain.ErrInvalidReason
	}
	rec, ok := s.Inclusions[id]
	if !ok {
		return domain.ErrNotFound
	}
	if rec.ExclusionReason == entity.ReasonBySystem {
		return domain.ErrSystemLocked
	}
	rec.Inclusion = entity.InclusionExcluded
	rec.ExclusionReason = reason
	return nil
}

// Skipped id omitido en una operación por lotes, con la causa.
type Skipped struct {
	ID    string `json:"id"`
	Cause string `json:"cause"`
}

// IncludeAll variante por lotes de Include: aplica a los ids válidos y
// reporta los omitidos (nunca aborta todo el lote).
func (s *State) IncludeAll(ids []string) []Skipped {
	var skipped []Skipped
	for _, id := range ids {
		if err := s.Include(id); err != nil {
			skipped = append(skipped, Skipped{ID: id, Cause: err.Error()})
		}
	}
	return skipped
}

// ExcludeAll variante por lotes de Exclude con la misma política de omisión.
func (s *State) ExcludeAll(ids []string, reason string) []Skipped {
	var skipped []Skipped
	for _, id := range ids {
		if err := s.Exclude(id, reason); err != nil {
			skipped = append(skipped, Skipped{ID: id, Cause: err.Error()})
		}
	}
	return skipped
}

// Record devuelve el registro de inclusión de la factura (nil si no existe).
func (s *State) Record(id string) *entity.InclusionRecord {
	return s.Inclusions[id]
}

// Included subconjunto de las elegibles actualmente incluido.
func (s *State) Included(eligible []entity.Invoice) []entity.Invoice {
	out := make([]entity.Invoice, 0, len(eligible))
	for _, inv := range eligible {
		if rec, ok := s.Inclusions[inv.ID]; ok && rec.Inclusion == entity.InclusionIncluded {
			out = append(out, inv)
		}
	}
	return out
}

// Excluded subconjunto de las elegibles actualmente excluido.
func (s *State) Excluded(eligible []entity.Invoice) []entity.Invoice {
	out := make([]entity.Invoice, 0, len(eligible))
	for _, inv := range eligible {
		if rec, ok := s.Inclusions[inv.ID]; ok && rec.Inclusion == entity.InclusionExcluded {
			out = append(out, inv)
		}
	}
	return out
}

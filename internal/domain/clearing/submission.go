package clearing

import (
	"time"

	"github.com/jhoicas/Compensa-api/internal/domain"
	"github.com/jhoicas/Compensa-api/internal/domain/entity"
)

// ReadyToSubmit facturas elegibles incluidas que aún no quedaron bloqueadas
// en el envío vigente (set vacío de envío si todavía no hay envío).
func (s *State) ReadyToSubmit(eligible []entity.Invoice) []entity.Invoice {
	out := make([]entity.Invoice, 0, len(eligible))
	for _, inv := range s.Included(eligible) {
		if !s.Submission.Has(inv.ID) {
			out = append(out, inv)
		}
	}
	return out
}

// SubmitClearing bloquea el set incluido actual dentro del envío versionado:
// une los ids listos al set ya enviado, incrementa la versión en exactamente 1
// y sella el timestamp.
//
// El primer envío sin nada listo falla con ErrNothingToSubmit. Un reenvío con
// delta vacío sobre un envío existente NO es error: cada llamada explícita a
// submit es un evento auditable y también incrementa la versión, pero el set
// no crece (ley de idempotencia sobre el set, no sobre la versión).
func (s *State) SubmitClearing(eligible []entity.Invoice, now time.Time) (*entity.Submission, error) {
	ready := s.ReadyToSubmit(eligible)
	if s.Submission == nil && len(ready) == 0 {
		return nil, domain.ErrNothingToSubmit
	}

	if s.Submission == nil {
		s.Submission = &entity.Submission{SubmittedIDs: make(map[string]bool)}
	}
	for _, inv := range ready {
		s.Submission.SubmittedIDs[inv.ID] = true
	}
	s.Submission.Version++
	s.Submission.SubmittedAt = now

	return s.Submission, nil
}

// WithdrawSubmission descarta el registro de envío completo. No toca el mapa
// de inclusión: las facturas quedan incluidas/excluidas tal como estaban.
// La puerta temporal (último día del ciclo) se valida en la capa de
// aplicación antes de llamar aquí.
func (s *State) WithdrawSubmission() {
	s.Submission = nil
}

// SubmittedThisCycle facturas elegibles ya bloqueadas en el envío vigente.
func (s *State) SubmittedThisCycle(eligible []entity.Invoice) []entity.Invoice {
	out := make([]entity.Invoice, 0, len(eligible))
	for _, inv := range eligible {
		if s.Submission.Has(inv.ID) {
			out = append(out, inv)
		}
	}
	return out
}

package clearing

import (
	"time"

	"github.com/jhoicas/Compensa-api/internal/domain"
	"github.com/jhoicas/Compensa-api/internal/domain/entity"
)

// MarkVisited registra la visita a una superficie. Para clearing además fija
// el set de elegibles vistos, que es la base del contador de nuevas.
func (s *State) MarkVisited(surface string, now time.Time, eligibleIDs []string) error {
	switch surface {
	case entity.SurfaceHome:
		t := now
		s.Visits.LastVisitHome = &t
	case entity.SurfaceClearing:
		t := now
		s.Visits.LastVisitClearing = &t
		seen := make(map[string]bool, len(eligibleIDs))
		for _, id := range eligibleIDs {
			seen[id] = true
		}
		s.Visits.SeenIDs = seen
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// NewSinceLastVisit cuenta las facturas elegibles ahora que no estaban
// presentes en la última visita a clearing. Se calcula por diferencia de sets
// de ids, no por comparación de conteos: altas y bajas simultáneas entre
// visitas no distorsionan el resultado. Sin visita previa, todas son nuevas.
func (s *State) NewSinceLastVisit(eligibleIDs []string) int {
	if s.Visits.LastVisitClearing == nil {
		return len(eligibleIDs)
	}
	count := 0
	for _, id := range eligibleIDs {
		if !s.Visits.SeenIDs[id] {
			count++
		}
	}
	return count
}
